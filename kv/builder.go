package kv

import (
	"encoding/json"
	"errors"
)

// PutRequest accumulates optional write parameters. Built by Store.Put and
// consumed by a single Execute call; no I/O happens before Execute.
type PutRequest struct {
	store *Store
	key   string
	value string

	expiration    *uint64
	expirationTTL *uint64
	metadata      json.RawMessage

	err error
}

// Expiration sets the absolute time at which the key expires, as a unix
// timestamp in seconds.
func (r *PutRequest) Expiration(at uint64) *PutRequest {
	r.expiration = &at
	return r
}

// ExpirationTTL sets a relative expiration in seconds from write time.
// Setting both Expiration and ExpirationTTL is caller error; which one
// takes effect is decided by the store.
func (r *PutRequest) ExpirationTTL(seconds uint64) *PutRequest {
	r.expirationTTL = &seconds
	return r
}

// Metadata attaches arbitrary metadata to the write, serialized
// immediately. A value that cannot be serialized poisons the request;
// Execute then reports ErrSerialization without contacting the host.
func (r *PutRequest) Metadata(metadata any) *PutRequest {
	if r.err != nil {
		return r
	}

	b, err := json.Marshal(metadata)
	if err != nil {
		r.err = errors.Join(ErrSerialization, err)
		return r
	}

	r.metadata = b
	return r
}

// Execute performs the write in a single host round trip, sending the
// accumulated optional fields alongside key and value. Omitted expiration
// fields leave the key permanent.
func (r *PutRequest) Execute() error {
	if r.err != nil {
		return r.err
	}

	req := putWireRequest{
		Store:         r.store.name,
		Key:           r.key,
		Value:         r.value,
		Expiration:    r.expiration,
		ExpirationTTL: r.expirationTTL,
		Metadata:      r.metadata,
	}

	var resp statusResponse
	if err := r.store.exec(fnPut, req, &resp); err != nil {
		return err
	}
	return checkStatus(resp.Status, r.store.invalidStore())
}

// ListRequest accumulates enumeration options. Built by Store.List and
// consumed by a single Execute call.
type ListRequest struct {
	store  *Store
	limit  *uint64
	cursor string
	prefix string
}

// Limit caps the number of keys returned per page. The store default and
// maximum are 1000.
func (r *ListRequest) Limit(limit uint64) *ListRequest {
	r.limit = &limit
	return r
}

// Cursor resumes an enumeration from the cursor of a previous
// ListResponse. Cursors are opaque and must be passed back verbatim.
func (r *ListRequest) Cursor(cursor string) *ListRequest {
	r.cursor = cursor
	return r
}

// Prefix restricts the enumeration to keys that start with prefix.
func (r *ListRequest) Prefix(prefix string) *ListRequest {
	r.prefix = prefix
	return r
}

// Execute fetches one page of keys in a single host round trip. The client
// never paginates on its own: callers loop, following ListResponse.Cursor
// with the same prefix and limit, until ListComplete is true.
func (r *ListRequest) Execute() (ListResponse, error) {
	req := listWireRequest{
		Store:  r.store.name,
		Limit:  r.limit,
		Cursor: r.cursor,
		Prefix: r.prefix,
	}

	var resp listWireResponse
	if err := r.store.exec(fnList, req, &resp); err != nil {
		return ListResponse{}, err
	}
	if err := checkStatus(resp.Status, r.store.invalidStore()); err != nil {
		return ListResponse{}, err
	}

	return ListResponse{
		Keys:         resp.Keys,
		ListComplete: resp.ListComplete,
		Cursor:       resp.Cursor,
	}, nil
}

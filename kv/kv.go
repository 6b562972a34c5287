package kv

import (
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/edgekv-project/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

var (
	// ErrTransport indicates that the host round trip failed or the remote
	// store reported an application-level error.
	ErrTransport = errors.New("store round trip failed")

	// ErrSerialization indicates that structured data failed to encode on
	// the way in or decode on the way out.
	ErrSerialization = errors.New("serialization failed")

	// ErrInvalidStore is returned when no store binding with the requested
	// name exists in the current execution context.
	ErrInvalidStore = errors.New("store binding does not exist")

	// ErrMissingMetadata is returned when metadata is requested for a key
	// that exists without any.
	ErrMissingMetadata = errors.New("no metadata stored for key")
)

// errKeyMissing marks a 404 host status on key reads. It never escapes the
// package; callers observe key absence as a nil result.
var errKeyMissing = errors.New("key does not exist")

// HostCall defines the waPC host function signature used for store operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Store binds to the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// Store is the name of the key-value store binding to open.
	Store string

	// HostCall overrides the waPC host function used for store operations.
	HostCall HostCall
}

// Store is a client bound to one named key-value store. A Store is
// immutable after Open and safe for concurrent use; every operation is a
// single host round trip with no state retained between calls.
type Store struct {
	runtime  sdk.RuntimeConfig
	name     string
	hostCall HostCall
}

// Open resolves the named store binding with a single host round trip and
// returns a client bound to it. Open fails with ErrInvalidStore when the
// host has no binding of that name.
func Open(config Config) (*Store, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = sdk.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	s := &Store{runtime: runtime, name: config.Store, hostCall: hostCall}

	var resp statusResponse
	if err := s.exec(fnOpen, openRequest{Store: s.name}, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, s.invalidStore()); err != nil {
		return nil, err
	}

	return s, nil
}

// Name returns the store binding name the client is bound to.
func (s *Store) Name() string { return s.name }

// Get fetches the value stored under key. A key that does not exist yields
// (nil, nil) rather than an error.
func (s *Store) Get(key string) (*Value, error) {
	var resp getResponse
	if err := s.exec(fnGet, keyRequest{Store: s.name, Key: key}, &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Status, errKeyMissing); err != nil {
		if errors.Is(err, errKeyMissing) {
			return nil, nil
		}
		return nil, err
	}

	return &Value{raw: resp.Value}, nil
}

// GetWithMetadata fetches the value and its metadata in one round trip. A
// key that does not exist yields (nil, nil). The returned Entry carries the
// metadata as an independent facet; a key may exist without any, which is
// only reported once Entry.Metadata is asked to decode it.
func (s *Store) GetWithMetadata(key string) (*Entry, error) {
	var resp getWithMetadataResponse
	if err := s.exec(fnGetWithMetadata, keyRequest{Store: s.name, Key: key}, &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Status, errKeyMissing); err != nil {
		if errors.Is(err, errKeyMissing) {
			return nil, nil
		}
		return nil, err
	}

	return &Entry{Value: Value{raw: resp.Value}, metadata: resp.Metadata}, nil
}

// Put begins a write of value under key. The value is encoded immediately:
// strings and byte slices pass through as-is, anything else becomes its
// JSON text. An encoding failure latches into the returned request and
// surfaces from Execute before any host call is made.
func (s *Store) Put(key string, value any) *PutRequest {
	raw, err := encodeValue(value)
	return &PutRequest{store: s, key: key, value: raw, err: err}
}

// List begins an enumeration of the keys in the store with no options set.
func (s *Store) List() *ListRequest {
	return &ListRequest{store: s}
}

// Delete removes key from the store in one round trip. Deleting a key that
// does not exist succeeds.
func (s *Store) Delete(key string) error {
	var resp statusResponse
	if err := s.exec(fnDelete, keyRequest{Store: s.name, Key: key}, &resp); err != nil {
		return err
	}
	return checkStatus(resp.Status, nil)
}

// invalidStore builds the ErrInvalidStore instance carrying the binding name.
func (s *Store) invalidStore() error {
	return fmt.Errorf("%w: %s", ErrInvalidStore, s.name)
}

// exec marshals req, performs one host call, and decodes the response
// envelope into out. Status evaluation is left to the caller since the
// meaning of a 404 differs per operation.
func (s *Store) exec(function string, req any, out any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return errors.Join(ErrSerialization, err)
	}

	respBytes, callErr := s.hostCall(s.runtime.Namespace, capabilityName, function, payload)
	if callErr != nil && len(respBytes) == 0 {
		return errors.Join(ErrTransport, sdk.ErrHostCall, callErr)
	}

	if unmarshalErr := json.Unmarshal(respBytes, out); unmarshalErr != nil {
		if callErr != nil {
			return errors.Join(ErrTransport, sdk.ErrHostCall, callErr, sdk.ErrHostResponseInvalid, unmarshalErr)
		}
		return errors.Join(ErrTransport, sdk.ErrHostResponseInvalid, unmarshalErr)
	}

	return nil
}

// checkStatus maps the host status envelope onto the error taxonomy. The
// missing argument is returned verbatim for a 404 status; pass nil to treat
// absence as success.
func checkStatus(status *hostStatus, missing error) error {
	if status == nil {
		return errors.Join(ErrTransport, sdk.ErrHostResponseInvalid, errors.New("response has no status"))
	}

	switch status.Code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusMissing:
		return missing
	case hostStatusBadInput, hostStatusError:
		detail := fmt.Sprintf("host status %d", status.Code)
		if status.Status != "" {
			detail = fmt.Sprintf("%s: %s", detail, status.Status)
		}
		return errors.Join(ErrTransport, sdk.ErrHostError, errors.New(detail))
	default:
		return errors.Join(ErrTransport, sdk.ErrHostResponseInvalid, fmt.Errorf("unexpected host status code %d", status.Code))
	}
}

// Key is a snapshot of one key observed at list time. Listings are
// eventually consistent, so a Key may be stale by the time it is read.
type Key struct {
	// Name is the name of the key.
	Name string `json:"name"`

	// Expiration is the unix timestamp, in seconds, at which the key
	// expires. Nil means the key is permanent.
	Expiration *uint64 `json:"expiration,omitempty"`

	// Metadata is the raw metadata stored with the key, nil when absent.
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// ListResponse is one page of a key enumeration.
type ListResponse struct {
	// Keys holds the keys of this page in store order.
	Keys []Key

	// ListComplete is true on the final page of the enumeration.
	ListComplete bool

	// Cursor continues the enumeration when ListComplete is false. It must
	// be passed back verbatim via ListRequest.Cursor.
	Cursor string
}

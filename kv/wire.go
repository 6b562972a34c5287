package kv

import "encoding/json"

const (
	capabilityName = "kvstore"

	fnOpen            = "open"
	fnGet             = "get"
	fnGetWithMetadata = "getWithMetadata"
	fnPut             = "put"
	fnList            = "list"
	fnDelete          = "delete"

	hostStatusOK       = 200
	hostStatusPartial  = 206
	hostStatusBadInput = 400
	hostStatusMissing  = 404
	hostStatusError    = 500
)

// hostStatus is the envelope carried by every host response.
type hostStatus struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

type openRequest struct {
	Store string `json:"store"`
}

type keyRequest struct {
	Store string `json:"store"`
	Key   string `json:"key"`
}

type putWireRequest struct {
	Store         string          `json:"store"`
	Key           string          `json:"key"`
	Value         string          `json:"value"`
	Expiration    *uint64         `json:"expiration,omitempty"`
	ExpirationTTL *uint64         `json:"expirationTtl,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
}

type listWireRequest struct {
	Store  string  `json:"store"`
	Limit  *uint64 `json:"limit,omitempty"`
	Cursor string  `json:"cursor,omitempty"`
	Prefix string  `json:"prefix,omitempty"`
}

type statusResponse struct {
	Status *hostStatus `json:"status"`
}

type getResponse struct {
	Status *hostStatus `json:"status"`
	Value  string      `json:"value"`
}

type getWithMetadataResponse struct {
	Status   *hostStatus     `json:"status"`
	Value    string          `json:"value"`
	Metadata json.RawMessage `json:"metadata"`
}

type listWireResponse struct {
	Status       *hostStatus `json:"status"`
	Keys         []Key       `json:"keys"`
	ListComplete bool        `json:"list_complete"`
	Cursor       string      `json:"cursor,omitempty"`
}

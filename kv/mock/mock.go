package mock

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const capabilityName = "kvstore"

// defaultLimit is the page size used when a list request sets no limit.
// It is also the maximum; larger limits are clamped.
const defaultLimit = 1000

// record is one stored key.
type record struct {
	value      string
	expiration uint64 // unix seconds, 0 means permanent
	metadata   json.RawMessage
}

// Call records one host function invocation for assertions.
type Call struct {
	Function string
	Store    string
	Key      string
}

// Config configures the fake host.
type Config struct {
	// Stores lists the store bindings the host exposes.
	Stores []string

	// Seed pre-populates stores: binding name -> key -> value. Seeded
	// bindings are exposed even when absent from Stores.
	Seed map[string]map[string]string

	// Now overrides the clock used for TTL arithmetic and expiry checks.
	// Defaults to time.Now.
	Now func() time.Time
}

// Host is an in-memory fake of the kvstore host capability. It serves the
// same wire protocol the real host does, so a kv client can run against it
// unchanged. Keys are listed in lexicographic order and expired records
// are dropped at read time.
type Host struct {
	mu     sync.Mutex
	stores map[string]map[string]record
	now    func() time.Time

	// Calls records every function invocation in order.
	Calls []Call
}

// New creates a fake host exposing the configured store bindings.
func New(config Config) *Host {
	stores := make(map[string]map[string]record)
	for _, name := range config.Stores {
		stores[name] = make(map[string]record)
	}
	for name, seed := range config.Seed {
		if stores[name] == nil {
			stores[name] = make(map[string]record)
		}
		for k, v := range seed {
			stores[name][k] = record{value: v}
		}
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Host{stores: stores, now: now}
}

// request is the superset of all kvstore request envelopes.
type request struct {
	Store         string          `json:"store"`
	Key           string          `json:"key"`
	Value         string          `json:"value"`
	Expiration    *uint64         `json:"expiration"`
	ExpirationTTL *uint64         `json:"expirationTtl"`
	Metadata      json.RawMessage `json:"metadata"`
	Limit         *uint64         `json:"limit"`
	Cursor        string          `json:"cursor"`
	Prefix        string          `json:"prefix"`
}

type status struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

type statusBody struct {
	Status status `json:"status"`
}

type getBody struct {
	Status status `json:"status"`
	Value  string `json:"value"`
}

type getWithMetadataBody struct {
	Status   status          `json:"status"`
	Value    string          `json:"value"`
	Metadata json.RawMessage `json:"metadata"`
}

type keyInfo struct {
	Name       string          `json:"name"`
	Expiration *uint64         `json:"expiration,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}

type listBody struct {
	Status       status    `json:"status"`
	Keys         []keyInfo `json:"keys"`
	ListComplete bool      `json:"list_complete"`
	Cursor       string    `json:"cursor,omitempty"`
}

// HostCall serves one kvstore function. The signature matches
// wapc.HostCall so a Host can be injected directly into a kv client.
func (h *Host) HostCall(_, capability, function string, payload []byte) ([]byte, error) {
	if capability != capabilityName {
		return nil, fmt.Errorf("unknown capability %q", capability)
	}

	var req request
	if err := json.Unmarshal(payload, &req); err != nil {
		return marshal(statusBody{Status: status{Status: "invalid request payload", Code: 400}}), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.Calls = append(h.Calls, Call{Function: function, Store: req.Store, Key: req.Key})

	switch function {
	case "open":
		return h.open(req), nil
	case "get":
		return h.get(req), nil
	case "getWithMetadata":
		return h.getWithMetadata(req), nil
	case "put":
		return h.put(req), nil
	case "list":
		return h.list(req), nil
	case "delete":
		return h.delete(req), nil
	default:
		return marshal(statusBody{Status: status{Status: fmt.Sprintf("unknown function %q", function), Code: 400}}), nil
	}
}

func (h *Host) open(req request) []byte {
	if _, ok := h.stores[req.Store]; !ok {
		return marshal(statusBody{Status: status{Status: "store not found", Code: 404}})
	}
	return marshal(statusBody{Status: okStatus()})
}

func (h *Host) get(req request) []byte {
	rec, ok := h.lookup(req.Store, req.Key)
	if !ok {
		return marshal(statusBody{Status: status{Status: "key not found", Code: 404}})
	}
	return marshal(getBody{Status: okStatus(), Value: rec.value})
}

func (h *Host) getWithMetadata(req request) []byte {
	rec, ok := h.lookup(req.Store, req.Key)
	if !ok {
		return marshal(statusBody{Status: status{Status: "key not found", Code: 404}})
	}
	return marshal(getWithMetadataBody{Status: okStatus(), Value: rec.value, Metadata: rec.metadata})
}

func (h *Host) put(req request) []byte {
	store, ok := h.stores[req.Store]
	if !ok {
		return marshal(statusBody{Status: status{Status: "store not found", Code: 404}})
	}

	rec := record{value: req.Value, metadata: req.Metadata}
	switch {
	case req.Expiration != nil:
		rec.expiration = *req.Expiration
	case req.ExpirationTTL != nil:
		rec.expiration = uint64(h.now().Unix()) + *req.ExpirationTTL
	}

	store[req.Key] = rec
	return marshal(statusBody{Status: okStatus()})
}

func (h *Host) list(req request) []byte {
	store, ok := h.stores[req.Store]
	if !ok {
		return marshal(statusBody{Status: status{Status: "store not found", Code: 404}})
	}

	after := ""
	if req.Cursor != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Cursor)
		if err != nil {
			return marshal(statusBody{Status: status{Status: "invalid cursor", Code: 400}})
		}
		after = string(decoded)
	}

	names := make([]string, 0, len(store))
	for name, rec := range store {
		if h.expired(rec) {
			continue
		}
		if !strings.HasPrefix(name, req.Prefix) {
			continue
		}
		if name <= after {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	limit := uint64(defaultLimit)
	if req.Limit != nil && *req.Limit > 0 && *req.Limit < defaultLimit {
		limit = *req.Limit
	}

	page := names
	if uint64(len(names)) > limit {
		page = names[:limit]
	}

	keys := make([]keyInfo, 0, len(page))
	for _, name := range page {
		rec := store[name]
		info := keyInfo{Name: name, Metadata: rec.metadata}
		if rec.expiration != 0 {
			exp := rec.expiration
			info.Expiration = &exp
		}
		keys = append(keys, info)
	}

	body := listBody{Status: okStatus(), Keys: keys, ListComplete: true}
	if len(page) < len(names) {
		body.ListComplete = false
		body.Cursor = base64.StdEncoding.EncodeToString([]byte(page[len(page)-1]))
	}
	return marshal(body)
}

func (h *Host) delete(req request) []byte {
	store, ok := h.stores[req.Store]
	if !ok {
		return marshal(statusBody{Status: status{Status: "store not found", Code: 404}})
	}
	if _, ok := store[req.Key]; !ok {
		return marshal(statusBody{Status: status{Status: "key not found", Code: 404}})
	}
	delete(store, req.Key)
	return marshal(statusBody{Status: okStatus()})
}

// lookup returns the live record for a key, dropping expired entries.
func (h *Host) lookup(storeName, key string) (record, bool) {
	store, ok := h.stores[storeName]
	if !ok {
		return record{}, false
	}
	rec, ok := store[key]
	if !ok || h.expired(rec) {
		return record{}, false
	}
	return rec, true
}

func (h *Host) expired(rec record) bool {
	return rec.expiration != 0 && rec.expiration <= uint64(h.now().Unix())
}

func okStatus() status {
	return status{Status: "OK", Code: 200}
}

func marshal(body any) []byte {
	b, err := json.Marshal(body)
	if err != nil {
		// All response bodies are plain structs; this cannot fail.
		panic(err)
	}
	return b
}

package kv

import (
	"encoding/json"
	"errors"
)

// Value is the opaque textual payload returned by a read. The caller picks
// the interpretation: String, Bytes, or JSON.
type Value struct {
	raw string
}

// String returns the value exactly as stored.
func (v Value) String() string { return v.raw }

// Bytes returns a byte view of the value.
func (v Value) Bytes() []byte { return []byte(v.raw) }

// JSON decodes the value into out. A value that is not valid JSON for the
// target type fails with ErrSerialization.
func (v Value) JSON(out any) error {
	if err := json.Unmarshal([]byte(v.raw), out); err != nil {
		return errors.Join(ErrSerialization, err)
	}
	return nil
}

// Entry is the result of a metadata read: the stored value plus the raw
// metadata facet. The facets are independent; a key can exist without
// metadata, which is distinct from the key not existing at all.
type Entry struct {
	// Value is the stored value.
	Value Value

	metadata json.RawMessage
}

// HasMetadata reports whether any metadata is stored alongside the value.
func (e *Entry) HasMetadata() bool {
	return len(e.metadata) > 0 && string(e.metadata) != "null"
}

// Metadata decodes the stored metadata into out. It fails with
// ErrMissingMetadata when the key carries none, and with ErrSerialization
// when the metadata does not decode into the target type.
func (e *Entry) Metadata(out any) error {
	if !e.HasMetadata() {
		return ErrMissingMetadata
	}
	if err := json.Unmarshal(e.metadata, out); err != nil {
		return errors.Join(ErrSerialization, err)
	}
	return nil
}

// encodeValue converts a write payload to the store's textual form. The
// store treats values as opaque text, so strings and byte slices must not
// pick up JSON quoting on the way in.
func encodeValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case Value:
		return v.raw, nil
	case *Value:
		if v == nil {
			return "", nil
		}
		return v.raw, nil
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return "", errors.Join(ErrSerialization, err)
		}
		return string(b), nil
	}
}

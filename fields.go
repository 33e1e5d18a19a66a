// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr

import (
	"bytes"
	"encoding/json"

	"github.com/creachadair/mds/omap"
)

// Fields is a key-unique context mapping attached to an Error. Keys are
// maintained in lexical order so that serialization is deterministic.
// A nil *Fields is treated as empty by its read-only methods; use
// NewFields to construct a value that can be written to.
type Fields struct {
	m omap.Map[string, any]
}

// NewFields constructs a new, empty Fields.
func NewFields() *Fields { return &Fields{m: omap.New[string, any]()} }

// Set records value under key, replacing any existing value for key.
// It returns f to permit chaining.
func (f *Fields) Set(key string, value any) *Fields {
	f.m.Set(key, value)
	return f
}

// Get reports whether key is present in f and returns its value.
func (f *Fields) Get(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	return f.m.GetOK(key)
}

// Has reports whether key is present in f.
func (f *Fields) Has(key string) bool { _, ok := f.Get(key); return ok }

// Len reports the number of keys in f.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return f.m.Len()
}

// Keys returns the keys of f in lexical order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return f.m.Keys()
}

// Clone returns a copy of f that shares no structure with the original.
// Clone of a nil Fields returns a new empty Fields.
func (f *Fields) Clone() *Fields {
	out := NewFields()
	if f != nil {
		for it := f.m.First(); it.IsValid(); it.Next() {
			out.m.Set(it.Key(), it.Value())
		}
	}
	return out
}

// MarshalJSON renders f as a JSON object with keys in lexical order.
func (f *Fields) MarshalJSON() ([]byte, error) {
	if f.Len() == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for it := f.m.First(); it.IsValid(); it.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(it.Key())
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(it.Value())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

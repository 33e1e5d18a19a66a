// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cdumay/jsonerr"
)

func TestFieldsOrder(t *testing.T) {
	f := jsonerr.NewFields().Set("b", 2).Set("a", 1).Set("c", 3)
	if diff := cmp.Diff([]string{"a", "b", "c"}, f.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got)\n%s", diff)
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	const want = `{"a":1,"b":2,"c":3}`
	if got := string(data); got != want {
		t.Errorf("Marshal: got %#q, want %#q", got, want)
	}
}

func TestFieldsSetReplaces(t *testing.T) {
	f := jsonerr.NewFields().Set("key", "old").Set("key", "new")
	if f.Len() != 1 {
		t.Errorf("Len: got %d, want 1", f.Len())
	}
	if v, ok := f.Get("key"); !ok || v != "new" {
		t.Errorf(`Get("key"): got %v, %v; want "new", true`, v, ok)
	}
}

func TestFieldsClone(t *testing.T) {
	f := jsonerr.NewFields().Set("a", 1)
	g := f.Clone().Set("b", 2)

	if f.Has("b") {
		t.Error("original unexpectedly gained key b")
	}
	if !g.Has("a") || !g.Has("b") {
		t.Errorf("clone keys: got %v, want [a b]", g.Keys())
	}
}

func TestFieldsNil(t *testing.T) {
	var f *jsonerr.Fields

	if f.Len() != 0 {
		t.Errorf("nil Len: got %d, want 0", f.Len())
	}
	if _, ok := f.Get("a"); ok {
		t.Error("nil Get unexpectedly reported a key")
	}
	if keys := f.Keys(); keys != nil {
		t.Errorf("nil Keys: got %v, want nil", keys)
	}
	if g := f.Clone(); g.Len() != 0 {
		t.Errorf("nil Clone length: got %d, want 0", g.Len())
	}
}

func TestFieldsMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(jsonerr.NewFields())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got := string(data); got != "{}" {
		t.Errorf("Marshal: got %#q, want {}", got)
	}
}

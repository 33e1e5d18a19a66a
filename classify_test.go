// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

package jsonerr_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cdumay/jsonerr"
)

// errReader is an io.Reader that always fails.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk exploded") }

func decodeString(s string) error {
	var v any
	return json.Unmarshal([]byte(s), &v)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want jsonerr.Category
	}{
		{"syntax", decodeString(`{"a":1]`), jsonerr.Syntax},
		{"truncated", decodeString(`{`), jsonerr.EOF},
		{"empty", decodeString(``), jsonerr.EOF},
		{"reader", json.NewDecoder(errReader{}).Decode(new(any)), jsonerr.IO},
		{"other", errors.New("not a json error"), jsonerr.IO},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := jsonerr.Classify(test.err)
			if f.Category != test.want {
				t.Errorf("Classify category: got %v, want %v", f.Category, test.want)
			}
			if f.Detail != test.err.Error() {
				t.Errorf("Classify detail: got %q, want %q", f.Detail, test.err.Error())
			}
			if f.Err != test.err {
				t.Errorf("Classify cause: got %v, want %v", f.Err, test.err)
			}
		})
	}
}

func TestClassifyData(t *testing.T) {
	var v struct{ A int }
	err := json.Unmarshal([]byte(`{"a":"x"}`), &v)
	if err == nil {
		t.Fatal("decode unexpectedly succeeded")
	}
	f := jsonerr.Classify(err)
	if f.Category != jsonerr.Data {
		t.Errorf("Classify category: got %v, want %v", f.Category, jsonerr.Data)
	}
	if f.Offset == 0 {
		t.Error("Classify offset: got 0, want nonzero")
	}
}

func TestClassifyTruncatedStream(t *testing.T) {
	err := json.NewDecoder(strings.NewReader(`{"a":`)).Decode(new(any))
	if err == nil {
		t.Fatal("decode unexpectedly succeeded")
	}
	f := jsonerr.Classify(err)
	if f.Category != jsonerr.EOF {
		t.Errorf("Classify category: got %v, want %v", f.Category, jsonerr.EOF)
	}
}

func TestClassifyInputPosition(t *testing.T) {
	src := "{\n  \"a\": 1,\n  \"b\": ]\n}"
	err := decodeString(src)
	if err == nil {
		t.Fatal("decode unexpectedly succeeded")
	}
	f := jsonerr.ClassifyInput(err, []byte(src))
	if f.Category != jsonerr.Syntax {
		t.Errorf("Classify category: got %v, want %v", f.Category, jsonerr.Syntax)
	}
	want := jsonerr.Failure{
		Category: jsonerr.Syntax,
		Line:     3,
		Column:   7,
		Offset:   f.Offset,
		Detail:   err.Error(),
		Err:      err,
	}
	if diff := cmp.Diff(want, f, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
		t.Errorf("ClassifyInput (-want, +got)\n%s", diff)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category jsonerr.Category
		want     string
	}{
		{jsonerr.Syntax, "syntax"},
		{jsonerr.EOF, "eof"},
		{jsonerr.IO, "io"},
		{jsonerr.Data, "data"},
		{jsonerr.Unknown, "unknown"},
		{jsonerr.Category(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.category.String(); got != test.want {
			t.Errorf("String(%d): got %q, want %q", int(test.category), got, test.want)
		}
	}
}

// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Package jsonfile loads JSON documents from disk under a shared advisory
// lock, reporting every failure in the structured form defined by the
// jsonerr package.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/gofrs/flock"
	"go4.org/mem"

	"github.com/cdumay/jsonerr"
	"github.com/cdumay/jsonerr/internal/linecol"
)

const (
	// lockWait bounds how long Load waits for the advisory lock.
	lockWait = 2 * time.Second
	// pollInterval is the interval between lock attempts.
	pollInterval = 10 * time.Millisecond
)

// ErrLockTimeout is the lock failure reported when another process holds
// the lock past the bounded wait.
var ErrLockTimeout = errors.New("timeout acquiring file lock")

// Load reads the JSON document at path and decodes it into v, holding a
// shared advisory lock on path's lock file for the duration of the read.
// All failures are reported as *jsonerr.Error values: lock, open, and
// read problems with the IO kind, decode problems classified with their
// position in the file. The error context always carries the file path,
// and decode failures additionally carry the offending source line under
// the "snippet" key.
func Load(path string, v any) error {
	fields := jsonerr.NewFields().Set("path", path)

	unlock, err := rlock(path)
	if err != nil {
		failure := jsonerr.Failure{Category: jsonerr.IO, Detail: err.Error(), Err: err}
		return jsonerr.Convert(failure, "", fields)
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return jsonerr.Convert(jsonerr.Classify(err), "", fields)
	}

	if err := json.Unmarshal(data, v); err != nil {
		failure := jsonerr.ClassifyInput(err, data)
		if failure.Offset > 0 {
			fields.Set("snippet", linecol.LineText(mem.B(data), int(failure.Offset)-1))
		}
		return jsonerr.Convert(failure, "", fields)
	}
	return nil
}

// rlock takes a shared lock on path's lock file and returns the release
// function.
func rlock(path string) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()

	fl := flock.New(path + ".lock")
	locked, err := fl.TryRLockContext(ctx, pollInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, err
	}
	if !locked {
		return nil, ErrLockTimeout
	}
	return func() { _ = fl.Unlock() }, nil
}

// Copyright (C) 2026 The jsonerr Authors. All Rights Reserved.

// Command jsonerr-check validates a JSON document and reports failures as
// structured, canonically serialized errors.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/tailscale/hujson"

	"github.com/cdumay/jsonerr"
	"github.com/cdumay/jsonerr/canon"
	"github.com/cdumay/jsonerr/hujsonerr"
)

const (
	exitSuccess  = 0
	exitInvalid  = 2
	exitInternal = 10
)

const usage = "usage: jsonerr-check [-relaxed] [file|-]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var relaxed bool
	var paths []string
	for _, arg := range args {
		switch {
		case arg == "-relaxed" || arg == "--relaxed":
			relaxed = true
		case arg == "-h" || arg == "-help" || arg == "--help":
			fmt.Fprintln(stderr, usage)
			return exitSuccess
		case len(arg) > 1 && arg[0] == '-':
			fmt.Fprintf(stderr, "unknown flag: %s\n", arg)
			fmt.Fprintln(stderr, usage)
			return exitInvalid
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) > 1 {
		fmt.Fprintln(stderr, usage)
		return exitInvalid
	}

	fields := jsonerr.NewFields()
	var data []byte
	var err error
	if len(paths) == 0 || paths[0] == "-" {
		fields.Set("input", "stdin")
		data, err = io.ReadAll(stdin)
	} else {
		fields.Set("input", paths[0])
		data, err = os.ReadFile(paths[0])
	}
	if err != nil {
		failure := jsonerr.Failure{Category: jsonerr.IO, Detail: err.Error(), Err: err}
		return report(stdout, jsonerr.Convert(failure, "", fields))
	}

	if relaxed {
		std, herr := hujson.Standardize(data)
		if herr != nil {
			return report(stdout, hujsonerr.Convert(hujsonerr.Classify(herr), "", fields))
		}
		data = std
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return report(stdout, jsonerr.Convert(jsonerr.ClassifyInput(err, data), "", fields))
	}
	return exitSuccess
}

// report prints e in canonical form and maps its status to an exit code.
func report(stdout io.Writer, e *jsonerr.Error) int {
	out, err := canon.Render(e)
	if err != nil {
		return exitInternal
	}
	fmt.Fprintln(stdout, string(out))
	if e.HTTPStatus >= http.StatusInternalServerError {
		return exitInternal
	}
	return exitInvalid
}

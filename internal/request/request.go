// Package request turns raw command-line input into a validated file request.
package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivoronin/fillfile/internal/size"
)

var (
	// ErrMissingExportPath is reported when no destination path is given.
	ErrMissingExportPath = errors.New("missing argument: export path")
	// ErrMissingExportSize is reported when no size expression is given.
	ErrMissingExportSize = errors.New("missing argument: export size")
)

// InvalidSizeError is reported when the size expression does not parse.
type InvalidSizeError struct {
	Raw string // Size expression as typed
	Err error  // Parse failure from the size package
}

func (e *InvalidSizeError) Error() string {
	return "invalid export size: " + e.Raw
}

func (e *InvalidSizeError) Unwrap() error { return e.Err }

// Request is the raw input of one invocation.
type Request struct {
	ExportPath     string
	ExportSizeSpec string
}

// FromArgs builds a Request from positional arguments (path, size).
// Missing arguments are left empty.
func FromArgs(args []string) Request {
	var r Request
	if len(args) > 0 {
		r.ExportPath = args[0]
	}
	if len(args) > 1 {
		r.ExportSizeSpec = args[1]
	}
	return r
}

// Result is the outcome of validating a Request.
// Errors are ordered by argument position and all of them are collected.
type Result struct {
	Path   string
	Bytes  uint64
	errors []error
}

// Errors returns a copy of the validation errors.
func (r Result) Errors() []error {
	return append([]error(nil), r.errors...)
}

// OK reports whether validation found no problems.
func (r Result) OK() bool { return len(r.errors) == 0 }

// Err joins all validation errors, one per line, or returns nil.
func (r Result) Err() error { return errors.Join(r.errors...) }

// Messages returns the errors as user-facing sentences.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.errors))
	for i, err := range r.errors {
		msgs[i] = Message(err)
	}
	return msgs
}

// Message renders an error for the terminal with its first letter capitalized.
func Message(err error) string {
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Validate checks every field of the request and parses the size expression.
func Validate(req Request) Result {
	res := Result{Path: req.ExportPath}

	if req.ExportPath == "" {
		res.errors = append(res.errors, ErrMissingExportPath)
	}

	if req.ExportSizeSpec == "" {
		res.errors = append(res.errors, ErrMissingExportSize)
		return res
	}

	bytes, err := size.Parse(req.ExportSizeSpec)
	if err != nil {
		res.errors = append(res.errors, &InvalidSizeError{Raw: req.ExportSizeSpec, Err: err})
		return res
	}
	res.Bytes = bytes
	return res
}

// String describes the request for log output.
func (r Request) String() string {
	return fmt.Sprintf("path=%q size=%q", r.ExportPath, r.ExportSizeSpec)
}

// Copyright (c) 2026 Codpoe
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package compiler

import "fmt"

// ParseError reports malformed IDL in one source file. File is the
// source-relative path; the message is the user-visible build failure line.
type ParseError struct {
	File string
	Err  error
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	return fmt.Sprintf("Compiler failed: %s. %s", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IoError wraps a filesystem failure with the offending path. I/O failures
// are fatal; the build aborts on the first one.
type IoError struct {
	Op   string // "read", "write", "mkdir", "rmdir"
	Path string
	Err  error
}

var _ error = (*IoError)(nil)

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// InternalError reports a broken driver invariant, such as a task submitted
// after the pool shut down. Fatal.
type InternalError struct {
	Err error
}

var _ error = (*InternalError)(nil)

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

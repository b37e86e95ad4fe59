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

package syntax

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is the single parse error kind. Context holds the chain of
// production labels active at the point of failure, outermost first. Rest
// holds the unconsumed input.
type Error struct {
	Message string
	Context []string
	Rest    string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	rest := e.Rest
	if len(rest) > 32 {
		cut := 32
		for cut > 0 && !utf8.RuneStart(rest[cut]) {
			cut--
		}
		rest = rest[:cut] + "..."
	}
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s (at %q)", e.Message, rest)
	}
	return fmt.Sprintf(
		"%s: %s (at %q)",
		strings.Join(e.Context, " > "), e.Message, rest,
	)
}

func errExpected(p *parser, want string) error {
	return &Error{
		Message: fmt.Sprintf("expected %s", want),
		Context: append([]string(nil), p.ctx...),
		Rest:    p.rest(),
	}
}

func errExpectedDefinition(p *parser) error {
	return &Error{
		Message: "expected namespace, include, struct, enum, or service",
		Context: append([]string(nil), p.ctx...),
		Rest:    p.rest(),
	}
}

func errUnterminated(p *parser, what string) error {
	return &Error{
		Message: fmt.Sprintf("unterminated %s", what),
		Context: append([]string(nil), p.ctx...),
		Rest:    p.rest(),
	}
}

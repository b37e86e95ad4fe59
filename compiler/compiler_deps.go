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

import (
	"github.com/Codpoe/thrift-parser/syntax"
)

// depsVisitor records every include path of a document. Ordering within the
// set is irrelevant; the driver resolves each path against the including
// file's directory.
type depsVisitor struct {
	syntax.NopVisitor
	deps map[string]struct{}
}

var _ syntax.Visitor = (*depsVisitor)(nil)

func newDepsVisitor() *depsVisitor {
	return &depsVisitor{
		deps: make(map[string]struct{}),
	}
}

func (v *depsVisitor) VisitInclude(inc *syntax.Include) {
	v.deps[inc.Path] = struct{}{}
}

// scanDeps returns the set of include paths referenced by doc.
func scanDeps(doc *syntax.Document) map[string]struct{} {
	v := newDepsVisitor()
	syntax.Walk(v, doc)
	return v.deps
}

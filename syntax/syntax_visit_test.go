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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Codpoe/thrift-parser/syntax"
)

type recordingVisitor struct {
	syntax.NopVisitor
	events []string
}

func (v *recordingVisitor) VisitNamespace(ns *syntax.Namespace) {
	v.events = append(v.events, "namespace "+ns.Name)
}

func (v *recordingVisitor) VisitInclude(inc *syntax.Include) {
	v.events = append(v.events, "include "+inc.Path)
}

func (v *recordingVisitor) VisitStruct(s *syntax.Struct) {
	v.events = append(v.events, "struct "+s.Name)
	syntax.WalkStruct(v, s)
}

func (v *recordingVisitor) VisitField(f *syntax.Field) {
	v.events = append(v.events, "field "+f.Name)
}

func (v *recordingVisitor) VisitEnum(e *syntax.Enum) {
	v.events = append(v.events, "enum "+e.Name)
	syntax.WalkEnum(v, e)
}

func (v *recordingVisitor) VisitEnumMember(m *syntax.EnumMember) {
	v.events = append(v.events, "member "+m.Name)
}

func (v *recordingVisitor) VisitService(s *syntax.Service) {
	v.events = append(v.events, "service "+s.Name)
	syntax.WalkService(v, s)
}

func (v *recordingVisitor) VisitFunction(fn *syntax.Function) {
	v.events = append(v.events, "function "+fn.Name)
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`
		namespace ts gen
		include "a.thrift"
		struct S { 1: i32 x 2: i32 y }
		enum E { A B }
		service Svc { void F() }
	`)
	require.NoError(t, err)

	visitor := &recordingVisitor{}
	syntax.Walk(visitor, doc)
	assert.Equal(t, []string{
		"namespace gen",
		"include a.thrift",
		"struct S",
		"field x",
		"field y",
		"enum E",
		"member A",
		"member B",
		"service Svc",
		"function F",
	}, visitor.events)
}

func TestWalkShallowByDefault(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`struct S { 1: i32 x }`)
	require.NoError(t, err)

	// A hook that does not call WalkStruct never sees the fields.
	var fields int
	syntax.Walk(&fieldCounter{count: &fields}, doc)
	assert.Zero(t, fields)
}

type fieldCounter struct {
	syntax.NopVisitor
	count *int
}

func (v *fieldCounter) VisitField(*syntax.Field) {
	*v.count++
}

func TestWalkRewritesInPlace(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`struct S { 1: i32 x }`)
	require.NoError(t, err)

	syntax.Walk(&renamer{}, doc)
	s := doc.Definitions[0].(*syntax.Struct)
	assert.Equal(t, "Renamed", s.Name)
}

type renamer struct {
	syntax.NopVisitor
}

func (*renamer) VisitStruct(s *syntax.Struct) {
	s.Name = "Renamed"
}

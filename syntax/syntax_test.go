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

const fixture = `
namespace x a.b.c

include "a.thrift"

struct GetDataReq {
    // 这是单行注释
    // 这也是单行注释
    1: string parameters
    /* 这是多行注释 */
    2: i32 status (api.query="query_status")
    3: double money
    3: bool is_ok
    2: optional map<a.A, string> kvs
    3: required list<a.A> a_list
    6: ItemType item_type
}

struct GetDataRes {
    1: i32 status (api.body="body_status")
    2: string msg
}

enum ItemType {
    // 未知
    Unknown = 0
    // 普通
    Normal = 1
    // 特别
    Special = 2
}

service ThriftService {
    // 获取数据
    GetDataRes GetData(1: GetDataReq req) (api.get = "/api/get-data", other = "something")
}
`

func TestParseFixture(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(fixture)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 6)

	ns, ok := doc.Definitions[0].(*syntax.Namespace)
	require.True(t, ok)
	assert.Equal(t, "x", ns.Scope)
	assert.Equal(t, "a.b.c", ns.Name)

	inc, ok := doc.Definitions[1].(*syntax.Include)
	require.True(t, ok)
	assert.Equal(t, "a.thrift", inc.Path)

	req, ok := doc.Definitions[2].(*syntax.Struct)
	require.True(t, ok)
	assert.Equal(t, "GetDataReq", req.Name)
	require.Len(t, req.Fields, 7)

	parameters := req.Fields[0]
	assert.Equal(t, "1", parameters.ID)
	assert.Equal(t, "parameters", parameters.Name)
	assert.Equal(t, syntax.NoRequiredness, parameters.Requiredness)
	assert.Equal(t, syntax.String, parameters.Type)
	require.Len(t, parameters.Comments, 2)
	assert.Equal(t, &syntax.LineComment{Text: "这是单行注释"}, parameters.Comments[0])
	assert.Equal(t, &syntax.LineComment{Text: "这也是单行注释"}, parameters.Comments[1])

	status := req.Fields[1]
	assert.Equal(t, "2", status.ID)
	require.Len(t, status.Comments, 1)
	assert.Equal(t, &syntax.BlockComment{Lines: []string{"这是多行注释"}}, status.Comments[0])
	require.Len(t, status.Annotations, 1)
	assert.Equal(t, syntax.Annotation{Name: "api.query", Value: "query_status"}, status.Annotations[0])

	// Duplicate IDs are kept as written, without diagnosis.
	assert.Equal(t, "3", req.Fields[2].ID)
	assert.Equal(t, "3", req.Fields[3].ID)

	kvs := req.Fields[4]
	assert.Equal(t, syntax.Optional, kvs.Requiredness)
	mapType, ok := kvs.Type.(*syntax.MapType)
	require.True(t, ok)
	assert.Equal(t, &syntax.NamedType{Name: "a.A"}, mapType.Key)
	assert.Equal(t, syntax.String, mapType.Value)

	aList := req.Fields[5]
	assert.Equal(t, syntax.Required, aList.Requiredness)
	listType, ok := aList.Type.(*syntax.ListType)
	require.True(t, ok)
	assert.Equal(t, &syntax.NamedType{Name: "a.A"}, listType.Elem)

	itemType := req.Fields[6]
	assert.Equal(t, &syntax.NamedType{Name: "ItemType"}, itemType.Type)

	enum, ok := doc.Definitions[4].(*syntax.Enum)
	require.True(t, ok)
	assert.Equal(t, "ItemType", enum.Name)
	require.Len(t, enum.Members, 3)
	assert.Equal(t, "Unknown", enum.Members[0].Name)
	assert.Equal(t, "0", enum.Members[0].Init)
	require.Len(t, enum.Members[1].Comments, 1)
	assert.Equal(t, &syntax.LineComment{Text: "普通"}, enum.Members[1].Comments[0])

	svc, ok := doc.Definitions[5].(*syntax.Service)
	require.True(t, ok)
	assert.Equal(t, "ThriftService", svc.Name)
	require.Len(t, svc.Functions, 1)

	getData := svc.Functions[0]
	assert.Equal(t, "GetData", getData.Name)
	assert.Equal(t, &syntax.NamedType{Name: "GetDataRes"}, getData.ReturnType)
	require.Len(t, getData.Params, 1)
	assert.Equal(t, "1", getData.Params[0].ID)
	assert.Equal(t, "req", getData.Params[0].Name)
	require.Len(t, getData.Annotations, 2)
	assert.Equal(t, syntax.Annotation{Name: "api.get", Value: "/api/get-data"}, getData.Annotations[0])
	assert.Equal(t, syntax.Annotation{Name: "other", Value: "something"}, getData.Annotations[1])
	require.Len(t, getData.Comments, 1)
	assert.Equal(t, &syntax.LineComment{Text: "获取数据"}, getData.Comments[0])
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	first, err := syntax.Parse(fixture)
	require.NoError(t, err)
	second, err := syntax.Parse(fixture)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCommentAttachment(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`struct S {
		// one
		// two
		1: i32 n // three
		2: i32 m
	}`)
	require.NoError(t, err)

	s := doc.Definitions[0].(*syntax.Struct)
	require.Len(t, s.Fields, 2)

	n := s.Fields[0]
	require.Len(t, n.Comments, 3)
	assert.Equal(t, &syntax.LineComment{Text: "one"}, n.Comments[0])
	assert.Equal(t, &syntax.LineComment{Text: "two"}, n.Comments[1])
	assert.Equal(t, &syntax.LineComment{Text: "three"}, n.Comments[2])

	// The inline comment belongs to n, not to m.
	assert.Empty(t, s.Fields[1].Comments)
}

func TestInlineCommentEnumMember(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`enum E {
		A = 1 // first
		B
	}`)
	require.NoError(t, err)

	e := doc.Definitions[0].(*syntax.Enum)
	require.Len(t, e.Members, 2)
	require.Len(t, e.Members[0].Comments, 1)
	assert.Equal(t, &syntax.LineComment{Text: "first"}, e.Members[0].Comments[0])
	assert.Empty(t, e.Members[1].Comments)
}

func TestTypeGrammar(t *testing.T) {
	t.Parallel()

	testdata := map[string]syntax.Type{
		"string":                  syntax.String,
		"bool":                    syntax.Bool,
		"i64":                     syntax.I64,
		"list<a.A>":               &syntax.ListType{Elem: &syntax.NamedType{Name: "a.A"}},
		"map<string,string>":      &syntax.MapType{Key: syntax.String, Value: syntax.String},
		"map<string, list<i64>>":  &syntax.MapType{Key: syntax.String, Value: &syntax.ListType{Elem: syntax.I64}},
		"list<list<list<i32>>>":   &syntax.ListType{Elem: &syntax.ListType{Elem: &syntax.ListType{Elem: syntax.I32}}},
		"map<i32, map<i32, i32>>": &syntax.MapType{Key: syntax.I32, Value: &syntax.MapType{Key: syntax.I32, Value: syntax.I32}},
		"CustomType":              &syntax.NamedType{Name: "CustomType"},
	}
	for src, want := range testdata {
		t.Run(src, func(t *testing.T) {
			got, err := syntax.ParseType(src)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTypeGrammarListNotReserved(t *testing.T) {
	t.Parallel()

	// "list" and "map" are only recognized before '<'; other uses fall
	// through to the identifier rule.
	got, err := syntax.ParseType("listing")
	require.NoError(t, err)
	assert.Equal(t, &syntax.NamedType{Name: "listing"}, got)
}

func TestEnumInitSpelling(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`enum E { A = 01 }`)
	require.NoError(t, err)
	e := doc.Definitions[0].(*syntax.Enum)
	require.Len(t, e.Members, 1)
	assert.Equal(t, "01", e.Members[0].Init)
}

func TestEnumMembersWithoutInit(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`enum E { A B C }`)
	require.NoError(t, err)
	e := doc.Definitions[0].(*syntax.Enum)
	require.Len(t, e.Members, 3)
	for _, member := range e.Members {
		assert.Equal(t, "", member.Init)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testdata := map[string]string{
		"MissingFieldName":   `struct X { 1: string }`,
		"MissingColon":       `struct X { 1 string name }`,
		"UnterminatedStruct": `struct X { 1: string name`,
		"UnterminatedString": `include "a.thrift`,
		"UnterminatedBlock":  `struct X { /* hm 1: i32 n }`,
		"EmptyAnnotations":   `struct X { 1: i32 n () }`,
		"BadTopLevel":        `typedef i32 MyInt`,
		"EnumBadInit":        `enum E { A = x }`,
	}
	for name, src := range testdata {
		t.Run(name, func(t *testing.T) {
			doc, err := syntax.Parse(src)
			require.Error(t, err)
			assert.Nil(t, doc)

			parseErr, ok := err.(*syntax.Error)
			require.True(t, ok)
			assert.NotEmpty(t, parseErr.Message)
		})
	}
}

func TestParseErrorContext(t *testing.T) {
	t.Parallel()

	_, err := syntax.Parse(`struct X { 1: string }`)
	require.Error(t, err)

	parseErr, ok := err.(*syntax.Error)
	require.True(t, ok)
	assert.Equal(t, []string{"document", "struct", "field"}, parseErr.Context)
	assert.Contains(t, parseErr.Error(), "document > struct > field")
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Definitions)

	doc, err = syntax.Parse("  \n\t\r\n ")
	require.NoError(t, err)
	assert.Empty(t, doc.Definitions)
}

func TestParseUnicodeIdentifier(t *testing.T) {
	t.Parallel()

	// The identifier class is negative, so non-ASCII characters are
	// admitted.
	doc, err := syntax.Parse(`struct 结构 { 1: i32 字段 }`)
	require.NoError(t, err)
	s := doc.Definitions[0].(*syntax.Struct)
	assert.Equal(t, "结构", s.Name)
	assert.Equal(t, "字段", s.Fields[0].Name)
}

func TestParseServiceVoidFunction(t *testing.T) {
	t.Parallel()

	doc, err := syntax.Parse(`service S { void F(1: string s) }`)
	require.NoError(t, err)
	svc := doc.Definitions[0].(*syntax.Service)
	require.Len(t, svc.Functions, 1)
	fn := svc.Functions[0]
	assert.Equal(t, syntax.Void, fn.ReturnType)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, syntax.String, fn.Params[0].Type)
}

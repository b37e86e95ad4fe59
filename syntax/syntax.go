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

// Package syntax parses Thrift IDL source text into a Document tree,
// preserving comments and annotations. The grammar is whitespace-insensitive
// except that line comments terminate at end-of-line. The first error aborts
// the file; no recovery is attempted.
package syntax

import (
	"fmt"
	"strings"
)

// Parse consumes UTF-8 Thrift IDL text and returns the Document tree, or an
// *Error describing the first point of failure.
func Parse(src string) (*Document, error) {
	p := &parser{src: src}
	p.enter("document")
	return p.document()
}

// ParseType parses a single Thrift type expression, e.g. "map<string,i64>".
// The whole input must be consumed.
func ParseType(src string) (Type, error) {
	p := &parser{src: src}
	p.enter("type")
	t, err := p.thriftType()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.eof() {
		return nil, errExpected(p, "end of input")
	}
	return t, nil
}

type parser struct {
	src string
	pos int
	ctx []string // production label chain for error context
}

func (p *parser) rest() string {
	return p.src[p.pos:]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) enter(label string) {
	p.ctx = append(p.ctx, label)
}

func (p *parser) leave() {
	p.ctx = p.ctx[:len(p.ctx)-1]
}

func (p *parser) skipWS() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// ws1 requires at least one whitespace character.
func (p *parser) ws1() bool {
	start := p.pos
	p.skipWS()
	return p.pos > start
}

// lit consumes the exact string s if the input starts with it.
func (p *parser) lit(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) expect(s string) error {
	p.skipWS()
	if p.lit(s) {
		return nil
	}
	return errExpected(p, fmt.Sprintf("%q", s))
}

// isIdentChar reports whether c may appear in an identifier. The class is
// negative: everything is admitted except whitespace, structural sigils, and
// the comma. Dots are legal, so "a.b.c" is a single identifier, and bytes
// >= 0x80 pass through untouched, admitting Unicode letters.
func isIdentChar(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '-', '=', '(', ')', '{', '}', '[', ']', '<', '>', ',':
		return false
	}
	return true
}

func (p *parser) ident() (string, error) {
	p.skipWS()
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", errExpected(p, "identifier")
	}
	return p.src[start:p.pos], nil
}

// integer consumes a run of decimal digits. The digit string is returned as
// written; no numeric conversion happens here.
func (p *parser) integer() (string, bool) {
	p.skipWS()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return p.src[start:p.pos], true
}

// stringLit consumes a double-quoted literal. Escapes are not processed;
// the contents may be any character except '"'.
func (p *parser) stringLit() (string, error) {
	p.skipWS()
	if !p.lit(`"`) {
		return "", errExpected(p, "string literal")
	}
	end := strings.IndexByte(p.src[p.pos:], '"')
	if end < 0 {
		return "", errUnterminated(p, "string literal")
	}
	value := p.src[p.pos : p.pos+end]
	p.pos += end + 1
	return value, nil
}

func (p *parser) lineComment() (Comment, bool) {
	if !p.lit("//") {
		return nil, false
	}
	rest := p.src[p.pos:]
	end := strings.IndexAny(rest, "\r\n")
	if end < 0 {
		end = len(rest)
	}
	p.pos += end
	return &LineComment{Text: strings.TrimSpace(rest[:end])}, true
}

func (p *parser) blockComment() (Comment, bool, error) {
	if !p.lit("/*") {
		return nil, false, nil
	}
	rest := p.src[p.pos:]
	end := strings.Index(rest, "*/")
	if end < 0 {
		return nil, false, errUnterminated(p, "block comment")
	}
	p.pos += end + 2
	var lines []string
	for _, line := range strings.Split(rest[:end], "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return &BlockComment{Lines: lines}, true, nil
}

// comments consumes a possibly-empty whitespace-tolerant run of line and
// block comments.
func (p *parser) comments() ([]Comment, error) {
	var out []Comment
	for {
		p.skipWS()
		if c, ok := p.lineComment(); ok {
			out = append(out, c)
			continue
		}
		c, ok, err := p.blockComment()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, c)
	}
}

// inlineComment matches a line comment preceded by at least one horizontal
// whitespace character on the same logical line.
func (p *parser) inlineComment() (Comment, bool) {
	save := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	if p.pos == save {
		return nil, false
	}
	if c, ok := p.lineComment(); ok {
		return c, true
	}
	p.pos = save
	return nil, false
}

func (p *parser) document() (*Document, error) {
	doc := &Document{}
	for {
		p.skipWS()
		if p.eof() {
			return doc, nil
		}
		def, ok, err := p.tryTopDefinition()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errExpectedDefinition(p)
		}
		doc.Definitions = append(doc.Definitions, def)
	}
}

// tryTopDefinition attempts each top-level alternative in order: namespace,
// include, struct, enum, service. The first alternative to pass its keyword
// is committed; failures after that point abort the parse.
func (p *parser) tryTopDefinition() (TopDefinition, bool, error) {
	if ns, ok, err := p.tryNamespace(); ok || err != nil {
		return ns, ok, err
	}
	if inc, ok, err := p.tryInclude(); ok || err != nil {
		return inc, ok, err
	}
	if st, ok, err := p.tryStruct(); ok || err != nil {
		return st, ok, err
	}
	if en, ok, err := p.tryEnum(); ok || err != nil {
		return en, ok, err
	}
	if svc, ok, err := p.tryService(); ok || err != nil {
		return svc, ok, err
	}
	return nil, false, nil
}

func (p *parser) tryNamespace() (TopDefinition, bool, error) {
	save := p.pos
	p.skipWS()
	if !p.lit("namespace") || !p.ws1() {
		p.pos = save
		return nil, false, nil
	}
	p.enter("namespace")
	defer p.leave()

	scope, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	if !p.ws1() {
		return nil, false, errExpected(p, "whitespace")
	}
	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	return &Namespace{Scope: scope, Name: name}, true, nil
}

func (p *parser) tryInclude() (TopDefinition, bool, error) {
	save := p.pos
	p.skipWS()
	if !p.lit("include") || !p.ws1() {
		p.pos = save
		return nil, false, nil
	}
	p.enter("include")
	defer p.leave()

	path, err := p.stringLit()
	if err != nil {
		return nil, false, err
	}
	return &Include{Path: path}, true, nil
}

func (p *parser) tryStruct() (TopDefinition, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	p.skipWS()
	if !p.lit("struct") || !p.ws1() {
		p.pos = save
		return nil, false, nil
	}
	p.enter("struct")
	defer p.leave()

	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	if err := p.expect("{"); err != nil {
		return nil, false, err
	}
	var fields []*Field
	for {
		field, ok, err := p.tryField()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		fields = append(fields, field)
	}
	if err := p.expect("}"); err != nil {
		return nil, false, err
	}
	return &Struct{Name: name, Fields: fields, Comments: comments}, true, nil
}

func (p *parser) tryEnum() (TopDefinition, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	p.skipWS()
	if !p.lit("enum") || !p.ws1() {
		p.pos = save
		return nil, false, nil
	}
	p.enter("enum")
	defer p.leave()

	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	if err := p.expect("{"); err != nil {
		return nil, false, err
	}
	var members []*EnumMember
	for {
		member, ok, err := p.tryEnumMember()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		members = append(members, member)
	}
	if err := p.expect("}"); err != nil {
		return nil, false, err
	}
	return &Enum{Name: name, Members: members, Comments: comments}, true, nil
}

func (p *parser) tryService() (TopDefinition, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	p.skipWS()
	if !p.lit("service") || !p.ws1() {
		p.pos = save
		return nil, false, nil
	}
	p.enter("service")
	defer p.leave()

	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	if err := p.expect("{"); err != nil {
		return nil, false, err
	}
	var functions []*Function
	for {
		fn, ok, err := p.tryFunction()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		functions = append(functions, fn)
	}
	if err := p.expect("}"); err != nil {
		return nil, false, err
	}
	return &Service{Name: name, Functions: functions, Comments: comments}, true, nil
}

// tryField parses "leading-comments? N : requiredness? type name
// annotations? inline-comment?". A field is committed once its leading
// integer has been read.
func (p *parser) tryField() (*Field, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	id, ok := p.integer()
	if !ok {
		p.pos = save
		return nil, false, nil
	}
	p.enter("field")
	defer p.leave()

	if err := p.expect(":"); err != nil {
		return nil, false, err
	}
	req := p.requiredness()
	typ, err := p.thriftType()
	if err != nil {
		return nil, false, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	annotations, err := p.tryAnnotations()
	if err != nil {
		return nil, false, err
	}
	if c, ok := p.inlineComment(); ok {
		comments = append(comments, c)
	}
	return &Field{
		ID:           id,
		Requiredness: req,
		Type:         typ,
		Name:         name,
		Annotations:  annotations,
		Comments:     comments,
	}, true, nil
}

func (p *parser) tryEnumMember() (*EnumMember, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	p.skipWS()
	if p.eof() || !isIdentChar(p.src[p.pos]) {
		p.pos = save
		return nil, false, nil
	}
	p.enter("enum-member")
	defer p.leave()

	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}

	var init string
	eqSave := p.pos
	p.skipWS()
	if p.lit("=") {
		value, ok := p.integer()
		if !ok {
			return nil, false, errExpected(p, "integer")
		}
		init = value
	} else {
		p.pos = eqSave
	}

	if c, ok := p.inlineComment(); ok {
		comments = append(comments, c)
	}
	return &EnumMember{Name: name, Init: init, Comments: comments}, true, nil
}

func (p *parser) tryFunction() (*Function, bool, error) {
	save := p.pos
	comments, err := p.comments()
	if err != nil {
		return nil, false, err
	}
	p.skipWS()
	if p.eof() || !isIdentChar(p.src[p.pos]) {
		p.pos = save
		return nil, false, nil
	}
	p.enter("function")
	defer p.leave()

	ret, err := p.thriftType()
	if err != nil {
		return nil, false, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, false, err
	}
	if err := p.expect("("); err != nil {
		return nil, false, err
	}
	var params []*Field
	for {
		param, ok, err := p.tryField()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		params = append(params, param)
	}
	if err := p.expect(")"); err != nil {
		return nil, false, err
	}
	annotations, err := p.tryAnnotations()
	if err != nil {
		return nil, false, err
	}
	return &Function{
		ReturnType:  ret,
		Name:        name,
		Params:      params,
		Annotations: annotations,
		Comments:    comments,
	}, true, nil
}

func (p *parser) requiredness() Requiredness {
	p.skipWS()
	if p.lit("optional") {
		return Optional
	}
	if p.lit("required") {
		return Required
	}
	return NoRequiredness
}

var baseTypes = []struct {
	keyword string
	type_   BaseType
}{
	{"void", Void},
	{"string", String},
	{"i16", I16},
	{"i32", I32},
	{"i64", I64},
	{"double", Double},
	{"bool", Bool},
}

// thriftType parses a type expression. Primitive keywords are matched as
// plain tags before the identifier fallback; "list" and "map" are not
// reserved and are only recognized when immediately followed by '<'.
func (p *parser) thriftType() (Type, error) {
	p.skipWS()
	for _, base := range baseTypes {
		if p.lit(base.keyword) {
			return base.type_, nil
		}
	}
	if p.lit("list<") {
		elem, err := p.thriftType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(">"); err != nil {
			return nil, err
		}
		return &ListType{Elem: elem}, nil
	}
	if p.lit("map<") {
		key, err := p.thriftType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
		value, err := p.thriftType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(">"); err != nil {
			return nil, err
		}
		return &MapType{Key: key, Value: value}, nil
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	return &NamedType{Name: name}, nil
}

// tryAnnotations parses "( name = "value" , ... )" when the input continues
// with an opening parenthesis.
func (p *parser) tryAnnotations() ([]Annotation, error) {
	save := p.pos
	p.skipWS()
	if !p.lit("(") {
		p.pos = save
		return nil, nil
	}
	p.enter("annotations")
	defer p.leave()

	var out []Annotation
	for {
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if err := p.expect("="); err != nil {
			return nil, err
		}
		value, err := p.stringLit()
		if err != nil {
			return nil, err
		}
		out = append(out, Annotation{Name: name, Value: value})
		p.skipWS()
		if p.lit(",") {
			continue
		}
		if p.lit(")") {
			return out, nil
		}
		return nil, errExpected(p, `"," or ")"`)
	}
}

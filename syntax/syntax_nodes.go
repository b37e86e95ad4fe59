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

import "fmt"

// Document is the root of a parsed Thrift source file. Definition order is
// preserved so that emission order matches source order.
type Document struct {
	Definitions []TopDefinition
}

// TopDefinition is implemented by every top-level definition kind:
// *Namespace, *Include, *Struct, *Enum, and *Service.
type TopDefinition interface {
	topDefinition()
}

type Namespace struct {
	Scope string
	Name  string // dotted identifier, e.g. "a.b.c"
}

type Include struct {
	Path string // string literal as written, e.g. "a.thrift"
}

type Struct struct {
	Name     string
	Fields   []*Field
	Comments []Comment
}

type Enum struct {
	Name     string
	Members  []*EnumMember
	Comments []Comment
}

type Service struct {
	Name      string
	Functions []*Function
	Comments  []Comment
}

func (*Namespace) topDefinition() {}
func (*Include) topDefinition()   {}
func (*Struct) topDefinition()    {}
func (*Enum) topDefinition()      {}
func (*Service) topDefinition()   {}

// Requiredness is the per-field modifier between the field ID and the type.
type Requiredness uint8

const (
	NoRequiredness Requiredness = iota
	Required
	Optional
)

func (r Requiredness) String() string {
	switch r {
	case NoRequiredness:
		return ""
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return fmt.Sprintf("Requiredness(%d)", uint8(r))
	}
}

// Field is a struct member or a function parameter. ID holds the ordinal
// exactly as written; duplicates are preserved without diagnosis.
type Field struct {
	ID           string // decimal digit string
	Requiredness Requiredness
	Type         Type
	Name         string
	Annotations  []Annotation
	Comments     []Comment
}

// EnumMember is a single enum entry. Init holds the initializer digit string
// in its exact source spelling, or "" when absent.
type EnumMember struct {
	Name     string
	Init     string
	Comments []Comment
}

type Function struct {
	ReturnType  Type
	Name        string
	Params      []*Field
	Annotations []Annotation
	Comments    []Comment
}

// Annotation is a (name, string literal) pair attached to a field or
// function. The name may be dotted, e.g. "api.query".
type Annotation struct {
	Name  string
	Value string
}

// Type is implemented by BaseType, *ListType, *MapType, and *NamedType.
type Type interface {
	thriftType()
}

// BaseType is one of the primitive Thrift type keywords.
type BaseType uint8

const (
	Void BaseType = iota
	String
	I16
	I32
	I64
	Double
	Bool
)

func (t BaseType) String() string {
	switch t {
	case Void:
		return "void"
	case String:
		return "string"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case Double:
		return "double"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("BaseType(%d)", uint8(t))
	}
}

type ListType struct {
	Elem Type
}

type MapType struct {
	Key   Type
	Value Type
}

// NamedType is a user-defined type reference, carried verbatim. The name may
// be dotted ("a.A") when the type lives in an included file.
type NamedType struct {
	Name string
}

func (BaseType) thriftType()   {}
func (*ListType) thriftType()  {}
func (*MapType) thriftType()   {}
func (*NamedType) thriftType() {}

// Comment is implemented by *LineComment and *BlockComment.
type Comment interface {
	comment()
}

// LineComment is a "//" comment, trimmed of surrounding whitespace.
type LineComment struct {
	Text string
}

// BlockComment is a "/* ... */" comment, split on newlines with each line
// trimmed.
type BlockComment struct {
	Lines []string
}

func (*LineComment) comment()  {}
func (*BlockComment) comment() {}

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

// Visitor has one hook per node kind. Walk dispatches each top-level
// definition to its hook; hooks that want to descend call the matching
// Walk* helper. Embed NopVisitor to override only the hooks a pass cares
// about. Hooks receive pointers into the tree, so a pass may rewrite nodes
// in place.
type Visitor interface {
	VisitNamespace(*Namespace)
	VisitInclude(*Include)
	VisitStruct(*Struct)
	VisitField(*Field)
	VisitEnum(*Enum)
	VisitEnumMember(*EnumMember)
	VisitService(*Service)
	VisitFunction(*Function)
}

// NopVisitor implements Visitor with empty hooks.
type NopVisitor struct{}

var _ Visitor = (*NopVisitor)(nil)

func (*NopVisitor) VisitNamespace(*Namespace)   {}
func (*NopVisitor) VisitInclude(*Include)       {}
func (*NopVisitor) VisitStruct(*Struct)         {}
func (*NopVisitor) VisitField(*Field)           {}
func (*NopVisitor) VisitEnum(*Enum)             {}
func (*NopVisitor) VisitEnumMember(*EnumMember) {}
func (*NopVisitor) VisitService(*Service)       {}
func (*NopVisitor) VisitFunction(*Function)     {}

// Walk dispatches every top-level definition of doc to its visitor hook, in
// source order.
func Walk(v Visitor, doc *Document) {
	for _, def := range doc.Definitions {
		switch def := def.(type) {
		case *Namespace:
			v.VisitNamespace(def)
		case *Include:
			v.VisitInclude(def)
		case *Struct:
			v.VisitStruct(def)
		case *Enum:
			v.VisitEnum(def)
		case *Service:
			v.VisitService(def)
		}
	}
}

// WalkStruct calls the field hook for every field of s, in source order.
func WalkStruct(v Visitor, s *Struct) {
	for _, field := range s.Fields {
		v.VisitField(field)
	}
}

// WalkEnum calls the member hook for every member of e, in source order.
func WalkEnum(v Visitor, e *Enum) {
	for _, member := range e.Members {
		v.VisitEnumMember(member)
	}
}

// WalkService calls the function hook for every function of s, in source
// order.
func WalkService(v Visitor, s *Service) {
	for _, fn := range s.Functions {
		v.VisitFunction(fn)
	}
}

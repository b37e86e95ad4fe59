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

// Package tsgen emits TypeScript declarations from a parsed Thrift document.
// Emission order matches source order, and every comment captured by the
// parser appears in the output exactly once.
package tsgen

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/Codpoe/thrift-parser/syntax"
)

// GenerateOptions configures the generator. No options are recognized today;
// the type is passed by value through every call site so future options
// propagate without breaking signatures.
type GenerateOptions struct{}

// Generator walks a Document once and builds a single TypeScript source
// string. The tree itself is never mutated; the only state is the output
// buffer and the enum auto-index scratch.
type Generator struct {
	doc  *syntax.Document
	opts GenerateOptions

	buf       strings.Builder
	indent    int
	wrote     bool
	enumIndex int
}

var _ syntax.Visitor = (*Generator)(nil)

func New(doc *syntax.Document) *Generator {
	return &Generator{doc: doc}
}

// Build emits the whole document. Building the same tree twice yields
// byte-identical output.
func (g *Generator) Build(opts GenerateOptions) string {
	g.opts = opts
	g.buf.Reset()
	g.indent = 0
	g.wrote = false
	syntax.Walk(g, g.doc)
	return g.buf.String()
}

// VisitNamespace renders the namespace as a documentary comment block; it
// has no runtime effect in TypeScript.
func (g *Generator) VisitNamespace(ns *syntax.Namespace) {
	g.sep()
	g.line(fmt.Sprintf("/** namespace %s %s */", ns.Scope, ns.Name))
}

// VisitInclude re-points the included file at its sibling .ts translation
// with a namespace-style import keyed by the file's basename.
func (g *Generator) VisitInclude(inc *syntax.Include) {
	g.sep()
	g.line(fmt.Sprintf("import * as %s from %q;", importName(inc.Path), importPath(inc.Path)))
}

func (g *Generator) VisitStruct(s *syntax.Struct) {
	g.sep()
	g.jsdoc(commentLines(s.Comments))
	g.line("export interface " + s.Name + " {")
	g.indent++
	syntax.WalkStruct(g, s)
	g.indent--
	g.line("}")
}

// VisitField emits one interface member. The field ID and any annotations
// ride along as JSDoc tags so they survive through the type system.
func (g *Generator) VisitField(f *syntax.Field) {
	lines := commentLines(f.Comments)
	lines = append(lines, "@fieldId "+f.ID)
	for _, a := range f.Annotations {
		lines = append(lines, "@annotation "+a.Name+"="+a.Value)
	}
	g.jsdoc(lines)

	opt := ""
	if f.Requiredness == syntax.Optional {
		opt = "?"
	}
	g.line(f.Name + opt + ": " + TsType(f.Type) + ";")
}

// VisitEnum emits a const object plus a keyof-values type alias of the same
// name.
func (g *Generator) VisitEnum(e *syntax.Enum) {
	g.sep()
	g.jsdoc(commentLines(e.Comments))
	g.line("export const " + e.Name + " = {")
	g.indent++
	g.enumIndex = 0
	syntax.WalkEnum(g, e)
	g.indent--
	g.line("} as const;")
	g.blank()
	g.line("export type " + e.Name + " = typeof " + e.Name + "[keyof typeof " + e.Name + "];")
}

// VisitEnumMember uses the written initializer verbatim when present, or the
// member's zero-based declaration index when absent.
func (g *Generator) VisitEnumMember(m *syntax.EnumMember) {
	g.jsdoc(commentLines(m.Comments))
	value := m.Init
	if value == "" {
		value = strconv.Itoa(g.enumIndex)
	}
	g.enumIndex++
	g.line(m.Name + ": " + value + ",")
}

func (g *Generator) VisitService(s *syntax.Service) {
	g.sep()
	g.jsdoc(commentLines(s.Comments))
	g.line("export interface " + s.Name + " {")
	g.indent++
	syntax.WalkService(g, s)
	g.indent--
	g.line("}")
}

// VisitFunction emits one method signature. Parameter order equals field
// order; field IDs are dropped from the call surface but preserved as JSDoc
// tags, one "@fieldId <id> <name>" line per parameter.
func (g *Generator) VisitFunction(fn *syntax.Function) {
	lines := commentLines(fn.Comments)
	for _, param := range fn.Params {
		lines = append(lines, commentLines(param.Comments)...)
		lines = append(lines, "@fieldId "+param.ID+" "+param.Name)
		for _, a := range param.Annotations {
			lines = append(lines, "@annotation "+a.Name+"="+a.Value)
		}
	}
	for _, a := range fn.Annotations {
		lines = append(lines, "@annotation "+a.Name+"="+a.Value)
	}
	g.jsdoc(lines)

	params := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, param.Name+": "+TsType(param.Type))
	}
	g.line(fn.Name + "(" + strings.Join(params, ", ") + "): " + TsType(fn.ReturnType) + ";")
}

// TsType maps a Thrift type to its TypeScript spelling. i64 collapses to
// number, losing precision above 2^53; this is a documented limitation.
// Named types are emitted verbatim, dotted or not.
func TsType(t syntax.Type) string {
	switch t := t.(type) {
	case syntax.BaseType:
		switch t {
		case syntax.Void:
			return "void"
		case syntax.String:
			return "string"
		case syntax.Bool:
			return "boolean"
		default:
			return "number" // i16, i32, i64, double
		}
	case *syntax.ListType:
		return "Array<" + TsType(t.Elem) + ">"
	case *syntax.MapType:
		return "Record<" + TsType(t.Key) + ", " + TsType(t.Value) + ">"
	case *syntax.NamedType:
		return t.Name
	default:
		return ""
	}
}

// line writes one indented line. Indentation is two spaces per level; lines
// end with \n and never carry trailing whitespace.
func (g *Generator) line(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("  ")
	}
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *Generator) blank() {
	g.buf.WriteByte('\n')
}

// sep writes the blank line separating top-level definitions.
func (g *Generator) sep() {
	if g.wrote {
		g.blank()
	}
	g.wrote = true
}

// jsdoc writes a JSDoc block, compacted to one line when it has a single
// entry. Empty input writes nothing.
func (g *Generator) jsdoc(lines []string) {
	if len(lines) == 0 {
		return
	}
	if len(lines) == 1 {
		g.line("/** " + lines[0] + " */")
		return
	}
	g.line("/**")
	for _, l := range lines {
		if l == "" {
			g.line(" *")
		} else {
			g.line(" * " + l)
		}
	}
	g.line(" */")
}

func commentLines(comments []syntax.Comment) []string {
	var lines []string
	for _, c := range comments {
		switch c := c.(type) {
		case *syntax.LineComment:
			lines = append(lines, c.Text)
		case *syntax.BlockComment:
			lines = append(lines, c.Lines...)
		}
	}
	return lines
}

// importPath swaps the include path's extension for .ts and makes the path
// explicitly relative.
func importPath(include string) string {
	p := strings.TrimSuffix(include, path.Ext(include)) + ".ts"
	if !strings.HasPrefix(p, "./") && !strings.HasPrefix(p, "../") {
		p = "./" + p
	}
	return p
}

// importName derives a deterministic TypeScript identifier from the include
// path's basename.
func importName(include string) string {
	base := path.Base(include)
	base = strings.TrimSuffix(base, path.Ext(base))
	name := make([]byte, 0, len(base))
	for i := 0; i < len(base); i++ {
		c := base[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '$':
			name = append(name, c)
		default:
			name = append(name, '_')
		}
	}
	if len(name) == 0 || (name[0] >= '0' && name[0] <= '9') {
		name = append([]byte{'_'}, name...)
	}
	return string(name)
}

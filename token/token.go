// Package token defines the lexical tokens and source positions attached to
// syntax tree nodes.
package token

import "fmt"

// Type describes the lexical category of a token.
type Type string

// Token categories as produced by ESTree-compatible tokenizers.
const (
	BOOLEAN    Type = "Boolean"
	IDENT      Type = "Identifier"
	KEYWORD    Type = "Keyword"
	NULL       Type = "Null"
	NUMERIC    Type = "Numeric"
	PUNCTUATOR Type = "Punctuator"
	REGEXP     Type = "RegularExpression"
	STRING     Type = "String"
	TEMPLATE   Type = "Template"
	JSXIDENT   Type = "JSXIdentifier"
	JSXTEXT    Type = "JSXText"
	ILLEGAL    Type = "ILLEGAL"
)

// Punctuator values inspected around node boundaries.
const (
	LPAREN = "("
	RPAREN = ")"
)

// Position points to a particular location in the source text.
type Position struct {
	Line   int `json:"line" yaml:"line"`     // 1-indexed line number
	Column int `json:"column" yaml:"column"` // 0-indexed column number
	Offset int `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// LineNumber returns the 1-indexed line number for this position.
func (p Position) LineNumber() int {
	return p.Line
}

// ColumnNumber returns the 1-indexed column number for this position.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position, representing an unset position.
var NoPos = Position{}

// Compare orders two positions by line and then by column. The result is
// negative if a is before b, zero if they are equal and positive otherwise.
func Compare(a, b Position) int {
	if d := a.Line - b.Line; d != 0 {
		return d
	}
	return a.Column - b.Column
}

// Span is a start/end pair of positions.
type Span struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return Compare(s.Start, other.Start) <= 0 && Compare(other.End, s.End) <= 0
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type  Type   `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Loc   Span   `json:"loc" yaml:"loc"`
}

// Is reports whether the token's literal value equals v.
func (t *Token) Is(v string) bool {
	return t != nil && t.Value == v
}

func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q (%s-%s)", t.Type, t.Value, t.Loc.Start, t.Loc.End)
}

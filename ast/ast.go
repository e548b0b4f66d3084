// Package ast defines a generic, ESTree-shaped syntax tree. Nodes carry a
// type tag and a set of named fields rather than one Go type per construct,
// so the same tree can describe JavaScript, JSX, Flow and TypeScript input.
package ast

import (
	"fmt"
	"slices"

	"github.com/risor-io/fastpath/token"
)

// Node represents a portion of the syntax tree. Field values are one of:
// *Node, []any (possibly with nil holes), string, float64, bool, nil or
// map[string]any for opaque data such as regex literals.
type Node struct {
	Type   string
	Extra  map[string]any
	Loc    *Location
	fields map[string]any
	keys   []string
}

// New returns an empty node of the given type.
func New(typ string) *Node {
	return &Node{Type: typ, fields: map[string]any{}}
}

// Get returns the value stored under name, or nil if it is unset.
func (n *Node) Get(name string) any {
	if n == nil {
		return nil
	}
	switch name {
	case "type":
		return n.Type
	case "loc":
		if n.Loc == nil {
			return nil
		}
		return n.Loc
	case "extra":
		if n.Extra == nil {
			return nil
		}
		return n.Extra
	}
	return n.fields[name]
}

// Set stores value under name and returns the node so calls can be chained.
func (n *Node) Set(name string, value any) *Node {
	if n.fields == nil {
		n.fields = map[string]any{}
	}
	if _, ok := n.fields[name]; !ok {
		n.keys = append(n.keys, name)
	}
	n.fields[name] = value
	return n
}

// Has reports whether name has been set on the node, even to nil.
func (n *Node) Has(name string) bool {
	if n == nil {
		return false
	}
	_, ok := n.fields[name]
	return ok
}

// Keys returns the field names in the order they were first set.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return slices.Clone(n.keys)
}

// Child returns the field as a node, or nil if it is unset or not a node.
func (n *Node) Child(name string) *Node {
	child, _ := n.Get(name).(*Node)
	return child
}

// List returns the field as a list, or nil if it is unset or not a list.
func (n *Node) List(name string) []any {
	list, _ := n.Get(name).([]any)
	return list
}

// Str returns the field as a string, or "" if it is unset or not a string.
func (n *Node) Str(name string) string {
	s, _ := n.Get(name).(string)
	return s
}

// Bool returns the field as a bool, or false if it is unset or not a bool.
func (n *Node) Bool(name string) bool {
	b, _ := n.Get(name).(bool)
	return b
}

// Is reports whether the node's type matches any of the given types.
func (n *Node) Is(types ...string) bool {
	if n == nil {
		return false
	}
	return slices.Contains(types, n.Type)
}

// Parenthesized reports whether the parser recorded that this node was
// wrapped in explicit parentheses in the original source.
func (n *Node) Parenthesized() bool {
	if n == nil || n.Extra == nil {
		return false
	}
	p, _ := n.Extra["parenthesized"].(bool)
	return p
}

// SetParenthesized records or clears the explicit-parentheses marker.
func (n *Node) SetParenthesized(v bool) *Node {
	if n.Extra == nil {
		n.Extra = map[string]any{}
	}
	n.Extra["parenthesized"] = v
	return n
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Loc != nil && n.Loc.Start.IsValid() {
		return fmt.Sprintf("%s@%s", n.Type, n.Loc.Start)
	}
	return n.Type
}

// Location is the source span of a node. When the tree was produced together
// with a token stream, Tokens holds the token sequence of the whole program
// and StartToken/EndToken delimit the node's tokens as a half-open range.
type Location struct {
	Start      token.Position
	End        token.Position
	Tokens     []*token.Token
	StartToken int
	EndToken   int
}

// Span returns the start/end pair of the location.
func (l *Location) Span() token.Span {
	return token.Span{Start: l.Start, End: l.End}
}

// HasTokens reports whether a token sequence is attached to the location.
func (l *Location) HasTokens() bool {
	return l != nil && l.Tokens != nil
}

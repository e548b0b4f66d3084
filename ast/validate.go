package ast

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/fastpath/token"
)

// Validate checks the structural consistency of the tree rooted at root and
// returns every problem found, aggregated into a single error. A nil result
// means the tree is safe to traverse and to query for tokens.
func Validate(root *Node, g Grammar) error {
	if g == nil {
		g = DefaultGrammar
	}
	v := &validator{grammar: g}
	v.node(root, nil, "$")
	return v.errs.ErrorOrNil()
}

type validator struct {
	grammar Grammar
	errs    *multierror.Error
}

func (v *validator) errorf(format string, args ...any) {
	v.errs = multierror.Append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) node(n *Node, parent *Location, path string) {
	if !v.grammar.IsNode(n) {
		v.errorf("%s: not a node", path)
		return
	}
	path = path + "(" + n.Type + ")"
	loc := n.Loc
	if loc != nil {
		v.location(loc, parent, path)
	} else {
		loc = parent
	}
	for _, key := range n.keys {
		v.value(n.fields[key], loc, path+"."+key)
	}
}

func (v *validator) value(val any, parent *Location, path string) {
	switch val := val.(type) {
	case *Node:
		v.node(val, parent, path)
	case []any:
		for i, elem := range val {
			if elem != nil {
				v.value(elem, parent, fmt.Sprintf("%s[%d]", path, i))
			}
		}
	}
}

func (v *validator) location(loc *Location, parent *Location, path string) {
	if token.Compare(loc.Start, loc.End) > 0 {
		v.errorf("%s: start %s is after end %s", path, loc.Start, loc.End)
	}
	if parent != nil && !parent.Span().Contains(loc.Span()) {
		v.errorf("%s: span %s-%s escapes parent span %s-%s",
			path, loc.Start, loc.End, parent.Start, parent.End)
	}
	if !loc.HasTokens() {
		return
	}
	if loc.StartToken < 0 || loc.EndToken > len(loc.Tokens) || loc.StartToken > loc.EndToken {
		v.errorf("%s: token range [%d, %d) invalid for %d tokens",
			path, loc.StartToken, loc.EndToken, len(loc.Tokens))
	}
}

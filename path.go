// Package fastpath tracks the ancestry of the value currently visited by a
// code printer and decides whether an expression must be parenthesized to
// keep its meaning when printed.
//
// A Path is a stack alternating property names and values:
//
//	[root, name1, value1, name2, value2, ...]
//
// The current value is always the last element and its name the one before
// it. Names are strings for node fields and ints for list indexes.
package fastpath

import (
	"reflect"
	"slices"

	"github.com/rs/zerolog"

	"github.com/risor-io/fastpath/ast"
	"github.com/risor-io/fastpath/errz"
)

// Path is the ancestry record of one traversal. It is not safe for
// concurrent use; divergent traversals must each work on their own Copy.
type Path struct {
	stack   []any
	grammar ast.Grammar
	log     zerolog.Logger
}

// Ancestry is a linked ancestry record produced by another traversal
// library. ParentPath returns nil at the root.
type Ancestry interface {
	Name() any
	Value() any
	ParentPath() Ancestry
}

// New returns a Path whose only element is root.
func New(root any, opts ...Option) *Path {
	return newPath([]any{root}, opts)
}

// NewNamed returns a Path whose root is stored under name. The stack then
// has even length and the root sits at index 1.
func NewNamed(name, root any, opts ...Option) *Path {
	return newPath([]any{name, root}, opts)
}

func newPath(stack []any, opts []Option) *Path {
	cfg := newConfig(opts)
	return &Path{
		stack:   stack,
		grammar: cfg.grammar,
		log:     cfg.logger,
	}
}

// From builds a Path from v. A *Path is copied, an Ancestry record is
// replayed from its root to its tip, and any other value becomes the root of
// a new Path. Options given here override those of a copied Path.
func From(v any, opts ...Option) *Path {
	switch v := v.(type) {
	case *Path:
		if v == nil {
			break
		}
		cp := v.Copy()
		if len(opts) > 0 {
			cfg := &config{grammar: cp.grammar, logger: cp.log}
			for _, opt := range opts {
				opt(cfg)
			}
			cp.grammar, cp.log = cfg.grammar, cfg.logger
		}
		return cp
	case Ancestry:
		if !isNil(v) {
			return newPath(replay(v), opts)
		}
	}
	return New(v, opts...)
}

// replay collects the (name, value) pairs of rec, tip first, and returns
// them in root-to-tip order.
func replay(rec Ancestry) []any {
	stack := []any{rec.Value()}
	for {
		pp := rec.ParentPath()
		if isNil(pp) {
			break
		}
		stack = append(stack, rec.Name(), pp.Value())
		rec = pp
	}
	if name := rec.Name(); name != nil {
		stack = append(stack, name)
	}
	slices.Reverse(stack)
	return stack
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Copy returns a Path with its own stack holding the same values.
func (p *Path) Copy() *Path {
	return &Path{
		stack:   slices.Clone(p.stack),
		grammar: p.grammar,
		log:     p.log,
	}
}

// Len returns the number of elements on the stack.
func (p *Path) Len() int {
	return len(p.stack)
}

// GetName returns the name under which the current value is stored, or nil
// if the stack holds only an unnamed root.
func (p *Path) GetName() any {
	if len(p.stack) > 1 {
		return p.stack[len(p.stack)-2]
	}
	return nil
}

// GetValue returns the current value.
func (p *Path) GetValue() any {
	p.mustHaveRoot()
	return p.stack[len(p.stack)-1]
}

// mustHaveRoot panics when the stack lost its root, as with a zero Path.
func (p *Path) mustHaveRoot() {
	if len(p.stack) == 0 {
		panic(errz.NewInvariantError(errz.ErrStack, "path has no root"))
	}
}

// ValueIsDuplicate reports whether the current value also appears at an
// earlier value position, i.e. the tree shares or cycles back to it.
func (p *Path) ValueIsDuplicate() bool {
	p.mustHaveRoot()
	last := len(p.stack) - 1
	value := p.stack[last]
	for i := last - 2; i >= 0; i -= 2 {
		if sameValue(p.stack[i], value) {
			return true
		}
	}
	return false
}

// GetNode returns the count-th nearest node, scanning from the current
// value toward the root and skipping values that are not nodes. GetNode(0)
// is the current value if it is a node, else the node containing it.
// It returns nil when the stack is exhausted.
func (p *Path) GetNode(count int) *ast.Node {
	for i := len(p.stack) - 1; i >= 0; i -= 2 {
		if n, ok := p.asNode(p.stack[i]); ok {
			if count--; count < 0 {
				return n
			}
		}
	}
	return nil
}

// GetParentNode returns the count-th nearest strict ancestor node.
func (p *Path) GetParentNode(count int) *ast.Node {
	return p.GetNode(count + 1)
}

// GetRootValue returns the value the Path was created with, regardless of
// how deep the traversal currently is.
func (p *Path) GetRootValue() any {
	p.mustHaveRoot()
	if len(p.stack)%2 == 0 {
		return p.stack[1]
	}
	return p.stack[0]
}

func (p *Path) asNode(v any) (*ast.Node, bool) {
	if !p.grammar.IsNode(v) {
		return nil, false
	}
	n, ok := v.(*ast.Node)
	return n, ok
}

// sameValue compares two stack values by identity. Lists and maps are the
// same when they share backing storage.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() > 0 && va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// Names returns the names on the stack from the root to the current value.
// An unnamed root contributes no entry.
func (p *Path) Names() []any {
	start := 1
	if len(p.stack)%2 == 0 {
		start = 0
	}
	names := make([]any, 0, len(p.stack)/2)
	for i := start; i < len(p.stack); i += 2 {
		names = append(names, p.stack[i])
	}
	return names
}

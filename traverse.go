package fastpath

import (
	"errors"
	"fmt"

	"github.com/risor-io/fastpath/ast"
)

// ErrNotList is returned by Each and Map when the named value is not a list.
var ErrNotList = errors.New("value is not a list")

// SkipChildren may be returned by a Walk callback to skip the children of
// the current node. It is never returned by Walk itself.
var SkipChildren = errors.New("skip children")

// Call descends through names from the current value, pushing each
// (name, value) pair, and invokes fn with the Path positioned at the final
// value. The stack is restored to its previous length before Call returns,
// including when fn returns an error or panics.
func (p *Path) Call(fn func(*Path) error, names ...any) error {
	defer p.truncate(len(p.stack))
	p.descend(names)
	return fn(p)
}

// Each descends through names like Call and then invokes fn once for every
// present element of the resulting list, with the element's index pushed
// as its name. Nil elements are holes and are skipped. Iteration stops at
// the first error, which is returned after the stack has been restored.
func (p *Path) Each(fn func(*Path) error, names ...any) error {
	defer p.truncate(len(p.stack))
	list, err := p.descendList(names)
	if err != nil {
		return err
	}
	base := len(p.stack)
	for i, elem := range list {
		if elem == nil {
			continue
		}
		p.stack = append(p.stack, i, elem)
		err := fn(p)
		p.truncate(base)
		if err != nil {
			return err
		}
	}
	return nil
}

// Map iterates like Each and collects the result of every call to fn at the
// element's index. Holes stay nil in the result.
func (p *Path) Map(fn func(*Path) (any, error), names ...any) ([]any, error) {
	defer p.truncate(len(p.stack))
	list, err := p.descendList(names)
	if err != nil {
		return nil, err
	}
	result := make([]any, len(list))
	base := len(p.stack)
	for i, elem := range list {
		if elem == nil {
			continue
		}
		p.stack = append(p.stack, i, elem)
		v, err := fn(p)
		p.truncate(base)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// Walk invokes fn for the current value, if it is a node, and for every node
// below it in field order. Values already on the stack are not descended
// into again, so shared or cyclic subtrees are visited once per path.
func (p *Path) Walk(fn func(*Path) error) error {
	switch v := p.GetValue().(type) {
	case *ast.Node:
		if !p.grammar.IsNode(v) || p.ValueIsDuplicate() {
			return nil
		}
		if err := fn(p); err != nil {
			if errors.Is(err, SkipChildren) {
				return nil
			}
			return err
		}
		for _, key := range v.Keys() {
			if err := p.walkField(fn, v.Get(key), key); err != nil {
				return err
			}
		}
	case []any:
		if p.ValueIsDuplicate() {
			return nil
		}
		return p.Each(func(c *Path) error { return c.Walk(fn) })
	}
	return nil
}

func (p *Path) walkField(fn func(*Path) error, value any, key string) error {
	switch value.(type) {
	case *ast.Node, []any:
		return p.Call(func(c *Path) error { return c.Walk(fn) }, key)
	}
	return nil
}

func (p *Path) descend(names []any) any {
	value := p.stack[len(p.stack)-1]
	for _, name := range names {
		value = resolve(value, name)
		p.stack = append(p.stack, name, value)
	}
	return value
}

func (p *Path) descendList(names []any) ([]any, error) {
	value := p.descend(names)
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %v is %T", ErrNotList, p.GetName(), value)
	}
	return list, nil
}

// truncate pops the stack back to n elements, releasing popped references.
func (p *Path) truncate(n int) {
	clear(p.stack[n:])
	p.stack = p.stack[:n]
}

// resolve returns value[name], or nil when value has no such member.
func resolve(value, name any) any {
	switch v := value.(type) {
	case *ast.Node:
		if key, ok := name.(string); ok {
			return v.Get(key)
		}
	case []any:
		if i, ok := name.(int); ok && i >= 0 && i < len(v) {
			return v[i]
		}
	case map[string]any:
		if key, ok := name.(string); ok {
			return v[key]
		}
	}
	return nil
}

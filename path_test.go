package fastpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/fastpath/ast"
	"github.com/risor-io/fastpath/errz"
)

// pathTo returns a Path positioned at root[names[0]][names[1]]...
func pathTo(root any, names ...any) *Path {
	p := New(root)
	p.descend(names)
	return p
}

type record struct {
	name   any
	value  any
	parent *record
}

func (r *record) Name() any  { return r.name }
func (r *record) Value() any { return r.value }
func (r *record) ParentPath() Ancestry {
	if r.parent == nil {
		return nil
	}
	return r.parent
}

func TestNewPath(t *testing.T) {
	root := ast.NewProgram()
	p := New(root)
	assert.Equal(t, 1, p.Len())
	assert.Same(t, root, p.GetValue())
	assert.Nil(t, p.GetName())
	assert.Same(t, root, p.GetRootValue())
	assert.Same(t, root, p.GetNode(0))
	assert.Nil(t, p.GetParentNode(0))
}

func TestNewNamedPath(t *testing.T) {
	root := ast.NewProgram(ast.ExprStmt(ast.Ident("x")))
	p := NewNamed("program", root)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "program", p.GetName())
	assert.Same(t, root, p.GetRootValue())

	p.descend([]any{"body", 0, "expression"})
	assert.Equal(t, 8, p.Len())
	assert.Same(t, root, p.GetRootValue())
	assert.Equal(t, "expression", p.GetName())
}

func TestGetRootValueWhileDescending(t *testing.T) {
	x := ast.Ident("x")
	root := ast.NewProgram(ast.ExprStmt(ast.Binary("+", x, ast.Number(1))))
	p := New(root)

	var depths []int
	err := p.Call(func(p *Path) error {
		assert.Same(t, x, p.GetValue())
		assert.Same(t, root, p.GetRootValue())
		depths = append(depths, p.Len())
		return nil
	}, "body", 0, "expression", "left")
	require.NoError(t, err)
	assert.Equal(t, []int{9}, depths)
	assert.Same(t, root, p.GetRootValue())
}

func TestGetNodeSkipsNonNodes(t *testing.T) {
	x := ast.Ident("x")
	stmt := ast.ExprStmt(x)
	root := ast.NewProgram(stmt)

	// [program, "body", list, 0, stmt, "expression", x, "name", "x"]
	p := pathTo(root, "body", 0, "expression", "name")
	assert.Equal(t, "x", p.GetValue())
	assert.Same(t, x, p.GetNode(0))
	assert.Same(t, stmt, p.GetNode(1))
	assert.Same(t, root, p.GetNode(2))
	assert.Nil(t, p.GetNode(3))
	assert.Same(t, stmt, p.GetParentNode(0))
	assert.Same(t, root, p.GetParentNode(1))
	assert.Nil(t, p.GetParentNode(2))

	p = pathTo(root, "body")
	assert.Same(t, root, p.GetNode(0))
	assert.Nil(t, p.GetParentNode(0))
}

func TestCopyIsIndependent(t *testing.T) {
	root := ast.NewProgram(ast.ExprStmt(ast.Ident("x")))
	p := pathTo(root, "body", 0)
	cp := p.Copy()
	require.Equal(t, p.Len(), cp.Len())

	cp.descend([]any{"expression"})
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 7, cp.Len())
	assert.Same(t, p.GetNode(0), cp.GetParentNode(0))
}

func TestFromPath(t *testing.T) {
	root := ast.NewProgram(ast.ExprStmt(ast.Ident("x")))
	p := pathTo(root, "body", 0)
	cp := From(p)
	assert.NotSame(t, p, cp)
	assert.Equal(t, p.stack, cp.stack)
	cp.descend([]any{"expression"})
	assert.Equal(t, 5, p.Len())
}

func TestFromAncestry(t *testing.T) {
	x := ast.Ident("x")
	stmt := ast.ExprStmt(x)
	root := ast.NewProgram(stmt)
	body := root.List("body")

	rootRec := &record{value: root}
	bodyRec := &record{name: "body", value: body, parent: rootRec}
	stmtRec := &record{name: 0, value: stmt, parent: bodyRec}
	xRec := &record{name: "expression", value: x, parent: stmtRec}

	p := From(xRec)
	assert.Equal(t, []any{root, "body", body, 0, stmt, "expression", x}, p.stack)
	assert.Same(t, root, p.GetRootValue())
	assert.Same(t, stmt, p.GetParentNode(0))

	// A named root gives an even-length stack
	rootRec.name = "program"
	p = From(xRec)
	assert.Equal(t, 8, p.Len())
	assert.Equal(t, "program", p.stack[0])
	assert.Same(t, root, p.GetRootValue())
}

func TestFromValue(t *testing.T) {
	root := ast.Ident("x")
	p := From(root)
	assert.Equal(t, 1, p.Len())
	assert.Same(t, root, p.GetRootValue())

	var nilRec *record
	p = From(nilRec)
	assert.Equal(t, 1, p.Len())
}

func TestValueIsDuplicate(t *testing.T) {
	shared := ast.Ident("x")
	inner := ast.Binary("+", shared, ast.Number(1))
	outer := ast.Binary("*", inner, shared)

	assert.False(t, pathTo(outer, "left", "left").ValueIsDuplicate())
	assert.False(t, pathTo(outer, "right").ValueIsDuplicate())

	// A node that contains itself
	loop := ast.New("LoopExpression")
	loop.Set("next", loop)
	p := pathTo(loop, "next")
	assert.True(t, p.ValueIsDuplicate())
	assert.False(t, New(loop).ValueIsDuplicate())
}

func TestValueIsDuplicateSharedList(t *testing.T) {
	list := ast.List(ast.Ident("a"))
	inner := ast.New("Holder").Set("items", list)
	outer := ast.New("Holder").Set("items", list).Set("inner", inner)
	p := New(outer)
	p.stack = append(p.stack, "items", list, "inner", inner, "items", list)
	assert.True(t, p.ValueIsDuplicate())
}

func TestSameValue(t *testing.T) {
	a := ast.Ident("a")
	list := []any{a}
	assert.True(t, sameValue(a, a))
	assert.False(t, sameValue(a, ast.Ident("a")))
	assert.True(t, sameValue(list, list))
	assert.False(t, sameValue(list, []any{a}))
	assert.True(t, sameValue("x", "x"))
	assert.False(t, sameValue("x", 1))
	assert.True(t, sameValue(nil, nil))
	assert.False(t, sameValue(nil, a))
	m := map[string]any{"a": 1}
	assert.True(t, sameValue(m, m))
	assert.False(t, sameValue(m, map[string]any{"a": 1}))
}

func TestNames(t *testing.T) {
	root := ast.NewProgram(ast.ExprStmt(ast.Ident("x")))
	assert.Empty(t, New(root).Names())
	assert.Equal(t, []any{"body", 0, "expression"}, pathTo(root, "body", 0, "expression").Names())

	p := NewNamed("program", root)
	p.descend([]any{"body", 0})
	assert.Equal(t, []any{"program", "body", 0}, p.Names())
}

func TestZeroPathPanics(t *testing.T) {
	var p Path
	assert.PanicsWithError(t, "malformed stack: path has no root", func() { p.GetValue() })
	assert.PanicsWithError(t, "malformed stack: path has no root", func() { p.GetRootValue() })
	assert.Nil(t, p.GetName())

	err := func() (err error) {
		defer Recover(&err)
		p.ValueIsDuplicate()
		return nil
	}()
	require.Error(t, err)
	assert.True(t, errz.IsInvariant(err))
	var ie *errz.InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, errz.ErrStack, ie.Kind)
}

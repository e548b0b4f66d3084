package fastpath

import (
	"github.com/risor-io/fastpath/ast"
	"github.com/risor-io/fastpath/errz"
	"github.com/risor-io/fastpath/token"
)

// NeedsParens reports whether the node at the tip of the path must be
// wrapped in parentheses to print with its original meaning. It panics with
// an *errz.InvariantError if the path disagrees with the tree it records.
func (p *Path) NeedsParens() bool {
	return p.needsParens(false)
}

// NeedsParensInExpressionContext is NeedsParens for a caller that already
// knows the node is not printed at the start of a statement or of an arrow
// function body, so the leading-token restriction is not checked.
func (p *Path) NeedsParensInExpressionContext() bool {
	return p.needsParens(true)
}

func (p *Path) needsParens(assumeExpressionContext bool) bool {
	v, rule := p.decideParens(assumeExpressionContext)
	if e := p.log.Debug(); e.Enabled() {
		e.Str("node", p.GetNode(0).String()).
			Str("parent", p.GetParentNode(0).String()).
			Interface("slot", p.GetName()).
			Str("rule", rule).
			Bool("parens", v).
			Msg("needs parens")
	}
	return v
}

// decideParens returns the verdict and the name of the rule that reached it.
func (p *Path) decideParens(assumeExpressionContext bool) (bool, string) {
	node := p.GetNode(0)
	if value, ok := p.GetValue().(*ast.Node); node == nil || !ok || value != node {
		return false, "not a node"
	}

	// Must come before the root check: an object destructuring assignment
	// is read as a block statement without parens even at the top level.
	if node.Is(ast.AssignmentExpression) && node.Child("left").Is(ast.ObjectPattern) {
		return true, "object pattern assignment"
	}

	parent := p.GetParentNode(0)
	if parent == nil {
		return false, "root"
	}
	if p.grammar.IsStatement(node) {
		return false, "statement"
	}
	if node.Is(ast.Identifier) {
		return false, "identifier"
	}
	if parent.Is(ast.ParenthesizedExpression) {
		return false, "explicit parenthesized parent"
	}
	if node.Parenthesized() {
		return true, "source parens"
	}

	name := p.GetName()
	if v, decided := p.byType(node, parent, name); decided {
		return v, node.Type
	}

	if parent.Is(ast.NewExpression) && p.isSlot(parent, name, "callee", node) {
		return containsCallExpression(node), "new callee"
	}

	if !assumeExpressionContext && !p.CanBeFirstInStatement() &&
		p.FirstInExpressionStatementOrExpressionBody(onlyStatementLookahead(node)) {
		return true, "leading token"
	}
	return false, "default"
}

// byType applies the rules specific to the node's type. The second result
// is false when no rule applied and the generic checks should run.
func (p *Path) byType(node, parent *ast.Node, name any) (bool, bool) {
	switch node.Type {
	case ast.UnaryExpression, ast.SpreadElement, ast.SpreadProperty:
		if isBinary(parent) && parent.Str("operator") == "**" && p.isSlot(parent, name, "left", node) {
			return true, true
		}
		return isMemberObject(p, parent, name, node), true

	case ast.BinaryExpression, ast.LogicalExpression:
		switch {
		case parent.Is(ast.CallExpression, ast.NewExpression):
			if p.isSlot(parent, name, "callee", node) {
				return true, true
			}
		case isUnaryLike(parent):
			return true, true
		case parent.Is(ast.MemberExpression):
			return isMemberObject(p, parent, name, node), true
		case isBinary(parent):
			if p.binaryNeedsParens(node, parent, name) {
				return true, true
			}
			return false, false
		default:
			return false, true
		}
		return false, false

	case ast.SequenceExpression:
		switch parent.Type {
		case ast.ReturnStatement, ast.ForStatement:
			return false, true
		case ast.ExpressionStatement:
			return name != "expression", true
		default:
			return true, true
		}

	case ast.NumericLiteral:
		return isMemberObject(p, parent, name, node), true

	case ast.Literal:
		if _, ok := node.Get("value").(float64); ok {
			return isMemberObject(p, parent, name, node), true
		}
		return false, true

	case ast.YieldExpression, ast.AwaitExpression, ast.AssignmentExpression, ast.ConditionalExpression:
		switch {
		case isUnaryLike(parent), isBinary(parent):
			return true, true
		case parent.Is(ast.CallExpression, ast.NewExpression):
			return p.isSlot(parent, name, "callee", node), true
		case parent.Is(ast.ConditionalExpression):
			return p.isSlot(parent, name, "test", node), true
		case parent.Is(ast.MemberExpression):
			return isMemberObject(p, parent, name, node), true
		default:
			return false, true
		}

	case ast.ArrowFunctionExpression:
		switch {
		case parent.Is(ast.CallExpression, ast.NewExpression) && p.isSlot(parent, name, "callee", node):
			return true, true
		case isMemberObject(p, parent, name, node):
			return true, true
		case isTypeCast(parent) && p.isSlot(parent, name, "expression", node):
			return true, true
		case parent.Is(ast.UnaryExpression, ast.AwaitExpression):
			return true, true
		case parent.Is(ast.ConditionalExpression) && p.isSlot(parent, name, "test", node):
			return true, true
		}
		return isBinary(parent), true

	case ast.ObjectExpression:
		if parent.Is(ast.ArrowFunctionExpression) && p.isSlot(parent, name, "body", node) {
			return true, true
		}

	case ast.TSAsExpression, ast.TSSatisfiesExpression:
		if parent.Is(ast.ArrowFunctionExpression) && p.isSlot(parent, name, "body", node) &&
			node.Child("expression").Is(ast.ObjectExpression) {
			return true, true
		}

	case ast.CallExpression:
		if parent.Is(ast.ExportDefaultDeclaration) && p.isSlot(parent, name, "declaration", node) &&
			node.Child("callee").Is(ast.FunctionExpression) {
			return true, true
		}

	case ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation:
		if parent.Is(ast.ArrayTypeAnnotation, ast.NullableTypeAnnotation,
			ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation) {
			return true, true
		}
		return isIndexedObjectType(parent, name), true

	case ast.NullableTypeAnnotation:
		return parent.Is(ast.ArrayTypeAnnotation) || isIndexedObjectType(parent, name), true

	case ast.FunctionTypeAnnotation:
		ancestor := parent
		if parent.Is(ast.NullableTypeAnnotation) {
			ancestor = p.GetParentNode(1)
		}
		switch {
		case ancestor.Is(ast.UnionTypeAnnotation, ast.IntersectionTypeAnnotation, ast.ArrayTypeAnnotation):
			return true, true
		case parent.Is(ast.NullableTypeAnnotation):
			return true, true
		}
		return isIndexedObjectType(parent, name), true

	case ast.OptionalIndexedAccessType:
		return name == "objectType" && parent.Is(ast.IndexedAccessType), true
	}
	return false, false
}

// binaryNeedsParens compares operator tiers of a binary child and its binary
// parent. Equal tiers in the right slot always need parens. "**" is
// right-associative, so an equal-tier left operand of it needs them too.
func (p *Path) binaryNeedsParens(node, parent *ast.Node, name any) bool {
	po, no := parent.Str("operator"), node.Str("operator")
	if mixesNullish(po, no) {
		return true
	}
	pp, pok := Precedence(po)
	np, nok := Precedence(no)
	if !pok || !nok {
		return false
	}
	if pp > np {
		return true
	}
	if pp == np && name == "right" {
		p.expectEdge(parent, "right", node)
		return true
	}
	if pp == np && po == "**" && name == "left" {
		p.expectEdge(parent, "left", node)
		return true
	}
	return false
}

// mixesNullish reports whether "??" is combined with "||" or "&&", which the
// grammar rejects without explicit grouping.
func mixesNullish(a, b string) bool {
	logical := func(op string) bool { return op == "||" || op == "&&" }
	return (a == "??" && logical(b)) || (b == "??" && logical(a))
}

// CanBeFirstInStatement reports whether the current node may be printed as
// the first tokens of a statement without being misread.
func (p *Path) CanBeFirstInStatement() bool {
	node := p.GetNode(0)
	switch {
	case node.Is(ast.FunctionExpression, ast.ObjectExpression, ast.ClassExpression):
		return false
	case isLetBracket(node):
		return false
	}
	return true
}

// FirstInStatement reports whether the current node is the leftmost part of
// an expression statement.
func (p *Path) FirstInStatement() bool {
	return p.FirstInExpressionStatementOrExpressionBody(true)
}

// onlyStatementLookahead reports whether the leading-token restriction of
// node applies to expression statements only. A concise arrow body only
// rejects a leading "{".
func onlyStatementLookahead(node *ast.Node) bool {
	return !node.Is(ast.ObjectExpression)
}

// FirstInExpressionStatementOrExpressionBody reports whether the current
// node would be printed as the leftmost part of an expression statement or,
// unless onlyStatement is set, of a concise arrow function body. Reaching
// the root counts as statement position.
func (p *Path) FirstInExpressionStatementOrExpressionBody(onlyStatement bool) bool {
	s := p.stack
	var (
		parent, child         *ast.Node
		parentName, childName any
		parentIndex           int
	)
	for i := len(s) - 1; i >= 0; i -= 2 {
		if n, ok := p.asNode(s[i]); ok {
			child, childName = parent, parentName
			parent, parentIndex = n, i
			parentName = nil
			if i > 0 {
				parentName = s[i-1]
			}
		}
		if parent == nil || child == nil {
			continue
		}

		switch {
		case parent.Is(ast.ExpressionStatement) && childName == "expression":
			p.expectEdge(parent, "expression", child)
			return true

		case parent.Is(ast.ArrowFunctionExpression) && childName == "body":
			p.expectEdge(parent, "body", child)
			return !onlyStatement

		case parent.Is(ast.SequenceExpression) && childName == 0:
			if parentIndex+1 >= len(s) || s[parentIndex+1] != "expressions" {
				return false
			}
			if list := parent.List("expressions"); len(list) == 0 || list[0] != any(child) {
				panic(errz.NewInvariantError(errz.ErrEdge, "child is not the first expression").
					At(parent.Type, "expressions", locStart(parent)))
			}
			continue

		default:
			slot, ok := leftmostSlot(parent)
			if !ok || childName != slot {
				return false
			}
			p.expectEdge(parent, slot, child)
		}
	}
	return true
}

// leftmostSlot returns the field of parent whose value is always printed
// first, when there is one.
func leftmostSlot(parent *ast.Node) (string, bool) {
	switch parent.Type {
	case ast.AssignmentExpression, ast.BinaryExpression, ast.LogicalExpression:
		return "left", true
	case ast.CallExpression, "OptionalCallExpression":
		return "callee", true
	case ast.MemberExpression, "OptionalMemberExpression":
		return "object", true
	case ast.ConditionalExpression:
		return "test", true
	case "TaggedTemplateExpression":
		return "tag", true
	case ast.TSAsExpression, ast.TSSatisfiesExpression, "TSNonNullExpression":
		return "expression", true
	case ast.UnaryExpression, ast.UpdateExpression:
		if !parent.Bool("prefix") {
			return "argument", true
		}
	}
	return "", false
}

// expectEdge panics unless parent holds child under slot.
func (p *Path) expectEdge(parent *ast.Node, slot string, child *ast.Node) {
	if got, ok := parent.Get(slot).(*ast.Node); !ok || got != child {
		panic(errz.NewInvariantError(errz.ErrEdge, "child is not stored under %q", slot).
			At(parent.Type, slot, locStart(parent)))
	}
}

// isSlot reports whether node hangs off parent under the given slot.
func (p *Path) isSlot(parent *ast.Node, name any, slot string, node *ast.Node) bool {
	if name != slot {
		return false
	}
	got, ok := parent.Get(slot).(*ast.Node)
	return ok && got == node
}

func isMemberObject(p *Path, parent *ast.Node, name any, node *ast.Node) bool {
	return parent.Is(ast.MemberExpression) && p.isSlot(parent, name, "object", node)
}

func isBinary(n *ast.Node) bool {
	return n.Is(ast.BinaryExpression, ast.LogicalExpression)
}

func isUnaryLike(n *ast.Node) bool {
	return n.Is(ast.UnaryExpression, ast.SpreadElement, ast.SpreadProperty)
}

func isTypeCast(n *ast.Node) bool {
	return n.Is(ast.TSAsExpression, ast.TSSatisfiesExpression)
}

func isIndexedObjectType(parent *ast.Node, name any) bool {
	return name == "objectType" && parent.Is(ast.IndexedAccessType, ast.OptionalIndexedAccessType)
}

// isLetBracket reports whether n prints as "let[", which starts a lexical
// declaration when it leads a statement.
func isLetBracket(n *ast.Node) bool {
	if !n.Is(ast.MemberExpression) || !n.Bool("computed") {
		return false
	}
	obj := n.Child("object")
	return obj.Is(ast.Identifier) && obj.Str("name") == "let"
}

// containsCallExpression reports whether a call expression appears anywhere
// in v, which may be a node, a list or a plain value.
func containsCallExpression(v any) bool {
	return ast.Contains(v, func(n *ast.Node) bool {
		return n.Is(ast.CallExpression)
	})
}

func locStart(n *ast.Node) (pos token.Position) {
	if n.Loc != nil {
		pos = n.Loc.Start
	}
	return pos
}

package ast

// Constructors for the node shapes most often assembled by hand, e.g. when a
// printer synthesizes new code or a test builds a fixture tree.

// List converts nodes into a field list. A nil entry leaves a hole.
func List(nodes ...*Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		if n != nil {
			out[i] = n
		}
	}
	return out
}

// Ident returns an Identifier node.
func Ident(name string) *Node {
	return New(Identifier).Set("name", name)
}

// Number returns a NumericLiteral holding v.
func Number(v float64) *Node {
	return New(NumericLiteral).Set("value", v)
}

// Str returns a StringLiteral holding v.
func Str(v string) *Node {
	return New("StringLiteral").Set("value", v)
}

// Binary returns a binary expression. The short-circuit operators ||, &&
// and ?? produce a LogicalExpression, as ESTree parsers do.
func Binary(op string, left, right *Node) *Node {
	typ := BinaryExpression
	switch op {
	case "||", "&&", "??":
		typ = LogicalExpression
	}
	return New(typ).Set("operator", op).Set("left", left).Set("right", right)
}

// Unary returns a prefix UnaryExpression applying op to arg.
func Unary(op string, arg *Node) *Node {
	return New(UnaryExpression).Set("operator", op).Set("prefix", true).Set("argument", arg)
}

// Assign returns an AssignmentExpression such as "left op right".
func Assign(op string, left, right *Node) *Node {
	return New(AssignmentExpression).Set("operator", op).Set("left", left).Set("right", right)
}

// Call returns a CallExpression of callee with args.
func Call(callee *Node, args ...*Node) *Node {
	return New(CallExpression).Set("callee", callee).Set("arguments", List(args...))
}

// NewCall returns a NewExpression constructing callee with args.
func NewCall(callee *Node, args ...*Node) *Node {
	return New(NewExpression).Set("callee", callee).Set("arguments", List(args...))
}

// Member returns a MemberExpression. When computed is true the property
// prints inside brackets.
func Member(object, property *Node, computed bool) *Node {
	return New(MemberExpression).Set("object", object).Set("property", property).Set("computed", computed)
}

// Conditional returns the ternary "test ? consequent : alternate".
func Conditional(test, consequent, alternate *Node) *Node {
	return New(ConditionalExpression).Set("test", test).Set("consequent", consequent).Set("alternate", alternate)
}

// Sequence returns a comma-separated SequenceExpression.
func Sequence(exprs ...*Node) *Node {
	return New(SequenceExpression).Set("expressions", List(exprs...))
}

// Object returns an ObjectExpression with the given properties.
func Object(props ...*Node) *Node {
	return New(ObjectExpression).Set("properties", List(props...))
}

// Arrow returns an ArrowFunctionExpression. A body that is not a block
// makes it a concise arrow.
func Arrow(body *Node, params ...*Node) *Node {
	return New(ArrowFunctionExpression).Set("params", List(params...)).Set("body", body)
}

// Function returns an anonymous FunctionExpression. A nil body becomes an
// empty block.
func Function(body *Node, params ...*Node) *Node {
	if body == nil {
		body = Block()
	}
	return New(FunctionExpression).Set("id", nil).Set("params", List(params...)).Set("body", body)
}

// ExprStmt wraps expr in an ExpressionStatement.
func ExprStmt(expr *Node) *Node {
	return New(ExpressionStatement).Set("expression", expr)
}

// Return returns a ReturnStatement of arg.
func Return(arg *Node) *Node {
	return New(ReturnStatement).Set("argument", arg)
}

// Block returns a BlockStatement.
func Block(stmts ...*Node) *Node {
	return New(BlockStatement).Set("body", List(stmts...))
}

// NewProgram returns a Program whose body is stmts.
func NewProgram(stmts ...*Node) *Node {
	return New(Program).Set("body", List(stmts...))
}

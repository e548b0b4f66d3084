package ast

// Node types inspected by the traversal and parenthesization logic.
const (
	ArrayTypeAnnotation        = "ArrayTypeAnnotation"
	ArrowFunctionExpression    = "ArrowFunctionExpression"
	AssignmentExpression       = "AssignmentExpression"
	AwaitExpression            = "AwaitExpression"
	BinaryExpression           = "BinaryExpression"
	BlockStatement             = "BlockStatement"
	CallExpression             = "CallExpression"
	ClassExpression            = "ClassExpression"
	ConditionalExpression      = "ConditionalExpression"
	ExportDefaultDeclaration   = "ExportDefaultDeclaration"
	ExpressionStatement        = "ExpressionStatement"
	ForStatement               = "ForStatement"
	FunctionExpression         = "FunctionExpression"
	FunctionTypeAnnotation     = "FunctionTypeAnnotation"
	Identifier                 = "Identifier"
	IndexedAccessType          = "IndexedAccessType"
	IntersectionTypeAnnotation = "IntersectionTypeAnnotation"
	Literal                    = "Literal"
	LogicalExpression          = "LogicalExpression"
	MemberExpression           = "MemberExpression"
	NewExpression              = "NewExpression"
	NullableTypeAnnotation     = "NullableTypeAnnotation"
	NumericLiteral             = "NumericLiteral"
	ObjectExpression           = "ObjectExpression"
	ObjectPattern              = "ObjectPattern"
	OptionalIndexedAccessType  = "OptionalIndexedAccessType"
	ParenthesizedExpression    = "ParenthesizedExpression"
	Program                    = "Program"
	ReturnStatement            = "ReturnStatement"
	SequenceExpression         = "SequenceExpression"
	SpreadElement              = "SpreadElement"
	SpreadProperty             = "SpreadProperty"
	TSAsExpression             = "TSAsExpression"
	TSSatisfiesExpression      = "TSSatisfiesExpression"
	UnaryExpression            = "UnaryExpression"
	UnionTypeAnnotation        = "UnionTypeAnnotation"
	UpdateExpression           = "UpdateExpression"
	YieldExpression            = "YieldExpression"
)

// Grammar answers the capability questions the traversal needs about
// values found in a tree. Implementations decide which values count as
// nodes and which node types are statements.
type Grammar interface {
	// IsNode reports whether v is a syntax tree node.
	IsNode(v any) bool

	// IsStatement reports whether n is a statement (or declaration).
	IsStatement(n *Node) bool
}

// ESTree is the Grammar for ESTree trees, including the Babel, Flow and
// TypeScript declaration extensions.
type ESTree struct{}

// DefaultGrammar is used when no other Grammar is configured.
var DefaultGrammar Grammar = ESTree{}

var estreeStatements = map[string]bool{
	BlockStatement:             true,
	"BreakStatement":           true,
	"ClassDeclaration":         true,
	"ContinueStatement":        true,
	"DebuggerStatement":        true,
	"DeclareClass":             true,
	"DeclareFunction":          true,
	"DeclareModule":            true,
	"DeclareVariable":          true,
	"DoWhileStatement":         true,
	"EmptyStatement":           true,
	"ExportAllDeclaration":     true,
	ExportDefaultDeclaration:   true,
	"ExportNamedDeclaration":   true,
	ExpressionStatement:        true,
	"ForInStatement":           true,
	"ForOfStatement":           true,
	ForStatement:               true,
	"FunctionDeclaration":      true,
	"IfStatement":              true,
	"ImportDeclaration":        true,
	"InterfaceDeclaration":     true,
	"LabeledStatement":         true,
	ReturnStatement:            true,
	"StaticBlock":              true,
	"SwitchStatement":          true,
	"ThrowStatement":           true,
	"TryStatement":             true,
	"TSEnumDeclaration":        true,
	"TSInterfaceDeclaration":   true,
	"TSModuleDeclaration":      true,
	"TSTypeAliasDeclaration":   true,
	"TypeAlias":                true,
	"VariableDeclaration":      true,
	"WhileStatement":           true,
	"WithStatement":            true,
}

// IsNode reports whether v is a non-nil *Node with a type tag.
func (ESTree) IsNode(v any) bool {
	n, ok := v.(*Node)
	return ok && n != nil && n.Type != ""
}

// IsStatement reports whether n is an ESTree statement or declaration.
func (ESTree) IsStatement(n *Node) bool {
	return n != nil && estreeStatements[n.Type]
}

// IsStatementType reports whether typ names an ESTree statement.
func IsStatementType(typ string) bool {
	return estreeStatements[typ]
}

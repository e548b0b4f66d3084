package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/fastpath/token"
)

func TestLoadFileJSON(t *testing.T) {
	program, err := LoadFile("testdata/sum.json")
	require.NoError(t, err)
	require.Equal(t, Program, program.Type)

	body := program.List("body")
	require.Len(t, body, 1)
	stmt := body[0].(*Node)
	assert.Equal(t, ExpressionStatement, stmt.Type)

	bin := stmt.Child("expression")
	require.NotNil(t, bin)
	assert.Equal(t, "+", bin.Str("operator"))
	assert.Equal(t, []string{"operator", "left", "right"}, bin.Keys())

	// Token ranges are half-open
	require.True(t, bin.Loc.HasTokens())
	assert.Len(t, bin.Loc.Tokens, 4)
	assert.Equal(t, 0, bin.Loc.StartToken)
	assert.Equal(t, 3, bin.Loc.EndToken)
	assert.Equal(t, 0, stmt.Loc.StartToken)
	assert.Equal(t, 4, stmt.Loc.EndToken)

	right := bin.Child("right")
	assert.Equal(t, 2, right.Loc.StartToken)
	assert.Equal(t, 3, right.Loc.EndToken)
	assert.Equal(t, token.Position{Line: 1, Column: 4}, right.Loc.Start)

	// tokens are not kept as a field on the program
	assert.False(t, program.Has("tokens"))
	assert.NoError(t, Validate(program, nil))
}

func TestLoadFileYAML(t *testing.T) {
	program, err := LoadFile("testdata/member.yaml")
	require.NoError(t, err)

	stmt := program.List("body")[0].(*Node)
	call := stmt.Child("expression")
	require.True(t, call.Is(CallExpression))
	member := call.Child("callee")
	require.True(t, member.Is(MemberExpression))
	assert.False(t, member.Bool("computed"))

	lit := member.Child("object")
	assert.Equal(t, float64(1), lit.Get("value"))
	assert.Equal(t, "1", lit.Str("raw"))
	assert.True(t, lit.Parenthesized())
	assert.Nil(t, lit.Loc)

	args := call.List("arguments")
	assert.NotNil(t, args)
	assert.Empty(t, args)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an object", `[1, 2]`},
		{"no type", `{"body": []}`},
		{"bad position", `{"type": "Program", "loc": {"start": {"line": "x"}, "end": {"line": 1}}}`},
		{"bad token", `{"type": "Program", "tokens": [{"type": "Identifier", "value": "a"}]}`},
		{"bad extra", `{"type": "Identifier", "name": "a", "extra": [1]}`},
		{"invalid syntax", `{"type": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadTokenValues(t *testing.T) {
	input := `
type: Program
loc: {start: {line: 1, column: 0}, end: {line: 1, column: 4}}
body: []
tokens:
  - {type: {label: name}, value: f, loc: {start: {line: 1, column: 0}, end: {line: 1, column: 1}}}
  - {type: {label: "("}, loc: {start: {line: 1, column: 1}, end: {line: 1, column: 2}}}
  - {type: Numeric, value: 1, loc: {start: {line: 1, column: 2}, end: {line: 1, column: 3}}}
  - {type: Punctuator, loc: {start: {line: 1, column: 3}, end: {line: 1, column: 4}}}
`
	program, err := Load([]byte(input))
	require.NoError(t, err)
	tokens := program.Loc.Tokens
	require.Len(t, tokens, 4)

	assert.Equal(t, token.Type("name"), tokens[0].Type)
	assert.Equal(t, "f", tokens[0].Value)
	assert.Equal(t, token.Type("("), tokens[1].Type)
	assert.Equal(t, "(", tokens[1].Value)
	assert.True(t, tokens[1].Is(token.LPAREN))
	assert.Equal(t, "1", tokens[2].Value)
	assert.Equal(t, "", tokens[3].Value)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestAttachTokens(t *testing.T) {
	pos := func(col int) token.Position { return token.Position{Line: 1, Column: col} }
	tok := func(v string, from, to int) *token.Token {
		return &token.Token{Type: token.PUNCTUATOR, Value: v, Loc: token.Span{Start: pos(from), End: pos(to)}}
	}
	// (x)
	tokens := []*token.Token{tok("(", 0, 1), tok("x", 1, 2), tok(")", 2, 3)}
	x := Ident("x")
	x.Loc = &Location{Start: pos(1), End: pos(2)}
	root := ExprStmt(x)
	root.Loc = &Location{Start: pos(0), End: pos(3)}

	AttachTokens(root, tokens)
	assert.Equal(t, 1, x.Loc.StartToken)
	assert.Equal(t, 2, x.Loc.EndToken)
	assert.Equal(t, 0, root.Loc.StartToken)
	assert.Equal(t, 3, root.Loc.EndToken)
}

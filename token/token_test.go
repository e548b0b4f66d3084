package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	tok := Token{
		Type:  IDENT,
		Value: "foo",
		Loc: Span{
			Start: Position{Line: 2, Column: 0},
			End:   Position{Line: 2, Column: 3},
		},
	}
	// Columns switch to 1-indexed, lines already are
	assert.Equal(t, 2, tok.Loc.Start.LineNumber())
	assert.Equal(t, 1, tok.Loc.Start.ColumnNumber())
	assert.Equal(t, "2:1", tok.Loc.Start.String())
	assert.True(t, tok.Loc.Start.IsValid())
	assert.False(t, NoPos.IsValid())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{Line: 1, Column: 0}, Position{Line: 1, Column: 0}, 0},
		{Position{Line: 1, Column: 4}, Position{Line: 2, Column: 0}, -1},
		{Position{Line: 3, Column: 0}, Position{Line: 2, Column: 9}, 1},
		{Position{Line: 2, Column: 1}, Position{Line: 2, Column: 7}, -1},
		{Position{Line: 2, Column: 7}, Position{Line: 2, Column: 1}, 1},
	}
	for _, tt := range tests {
		got := Compare(tt.a, tt.b)
		switch {
		case tt.want < 0:
			assert.Negative(t, got, "%s vs %s", tt.a, tt.b)
		case tt.want > 0:
			assert.Positive(t, got, "%s vs %s", tt.a, tt.b)
		default:
			assert.Zero(t, got, "%s vs %s", tt.a, tt.b)
		}
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{Start: Position{Line: 1, Column: 0}, End: Position{Line: 3, Column: 0}}
	inner := Span{Start: Position{Line: 2, Column: 2}, End: Position{Line: 2, Column: 5}}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Contains(outer))
}

func TestTokenIs(t *testing.T) {
	var missing *Token
	assert.False(t, missing.Is(LPAREN))
	assert.Equal(t, "<nil>", missing.String())

	paren := &Token{Type: PUNCTUATOR, Value: LPAREN}
	assert.True(t, paren.Is(LPAREN))
	assert.False(t, paren.Is(RPAREN))
}

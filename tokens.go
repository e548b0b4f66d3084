package fastpath

import (
	"github.com/risor-io/fastpath/ast"
	"github.com/risor-io/fastpath/token"
)

// GetPrevToken returns the token immediately before node, or before the
// current node when node is nil. Tokens that begin before the root's span
// are outside the printed subtree and are not returned.
func (p *Path) GetPrevToken(node *ast.Node) *token.Token {
	if node == nil {
		node = p.GetNode(0)
	}
	if node == nil || !node.Loc.HasTokens() || node.Loc.StartToken <= 0 {
		return nil
	}
	loc := node.Loc
	if loc.StartToken > len(loc.Tokens) {
		return nil
	}
	tok := loc.Tokens[loc.StartToken-1]
	rootLoc := p.rootLoc()
	if tok == nil || rootLoc == nil {
		return nil
	}
	if token.Compare(rootLoc.Start, tok.Loc.Start) > 0 {
		return nil
	}
	return tok
}

// GetNextToken returns the token immediately after node, or after the
// current node when node is nil. Tokens that end after the root's span are
// not returned.
func (p *Path) GetNextToken(node *ast.Node) *token.Token {
	if node == nil {
		node = p.GetNode(0)
	}
	if node == nil || !node.Loc.HasTokens() {
		return nil
	}
	loc := node.Loc
	if loc.EndToken < 0 || loc.EndToken >= len(loc.Tokens) {
		return nil
	}
	tok := loc.Tokens[loc.EndToken]
	rootLoc := p.rootLoc()
	if tok == nil || rootLoc == nil {
		return nil
	}
	if token.Compare(tok.Loc.End, rootLoc.End) > 0 {
		return nil
	}
	return tok
}

// HasParens reports whether the current node is directly preceded by an
// opening parenthesis in the original token stream.
func (p *Path) HasParens() bool {
	return p.GetPrevToken(nil).Is(token.LPAREN)
}

func (p *Path) rootLoc() *ast.Location {
	root, ok := p.asNode(p.GetRootValue())
	if !ok {
		return nil
	}
	return root.Loc
}

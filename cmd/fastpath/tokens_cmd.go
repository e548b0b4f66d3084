package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/risor-io/fastpath"
	"github.com/risor-io/fastpath/token"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Show the tokens surrounding each node of a tree that carries a token stream",
		Args:  cobra.ExactArgs(1),
		RunE:  tokensHandler,
	}
}

func tokensHandler(cmd *cobra.Command, args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	if !root.Loc.HasTokens() {
		return fmt.Errorf("%s: no token stream attached", args[0])
	}
	out := cmd.OutOrStdout()
	return fastpath.New(root).Walk(func(p *fastpath.Path) error {
		node := p.GetNode(0)
		line := fmt.Sprintf("%-8s %s %s %s -> %s",
			formatPos(node), cyan(node.Type), formatNames(p.Names()),
			describeToken(p.GetPrevToken(nil)), describeToken(p.GetNextToken(nil)))
		if p.HasParens() {
			line += " " + yellow("(parenthesized)")
		}
		fmt.Fprintln(out, line)
		return nil
	})
}

func describeToken(tok *token.Token) string {
	if tok == nil {
		return faint("none")
	}
	return fmt.Sprintf("%q", tok.Value)
}

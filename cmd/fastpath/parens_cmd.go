package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/risor-io/fastpath"
)

type parensEntry struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Parent string `json:"parent,omitempty"`
	Pos    string `json:"pos"`
	Parens bool   `json:"parens"`
	Source bool   `json:"source_parens"`
}

func newParensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parens <file>",
		Short: "List the nodes that must be wrapped in parentheses when printed",
		Long: `Load an ESTree document (JSON or YAML) and report every node whose
printed form needs parentheses to keep its meaning.`,
		Args: cobra.ExactArgs(1),
		RunE: parensHandler,
	}
	cmd.Flags().Bool("all", false, "Report every node, not only those needing parens")
	cmd.Flags().Bool("expression-context", false, "Ignore statement-position lookahead restrictions")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")
	return cmd
}

func parensHandler(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	exprCtx, _ := cmd.Flags().GetBool("expression-context")
	format, _ := cmd.Flags().GetString("output")

	root, err := loadTree(args[0])
	if err != nil {
		return err
	}
	logger := newLogger()
	entries, err := collectParens(fastpath.New(root, fastpath.WithLogger(logger)), all, exprCtx)
	if err != nil {
		return err
	}
	logger.Info().Str("file", args[0]).Int("reported", len(entries)).Msg("parens")
	return writeParens(cmd.OutOrStdout(), entries, format)
}

func collectParens(p *fastpath.Path, all, exprCtx bool) (entries []parensEntry, err error) {
	defer fastpath.Recover(&err)
	err = p.Walk(func(p *fastpath.Path) error {
		needs := p.NeedsParens()
		if exprCtx {
			needs = p.NeedsParensInExpressionContext()
		}
		if !needs && !all {
			return nil
		}
		node := p.GetNode(0)
		entry := parensEntry{
			Path:   formatNames(p.Names()),
			Type:   node.Type,
			Pos:    formatPos(node),
			Parens: needs,
			Source: p.HasParens(),
		}
		if parent := p.GetParentNode(0); parent != nil {
			entry.Parent = parent.Type
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func writeParens(w io.Writer, entries []parensEntry, format string) error {
	switch strings.ToLower(format) {
	case "json":
		if entries == nil {
			entries = []parensEntry{}
		}
		data, err := formatJSON(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "", "text":
		for _, e := range entries {
			verdict := yellow("parens")
			if !e.Parens {
				verdict = faint("bare")
			}
			fmt.Fprintf(w, "%-8s %s %s %s\n", e.Pos, verdict, cyan(e.Type), e.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

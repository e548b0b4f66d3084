package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/risor-io/fastpath/ast"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminalIO() bool {
	stdout := os.Stdout.Fd()
	return isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
}

func setupColor() {
	if viper.GetBool("no-color") || !isTerminalIO() {
		color.NoColor = true
	}
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log-level")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// loadTree reads and, unless disabled, validates the tree in path.
func loadTree(path string) (*ast.Node, error) {
	root, err := ast.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !viper.GetBool("no-validate") {
		if err := ast.Validate(root, nil); err != nil {
			return nil, fmt.Errorf("%s: invalid tree: %w", path, err)
		}
	}
	return root, nil
}

// formatNames renders path names as an accessor chain like body[0].expression.
func formatNames(names []any) string {
	var b strings.Builder
	for _, name := range names {
		switch name := name.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", name)
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, name)
		}
	}
	if b.Len() == 0 {
		return "$"
	}
	return b.String()
}

func formatPos(n *ast.Node) string {
	if n == nil || n.Loc == nil || !n.Loc.Start.IsValid() {
		return "-"
	}
	return n.Loc.Start.String()
}

// formatJSON indents v, highlighting it unless color is disabled.
func formatJSON(v any) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

package fastpath

import (
	"github.com/rs/zerolog"

	"github.com/risor-io/fastpath/ast"
)

// Option describes a function used to configure a Path.
type Option func(*config)

type config struct {
	grammar ast.Grammar
	logger  zerolog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		grammar: ast.DefaultGrammar,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithGrammar supplies the Grammar used to tell nodes from other values and
// statements from expressions. The ESTree grammar is used by default.
func WithGrammar(g ast.Grammar) Option {
	return func(cfg *config) {
		if g != nil {
			cfg.grammar = g
		}
	}
}

// WithLogger supplies a logger that receives a debug event for every
// parenthesization decision. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Package cli is the §6 "CLI surface (collaborator, not core)": it turns
// command-line flags into a parsed Config and dispatches to the chosen
// search variant. It never touches search internals beyond the
// programmatic entry points §6 describes.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/cschuller/parasearch/board"
	"github.com/cschuller/parasearch/search"
)

// Config is the parsed command line: a fixed depth, a variant name, an
// optional FEN, and a thread count for the parallel variants.
type Config struct {
	FEN     string
	Depth   int
	Variant string
	Threads int
}

var variants = []string{"minimax", "alphabeta", "naive", "ybwc", "pvs"}

// ParseFlags parses args the same way cmd/counter's main.go parses its
// own flags: flag.StringVar/IntVar into a struct, flag.Parse once.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.FEN, "fen", board.InitialPositionFEN, "FEN of the position to search")
	fs.IntVar(&cfg.Depth, "depth", 6, "search depth in plies")
	fs.StringVar(&cfg.Variant, "variant", "alphabeta",
		"search variant: "+strings.Join(variants, ", "))
	fs.IntVar(&cfg.Threads, "threads", 1, "worker team size for parallel variants")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Depth < 1 {
		return Config{}, fmt.Errorf("cli: depth must be a positive integer, got %d", cfg.Depth)
	}
	if cfg.Depth > search.MaxPly {
		return Config{}, fmt.Errorf("cli: depth %d exceeds the engine's MaxPly (%d)", cfg.Depth, search.MaxPly)
	}
	if cfg.Threads < 1 {
		return Config{}, fmt.Errorf("cli: threads must be a positive integer, got %d", cfg.Threads)
	}
	if !knownVariant(cfg.Variant) {
		return Config{}, fmt.Errorf("cli: unknown variant %q, want one of %s",
			cfg.Variant, strings.Join(variants, ", "))
	}
	return cfg, nil
}

func knownVariant(name string) bool {
	for _, v := range variants {
		if v == name {
			return true
		}
	}
	return false
}

// Position parses the configured FEN. ParseFlags defaults it to the
// standard starting position when -fen is not given; an empty FEN is an
// error.
func (c Config) Position() (board.Position, error) {
	return board.NewPositionFromFEN(c.FEN)
}

// Search runs the configured variant to completion with the external
// root window (§6 scoring constants) and returns its result. The core
// itself never sees flags or strings; this is the one place a variant
// name is translated into a call.
func Search(cfg Config, pos *board.Position) (search.Result, error) {
	const alpha, beta = -search.Infinity, search.Infinity
	switch cfg.Variant {
	case "minimax":
		return search.Minimax(pos, cfg.Depth), nil
	case "alphabeta":
		return search.AlphaBetaNega(pos, alpha, beta, cfg.Depth), nil
	case "naive":
		return search.NaiveParallel(pos, alpha, beta, cfg.Depth, cfg.Threads), nil
	case "ybwc":
		return search.YBWC(pos, alpha, beta, cfg.Depth, cfg.Threads), nil
	case "pvs":
		return search.PVS(pos, alpha, beta, cfg.Depth, cfg.Threads), nil
	default:
		return search.Result{}, fmt.Errorf("cli: unknown variant %q", cfg.Variant)
	}
}

// FormatLine renders a principal variation as space-separated
// coordinate moves, e.g. "e2e4 e7e5 g1f3".
func FormatLine(line *search.Line) string {
	moves := line.Moves()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

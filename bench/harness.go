// Package bench is the §6 benchmark harness collaborator: it times every
// search variant against a fixed set of positions and thread counts and
// reports CSV rows of (position, variant, threads, avg_time_s). Grounded on
// the teacher's cmd/arena, which fans work out across goroutines with
// golang.org/x/sync/errgroup and collects results over a channel.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cschuller/parasearch/board"
	"github.com/cschuller/parasearch/search"
)

// Variants is the order the harness iterates variants in; "minimax" is
// not benchmarked, and the sequential "alphabeta" runs at threads=1 only.
var Variants = []string{"alphabeta", "naive", "ybwc", "pvs"}

// ThreadCounts are the team sizes §4.6 calls out as tested.
var ThreadCounts = []int{1, 2, 4, 8, 16, 32, 64}

// Position is one benchmark fixture: a FEN and the depth to search it to.
type Position struct {
	Name  string
	FEN   string
	Depth int
}

// Row is one result row of the emitted CSV.
type Row struct {
	Position string
	Variant  string
	Threads  int
	AvgTime  time.Duration
}

// Run searches every (position, variant, threads) cell concurrently,
// repeats per cell, and returns one Row per cell. Concurrency is fanned
// out with errgroup.WithContext so the first search failure (a
// malformed FEN, for instance) cancels the rest and is returned to the
// caller, the same pattern cmd/arena uses for concurrent game play.
func Run(ctx context.Context, positions []Position, repeats int, fanOut int) ([]Row, error) {
	type cell struct {
		pos     Position
		variant string
		threads int
	}

	var cells []cell
	for _, pos := range positions {
		for _, variant := range Variants {
			for _, threads := range ThreadCounts {
				if variant == "alphabeta" && threads != 1 {
					continue // sequential variant, no thread axis
				}
				cells = append(cells, cell{pos, variant, threads})
			}
		}
	}

	rows := make([]Row, len(cells))
	g, ctx := errgroup.WithContext(ctx)
	work := make(chan int)

	g.Go(func() error {
		defer close(work)
		for i := range cells {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case work <- i:
			}
		}
		return nil
	})

	if fanOut < 1 {
		fanOut = 1
	}
	for w := 0; w < fanOut; w++ {
		g.Go(func() error {
			for i := range work {
				c := cells[i]
				d, err := timeVariant(c.pos, c.variant, c.threads, repeats)
				if err != nil {
					return err
				}
				rows[i] = Row{Position: c.pos.Name, Variant: c.variant, Threads: c.threads, AvgTime: d}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func timeVariant(pos Position, variant string, threads, repeats int) (time.Duration, error) {
	start, err := board.NewPositionFromFEN(pos.FEN)
	if err != nil {
		return 0, fmt.Errorf("bench: %s: %w", pos.Name, err)
	}

	const alpha, beta = -search.Infinity, search.Infinity
	total := time.Duration(0)
	for i := 0; i < repeats; i++ {
		p := start
		begin := time.Now()
		switch variant {
		case "minimax":
			search.Minimax(&p, pos.Depth)
		case "alphabeta":
			search.AlphaBetaNega(&p, alpha, beta, pos.Depth)
		case "naive":
			search.NaiveParallel(&p, alpha, beta, pos.Depth, threads)
		case "ybwc":
			search.YBWC(&p, alpha, beta, pos.Depth, threads)
		case "pvs":
			search.PVS(&p, alpha, beta, pos.Depth, threads)
		default:
			return 0, fmt.Errorf("bench: unknown variant %q", variant)
		}
		total += time.Since(begin)
	}
	return total / time.Duration(repeats), nil
}

// WriteCSV writes rows as collaborator-defined CSV: position, variant,
// threads, avg_time_s.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "position,variant,threads,avg_time_s"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s,%s,%d,%.6f\n",
			r.Position, r.Variant, r.Threads, r.AvgTime.Seconds()); err != nil {
			return err
		}
	}
	return nil
}

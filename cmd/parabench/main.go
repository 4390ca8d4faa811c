package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/cschuller/parasearch/bench"
)

func main() {
	var repeats int
	var fanOut int
	flag.IntVar(&repeats, "repeats", 3, "repetitions averaged per (position, variant, threads) cell")
	flag.IntVar(&fanOut, "fanout", runtime.NumCPU(), "concurrent benchmark cells in flight")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	logger.Println("parabench started", "NumCPU", runtime.NumCPU(), "fanout", fanOut)

	positions := []bench.Position{
		{Name: "start", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Depth: 5},
		{Name: "midgame", FEN: "r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", Depth: 5},
		{Name: "endgame", FEN: "8/8/8/8/8/6k1/r7/4K3 b - - 0 1", Depth: 6},
	}

	rows, err := bench.Run(context.Background(), positions, repeats, fanOut)
	if err != nil {
		logger.Fatal(err)
	}

	if err := bench.WriteCSV(os.Stdout, rows); err != nil {
		logger.Fatal(err)
	}
	logger.Println("parabench finished")
}

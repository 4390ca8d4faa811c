package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/cschuller/parasearch/cli"
)

const name = "parasearch"

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	// §7: a contract violation (bad depth, a rejected "legal" move, and
	// the like) is a programming error, not a recoverable condition. It
	// panics deep in search/board; this is the one place that turns it
	// into a clean diagnostic instead of a raw stack trace, the same
	// root-boundary job the teacher's recoverFromSearchTimeout does for
	// its own sentinel panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Fatalf("%s: aborting on contract violation: %v", name, r)
		}
	}()

	cfg, err := cli.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}

	logger.Println(name,
		"Variant", cfg.Variant,
		"Depth", cfg.Depth,
		"Threads", cfg.Threads,
		"RuntimeVersion", runtime.Version(),
		"NumCPU", runtime.NumCPU(),
	)

	pos, err := cfg.Position()
	if err != nil {
		logger.Fatal(err)
	}

	result, err := cli.Search(cfg, &pos)
	if err != nil {
		logger.Fatal(err)
	}

	logger.Println("Score", result.Score, "Line", cli.FormatLine(&result.Line))
}

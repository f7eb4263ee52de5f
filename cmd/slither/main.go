// Command slither solves Slitherlink puzzles from the line-oriented textual
// format: a header "rows cols", then one token per cell ('0'..'3' or '.').
//
// Usage:
//
//	slither puzzle.txt              # first solution
//	slither --all puzzle.txt        # every solution
//	slither --workers 4 puzzle.txt  # fixed pool size
//
// Exit code 0 on success, including "no solution"; nonzero on parse or IO
// failure.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slither/grid"
	"github.com/katalvlaran/slither/lattice"
	"github.com/katalvlaran/slither/render"
	"github.com/katalvlaran/slither/solver"
)

var (
	flagAll         bool
	flagWorkers     int
	flagCPUFraction float64
	flagCanonical   bool
	flagVerbose     bool
)

func main() {
	root := &cobra.Command{
		Use:          "slither [puzzle file]",
		Short:        "Solve a Slitherlink puzzle",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().BoolVar(&flagAll, "all", false, "enumerate every solution instead of stopping after the first")
	root.Flags().IntVar(&flagWorkers, "workers", 0, "worker count (0 = all CPUs)")
	root.Flags().Float64Var(&flagCPUFraction, "cpu-fraction", 0, "fraction of CPUs to use, in (0,1]")
	root.Flags().BoolVar(&flagCanonical, "canonical", false, "with --all, drop the lexicographically larger half of reflective pairs")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log search progress")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Logger: console writer, debug only when asked
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()

	// 2. Load the puzzle
	f, err := os.Open(args[0])
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("cannot open puzzle")

		return err
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("cannot parse puzzle")

		return err
	}
	lat, err := lattice.Build(g)
	if err != nil {
		log.Error().Err(err).Msg("cannot build lattice")

		return err
	}
	log.Debug().Int("rows", g.Rows()).Int("cols", g.Cols()).
		Int("clues", g.ClueCount()).Msg("puzzle loaded")

	// 3. Solve
	opts := []solver.Option{
		solver.WithContext(cmd.Context()),
		solver.WithLogger(log),
		solver.WithWorkers(flagWorkers),
		solver.WithCPUFraction(flagCPUFraction),
	}
	if flagAll {
		opts = append(opts, solver.WithFindAll())
	}
	sols, stats, err := solver.Solve(lat, opts...)
	if err != nil {
		log.Error().Err(err).Msg("search aborted")

		return err
	}
	if flagCanonical {
		sols = solver.Canonical(lat, sols)
	}

	// 4. Report
	if len(sols) == 0 {
		fmt.Printf("no solutions found (searched %d nodes in %s)\n", stats.Nodes, stats.Elapsed)

		return nil
	}
	for i, sol := range sols {
		if len(sols) > 1 {
			fmt.Printf("solution %d:\n", i+1)
		}
		fmt.Print(render.Solution(lat, sol))
		fmt.Println(render.Cycle(sol))
	}
	log.Info().Int("solutions", len(sols)).Dur("elapsed", stats.Elapsed).Msg("done")

	return nil
}

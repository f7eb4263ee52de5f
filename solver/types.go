// Package solver defines the search types, sentinel errors, and options for
// the solver subpackage of github.com/katalvlaran/slither.
package solver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for solver entry points.
var (
	// ErrLatticeNil is returned when a nil *lattice.Lattice is passed to Solve.
	ErrLatticeNil = errors.New("solver: lattice is nil")
)

// errContradiction marks a local deduction failure. It never escapes Solve;
// the search converts it into "prune this branch".
var errContradiction = errors.New("solver: contradiction")

// EdgeState is the tri-state of one lattice edge during search.
type EdgeState uint8

const (
	// Undecided: the edge has not been assigned yet.
	Undecided EdgeState = iota
	// On: the edge is part of the loop.
	On
	// Off: the edge is excluded from the loop.
	Off
)

// spawnMinUndecided gates parallel forks: a branch with this many undecided
// edges or fewer is explored inline, its subtree being too small to be
// worth a task handoff.
const spawnMinUndecided = 10

// Option configures optional behavior of Solve.
// Use with Solve(lat, opts...).
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows external cancellation or deadlines; defaults to
	// context.Background(). When Ctx is done, every in-flight branch
	// returns at its next stop-flag check.
	Ctx context.Context

	// FindAll enumerates every solution instead of stopping after the
	// first. Default is false.
	FindAll bool

	// Workers fixes the worker-pool size. Zero (the default) resolves to
	// CPUFraction when set, otherwise to runtime.NumCPU(). A value of 1
	// forces fully sequential, deterministic search.
	Workers int

	// CPUFraction, when in (0,1], sizes the pool as that fraction of the
	// host's CPUs (at least one worker). Ignored when Workers is set.
	CPUFraction float64

	// PermissiveDepth raises the parallel-spawn depth ceiling on grids of
	// more than 64 cells, trading scheduling overhead for occupancy on
	// hosts with many cores. Default is false.
	PermissiveDepth bool

	// Logger receives structured search events (run start, and completion
	// with node and solution counts). Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - First-solution mode (FindAll = false)
//   - Pool sized to every host CPU
//   - Conservative parallel depth
//   - No-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		FindAll:         false,
		Workers:         0,
		CPUFraction:     0,
		PermissiveDepth: false,
		Logger:          zerolog.Nop(),
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFindAll returns an Option that enumerates all solutions instead of
// stopping after the first.
func WithFindAll() Option {
	return func(o *Options) {
		o.FindAll = true
	}
}

// WithWorkers returns an Option that fixes the worker-pool size.
// n = 1 yields deterministic sequential search; n <= 0 is ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithCPUFraction returns an Option that sizes the pool as fraction f of the
// host CPUs, f in (0,1]. Values outside the interval are ignored.
func WithCPUFraction(f float64) Option {
	return func(o *Options) {
		if f > 0 && f <= 1 {
			o.CPUFraction = f
		}
	}
}

// WithPermissiveDepth returns an Option that raises the parallel-depth
// ceiling for grids of more than 64 cells.
func WithPermissiveDepth() Option {
	return func(o *Options) {
		o.PermissiveDepth = true
	}
}

// WithLogger returns an Option that installs l as the search event logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

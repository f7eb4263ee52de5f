package solver

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/slither/internal/parallel"
	"github.com/katalvlaran/slither/lattice"
)

// Stats summarizes one Solve run. Counters are collected with atomics and
// snapshotted after the search joins.
type Stats struct {
	Nodes        int64         // search nodes entered
	Propagations int64         // propagation passes run
	MaxDepth     int64         // deepest branch reached
	Solutions    int64         // solutions collected
	Workers      int           // resolved pool size
	Elapsed      time.Duration // wall clock of the whole run
}

// searcher carries the per-run shared machinery: the immutable lattice, the
// sink, the optional pool, and the fork gate. Each branch owns its State.
type searcher struct {
	lat        *lattice.Lattice
	snk        *sink
	pool       *parallel.Pool
	wg         sync.WaitGroup
	spawnDepth int

	nodes    atomic.Int64
	props    atomic.Int64
	maxDepth atomic.Int64
}

// search is the recursive engine: validate, propagate, pick an edge, branch
// OFF-then-ON. The OFF branch of a shallow node is handed to the pool; the
// ON branch always continues on the current goroutine.
func (s *searcher) search(st *State, depth int) {
	// 1. Cooperative cancellation preamble
	if !s.snk.shouldContinue() {
		return
	}
	s.nodes.Add(1)
	s.raiseMaxDepth(int64(depth))

	// 2. Cheap filter, then the propagation fixpoint, then re-filter
	if !quickValid(st) {
		return
	}
	s.props.Add(1)
	if propagate(st) != nil {
		return
	}
	if !quickValid(st) {
		return
	}

	// 3. All decided: leaf validation
	e := selectEdge(st)
	if e < 0 {
		if sol, ok := finalCheck(st); ok {
			s.snk.push(sol)
		}

		return
	}

	// 4. Prepare the locally feasible branches
	canOff, canOn := branchFeasibility(st, e)
	var offSt, onSt *State
	if canOff {
		offSt = s.prepareBranch(st, e, Off)
	}
	if canOn {
		onSt = s.prepareBranch(st, e, On)
	}

	// 5. Recurse OFF then ON; fork OFF only when both survived
	switch {
	case offSt != nil && onSt != nil:
		s.fork(offSt, depth)
		s.search(onSt, depth+1)
	case offSt != nil:
		s.search(offSt, depth+1)
	case onSt != nil:
		s.search(onSt, depth+1)
	}
}

// prepareBranch clones st, applies the decision, and re-validates and
// re-propagates. A nil return marks the branch infeasible; the clone is
// simply discarded, which is why apply may leave it half-mutated.
func (s *searcher) prepareBranch(st *State, e int32, value EdgeState) *State {
	branch := st.Clone()
	if branch.apply(e, value) != nil {
		return nil
	}
	if !quickValid(branch) {
		return nil
	}
	s.props.Add(1)
	if propagate(branch) != nil {
		return nil
	}
	if !quickValid(branch) {
		return nil
	}

	return branch
}

// fork schedules the OFF branch of a node at depth as an independent task
// when the node is shallow enough and its subtree is worth the handoff;
// otherwise the branch runs inline. Submission never blocks, so workers
// executing forked branches can themselves fork without deadlock.
func (s *searcher) fork(st *State, depth int) {
	if s.pool != nil && depth < s.spawnDepth && st.undecided > spawnMinUndecided {
		s.wg.Add(1)
		task := func() {
			defer s.wg.Done()
			s.search(st, depth+1)
		}
		if s.pool.TrySubmit(task) {
			return
		}
		s.wg.Done()
	}
	s.search(st, depth+1)
}

// raiseMaxDepth lifts the max-depth watermark to d if it is higher.
func (s *searcher) raiseMaxDepth(d int64) {
	for {
		cur := s.maxDepth.Load()
		if d <= cur || s.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

// parallelDepth tabulates the recursion depth below which OFF branches are
// forked, by grid size with a sparse-clue bump. Sparse puzzles branch wider
// near the root, so they can feed more workers a little deeper.
// The result is clamped to [10, 45].
func parallelDepth(totalCells int, density float64, permissive bool) int {
	var base int
	switch {
	case totalCells <= 25:
		base = 8
	case totalCells <= 49:
		base = 12
	case totalCells <= 64:
		base = 14
	case totalCells <= 100:
		base = pick(permissive, 32, 20)
	case totalCells <= 144:
		base = pick(permissive, 34, 22)
	case totalCells <= 225:
		base = pick(permissive, 36, 24)
	default:
		base = pick(permissive, 38, 26)
	}
	if density < 0.3 {
		base += 6
	}
	if base < 10 {
		base = 10
	}
	if base > 45 {
		base = 45
	}

	return base
}

// pick returns a when cond holds, b otherwise.
func pick(cond bool, a, b int) int {
	if cond {
		return a
	}

	return b
}

// resolveWorkers maps the options onto a pool size: explicit count first,
// then a CPU fraction, then every host CPU.
func resolveWorkers(o *Options) int {
	if o.Workers > 0 {
		return o.Workers
	}
	if o.CPUFraction > 0 && o.CPUFraction <= 1 {
		n := int(math.Floor(o.CPUFraction * float64(runtime.NumCPU())))
		if n < 1 {
			n = 1
		}

		return n
	}

	return runtime.NumCPU()
}

// Solve searches lat for loop assignments satisfying every clue, degree,
// and single-cycle constraint, and returns the collected solutions with run
// statistics. An empty result with a nil error means the puzzle has no
// solution. Solutions appear in the order their leaves were reached; with a
// single worker that order is deterministic, and with FindAll the returned
// set is invariant under the worker count.
func Solve(lat *lattice.Lattice, opts ...Option) ([]Solution, Stats, error) {
	// 1. Validate input
	if lat == nil {
		return nil, Stats{}, ErrLatticeNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	workers := resolveWorkers(&o)
	density := float64(len(lat.CluedCells)) / float64(lat.Cells())

	s := &searcher{
		lat:        lat,
		snk:        newSink(o.FindAll),
		spawnDepth: parallelDepth(lat.Cells(), density, o.PermissiveDepth),
	}
	if workers > 1 {
		s.pool = parallel.New(workers)
	}

	// 3. Fold external cancellation into the stop flag
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-o.Ctx.Done():
			s.snk.cancel()
		case <-done:
		}
	}()

	o.Logger.Debug().
		Int("cells", lat.Cells()).
		Int("edges", lat.EdgeCount()).
		Int("workers", workers).
		Int("spawn_depth", s.spawnDepth).
		Bool("find_all", o.FindAll).
		Msg("search started")

	// 4. Run the search and join every forked branch
	started := time.Now()
	s.search(NewState(lat), 0)
	s.wg.Wait()
	if s.pool != nil {
		s.pool.Shutdown()
	}

	stats := Stats{
		Nodes:        s.nodes.Load(),
		Propagations: s.props.Load(),
		MaxDepth:     s.maxDepth.Load(),
		Solutions:    int64(s.snk.count()),
		Workers:      workers,
		Elapsed:      time.Since(started),
	}
	o.Logger.Info().
		Int64("nodes", stats.Nodes).
		Int64("solutions", stats.Solutions).
		Dur("elapsed", stats.Elapsed).
		Msg("search finished")

	// 5. Honor the caller's cancellation cause, if any
	if err := o.Ctx.Err(); err != nil {
		return s.snk.collected(), stats, err
	}

	return s.snk.collected(), stats, nil
}

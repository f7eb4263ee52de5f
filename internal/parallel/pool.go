// Package parallel provides the fixed-size worker pool the search engine
// forks shallow branches onto. The pool is deliberately minimal: tasks are
// plain closures, submission never blocks (a full queue makes the caller run
// the task inline), and shutdown waits for in-flight tasks to drain.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size worker pool. Workers pull closures from a shared
// buffered queue; idle workers park on the channel, so an empty pool costs
// nothing between bursts of work.
type Pool struct {
	workers  int
	taskChan chan func()
	workerWg sync.WaitGroup
	once     sync.Once
}

// New creates a pool with the given number of workers.
// A non-positive count defaults to runtime.NumCPU().
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		workers:  workers,
		taskChan: make(chan func(), workers*4),
	}
	for i := 0; i < workers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}

	return p
}

// worker is the main worker loop; it exits when the task channel is closed.
func (p *Pool) worker() {
	defer p.workerWg.Done()
	for task := range p.taskChan {
		task()
	}
}

// TrySubmit hands task to an idle worker if the queue has room.
// It reports false without running the task when the queue is full; the
// caller is expected to run the task inline instead. This keeps submitting
// branches from ever blocking inside the search recursion, which is what
// makes nested fork-join safe on a fixed pool.
func (p *Pool) TrySubmit(task func()) bool {
	select {
	case p.taskChan <- task:
		return true
	default:
		return false
	}
}

// Workers returns the pool size. Complexity: O(1).
func (p *Pool) Workers() int { return p.workers }

// Shutdown closes the queue and waits for workers to finish their current
// tasks. Submitting after Shutdown panics; callers shut down only after all
// tasks have been accounted for.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.taskChan)
		p.workerWg.Wait()
	})
}

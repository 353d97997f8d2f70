// Package worker provides a worker pool for checking candidate moves in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem represents a candidate move to be checked.
type WorkItem struct {
	Move  chess.MovePair
	Index int // Original index for tracking
}

// ProcessResult represents the outcome of checking one candidate.
type ProcessResult struct {
	Move  chess.MovePair
	Index int
	Next  *chess.GameState // State after the move; nil when Err is set
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
// It runs on several goroutines at once and must not mutate shared state.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel move checking.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopFlag.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopFlag.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run checks every move and returns the results in input order.
// It starts the pool, feeds it and closes it; a Pool is single-use.
func (p *Pool) Run(moves []chess.MovePair) []ProcessResult {
	results := make([]ProcessResult, len(moves))

	p.Start()
	go func() {
		for i, m := range moves {
			p.Submit(WorkItem{Move: m, Index: i})
		}
		p.Close()
	}()

	seen := make([]bool, len(moves))
	for r := range p.Results() {
		results[r.Index] = r
		seen[r.Index] = true
	}

	// A stopped pool skips items; report them as unprocessed.
	for i, ok := range seen {
		if !ok {
			results[i] = ProcessResult{Move: moves[i], Index: i, Err: ErrNotProcessed}
		}
	}
	return results
}

// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/parser"
)

// WorkItem is one tokenized game to be replayed.
type WorkItem struct {
	Index int   // Original index for tracking
	Start int64 // Offset of the game in its source
	Info  chess.GameInfo
	// Moves holds the move tokens followed by the result token.
	Moves []parser.Token
}

// ProcessResult represents the result of replaying a game.
type ProcessResult struct {
	Index  int
	Start  int64
	Info   chess.GameInfo
	Plies  int            // Moves resolved before the end or the first failure
	Final  chess.Position // Position after the last resolved move
	ToMove chess.Colour
	Error  error
}

// ErrStopped is returned by Submit once the pool is stopped.
var ErrStopped = errors.New("worker pool stopped")

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel game replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
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

// NewPool creates a worker pool. processFunc is required; by default the
// pool has one worker and a buffer of 10 items.
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

// worker replays items until the work channel is closed. Items queued
// after Stop are dropped.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.stopped.Load() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues item, blocking while the buffer is full. It fails with
// ctx's error when ctx is done first, and with ErrStopped after Stop.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if p.stopped.Load() {
		return ErrStopped
	}
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers drop the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
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

// Package parallel provides the fork-join worker pool behind Draw.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is one unit of work. A non-nil error aborts the batch it was
// submitted in; remaining tasks still run to completion, but the first
// error is the one reported.
type Task func() error

// Pool is a pool of goroutines for parallel pixel computation.
//
// The pool distributes tasks across multiple workers, each with their
// own queue. Workers can steal work from other workers when their own
// queue is empty, which balances load when some slices iterate deeper
// than others.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker task queues. Each worker primarily pulls
	// from its own queue but can steal from others.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the specified number of workers. If workers
// is 0 or negative, GOMAXPROCS is used. The pool starts immediately
// and workers begin waiting for tasks.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue.
				select {
				case <-p.done:
					p.drain(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}

		select {
		case work := <-p.queues[i]:
			return work
		default:
			// Queue is empty, try next.
		}
	}
	return nil
}

// ExecuteAll distributes tasks across workers and waits for every one
// of them to finish. A panic inside a task is recovered and converted
// to an error; the first error (or recovered panic) of the batch is
// returned after the join, never before. If the pool is closed,
// ExecuteAll returns an error without running anything.
func (p *Pool) ExecuteAll(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if !p.running.Load() {
		return fmt.Errorf("parallel: pool is closed")
	}

	var (
		batch    sync.WaitGroup
		errOnce  sync.Once
		batchErr error
	)
	record := func(err error) {
		if err != nil {
			errOnce.Do(func() { batchErr = err })
		}
	}
	batch.Add(len(tasks))

	for i, task := range tasks {
		workerID := i % p.workers
		t := task

		wrapped := func() {
			defer batch.Done()
			defer func() {
				if r := recover(); r != nil {
					record(fmt.Errorf("parallel: task panicked: %v", r))
				}
			}()
			record(t())
		}

		// Submit to the worker's queue (may block if the queue is full).
		select {
		case p.queues[workerID] <- wrapped:
		case <-p.done:
			// Pool is closing mid-batch.
			batch.Done()
			record(fmt.Errorf("parallel: pool closed during dispatch"))
		}
	}

	batch.Wait()
	return batchErr
}

// Close gracefully shuts down the pool. It stops accepting new work,
// lets queued work finish, and then stops all workers. Close is safe
// to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

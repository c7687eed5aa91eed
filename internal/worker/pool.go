package worker

import (
	"context"
	"sort"
	"sync"
)

// Job represents a unit of work to be executed. Every job carries the
// index of the input record it was built from so results can be
// re-sequenced after concurrent execution.
type Job interface {
	Index() int
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution.
type Result interface {
	Index() int
	Err() error
}

// Pool manages a pool of workers that execute jobs concurrently.
// Results are collected as workers produce them, so Submit never blocks
// on a full result buffer no matter how many jobs are queued. Wait
// returns results sorted by job index, so batch output order always
// matches input order regardless of worker count.
type Pool struct {
	workers     int
	jobQueue    chan Job
	results     chan Result
	collected   []Result
	collectDone chan struct{}
	wg          sync.WaitGroup
	ctx         context.Context
	cancelFunc  context.CancelFunc
	closeOnce   sync.Once
}

// NewPool creates a new worker pool with the specified number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:     workers,
		jobQueue:    make(chan Job, workers*2), // Buffered to prevent blocking
		results:     make(chan Result, workers*2),
		collectDone: make(chan struct{}),
		ctx:         ctx,
		cancelFunc:  cancel,
	}
}

// Start starts the workers and the result collector.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	go func() {
		for result := range p.results {
			p.collected = append(p.collected, result)
		}
		close(p.collectDone)
	}()
}

// worker is the worker goroutine that processes jobs.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit submits a job to the pool for execution.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Wait waits for all jobs to complete and returns the results sorted by
// job index.
func (p *Pool) Wait() []Result {
	// Close job queue to signal workers to exit when done
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.collectDone

	sort.Slice(p.collected, func(i, j int) bool {
		return p.collected[i].Index() < p.collected[j].Index()
	})

	return p.collected
}

// Shutdown shuts down the worker pool immediately.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
	<-p.collectDone
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}

package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockResult implements Result
type mockResult struct {
	idx int
	err error
}

func (r *mockResult) Index() int { return r.idx }
func (r *mockResult) Err() error { return r.err }

// mockJob implements Job
type mockJob struct {
	idx      int
	duration time.Duration
	executed *int32 // atomic counter
}

func (j *mockJob) Index() int { return j.idx }

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{idx: j.idx, err: ctx.Err()}
		}
	}
	return &mockResult{idx: j.idx}
}

func TestNewPool(t *testing.T) {
	p1 := NewPool(5)
	if p1.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p1.workers)
	}

	p2 := NewPool(0)
	if p2.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p2.workers)
	}

	p3 := NewPool(-1)
	if p3.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p3.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	count := 10

	for i := 0; i < count; i++ {
		pool.Submit(&mockJob{idx: i, executed: &executed})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}

	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, executed)
	}
}

func TestPool_OrderPreserved(t *testing.T) {
	// Jobs with staggered durations finish out of order; Wait must still
	// return them sorted by index.
	pool := NewPool(4)
	pool.Start()

	count := 20
	for i := 0; i < count; i++ {
		dur := time.Duration((count-i)%5) * time.Millisecond
		pool.Submit(&mockJob{idx: i, duration: dur})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Fatalf("expected %d results, got %d", count, len(results))
	}
	for i, r := range results {
		if r.Index() != i {
			t.Errorf("result %d has index %d, want %d", i, r.Index(), i)
		}
	}
}

func TestPool_ManyJobsSmallPool(t *testing.T) {
	// Far more jobs than the channel buffers can absorb: submission must
	// not block on result backpressure.
	pool := NewPool(1)
	pool.Start()

	count := 200
	for i := 0; i < count; i++ {
		pool.Submit(&mockJob{idx: i})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Fatalf("expected %d results, got %d", count, len(results))
	}
	for i, r := range results {
		if r.Index() != i {
			t.Fatalf("result %d has index %d, want %d", i, r.Index(), i)
		}
	}
}

// concurrencyJob tracks max concurrent executions
type concurrencyJob struct {
	idx      int
	start    func()
	end      func()
	duration time.Duration
}

func (j *concurrencyJob) Index() int { return j.idx }

func (j *concurrencyJob) Execute(ctx context.Context) Result {
	if j.start != nil {
		j.start()
	}
	time.Sleep(j.duration)
	if j.end != nil {
		j.end()
	}
	return &mockResult{idx: j.idx}
}

func TestPool_ConcurrencyBound(t *testing.T) {
	workers := 3
	pool := NewPool(workers)
	pool.Start()

	var mu sync.Mutex
	current, peak := 0, 0

	for i := 0; i < 12; i++ {
		pool.Submit(&concurrencyJob{
			idx: i,
			start: func() {
				mu.Lock()
				current++
				if current > peak {
					peak = current
				}
				mu.Unlock()
			},
			end: func() {
				mu.Lock()
				current--
				mu.Unlock()
			},
			duration: 10 * time.Millisecond,
		})
	}

	pool.Wait()

	if peak > workers {
		t.Errorf("peak concurrency %d exceeds worker count %d", peak, workers)
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	for i := 0; i < 4; i++ {
		pool.Submit(&mockJob{idx: i, duration: 5 * time.Millisecond})
	}

	// Shutdown must return promptly and not deadlock.
	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return")
	}
}

package parallel

import (
	"errors"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
)

func TestPool_ExecuteAllRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var ran atomic.Int64
	tasks := make([]Task, 100)
	for i := range tasks {
		tasks[i] = func() error {
			ran.Add(1)
			return nil
		}
	}

	if err := p.ExecuteAll(tasks); err != nil {
		t.Fatalf("ExecuteAll: %v", err)
	}
	if got := ran.Load(); got != 100 {
		t.Errorf("ran %d tasks, want 100", got)
	}
}

func TestPool_DefaultWorkerCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		p := New(n)
		if got := p.Workers(); got != runtime.GOMAXPROCS(0) {
			t.Errorf("New(%d).Workers() = %d, want GOMAXPROCS", n, got)
		}
		p.Close()
	}
}

func TestPool_ErrorReportedAfterJoin(t *testing.T) {
	p := New(3)
	defer p.Close()

	sentinel := errors.New("slice failed")
	var ran atomic.Int64
	tasks := make([]Task, 20)
	for i := range tasks {
		fail := i == 7
		tasks[i] = func() error {
			ran.Add(1)
			if fail {
				return sentinel
			}
			return nil
		}
	}

	err := p.ExecuteAll(tasks)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	// The join is a barrier: every task still ran.
	if got := ran.Load(); got != 20 {
		t.Errorf("ran %d tasks, want all 20", got)
	}
}

func TestPool_PanicBecomesError(t *testing.T) {
	p := New(2)
	defer p.Close()

	tasks := []Task{
		func() error { return nil },
		func() error { panic("numeric domain error") },
		func() error { return nil },
	}

	err := p.ExecuteAll(tasks)
	if err == nil {
		t.Fatal("panicking task produced no error")
	}
	if !strings.Contains(err.Error(), "panicked") {
		t.Errorf("err = %v, want panic description", err)
	}
}

func TestPool_EmptyBatch(t *testing.T) {
	p := New(2)
	defer p.Close()

	if err := p.ExecuteAll(nil); err != nil {
		t.Errorf("ExecuteAll(nil) = %v", err)
	}
}

func TestPool_ExecuteAfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	if p.IsRunning() {
		t.Error("IsRunning after Close")
	}
	if err := p.ExecuteAll([]Task{func() error { return nil }}); err == nil {
		t.Error("ExecuteAll on a closed pool must fail")
	}
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close() // must not panic or deadlock
}

func TestPool_MoreTasksThanWorkers(t *testing.T) {
	p := New(2)
	defer p.Close()

	var ran atomic.Int64
	tasks := make([]Task, 500)
	for i := range tasks {
		tasks[i] = func() error {
			ran.Add(1)
			return nil
		}
	}

	if err := p.ExecuteAll(tasks); err != nil {
		t.Fatalf("ExecuteAll: %v", err)
	}
	if got := ran.Load(); got != 500 {
		t.Errorf("ran %d tasks, want 500", got)
	}
}

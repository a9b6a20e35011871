package worker

import (
	"context"
	"log"
	"sync"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context)
}

// Scheduler owns the context its workers run under. Stop cancels it and
// waits, up to a timeout, for every Run to return. A Scheduler runs once.
type Scheduler struct {
	mu      sync.Mutex
	workers []Worker
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	stopped bool

	stopTimeout time.Duration
}

func NewScheduler() *Scheduler {
	return &Scheduler{stopTimeout: 10 * time.Second}
}

func (s *Scheduler) AddWorker(worker Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker)
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workers)
}

// Start launches every worker under a context derived from parent.
func (s *Scheduler) Start(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	log.Printf("Starting scheduler with %d workers", len(s.workers))
	for _, w := range s.workers {
		s.wg.Add(1)
		go func(w Worker) {
			defer s.wg.Done()
			w.Run(ctx)
			log.Printf("%s stopped", w.Name())
		}(w)
	}
}

// Stop reports whether all workers returned before the timeout.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return true
	}
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return true
	}
	log.Println("Stopping scheduler...")
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("Scheduler stopped gracefully")
		return true
	case <-time.After(s.stopTimeout):
		log.Println("Scheduler stop timeout")
		return false
	}
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && !s.stopped
}

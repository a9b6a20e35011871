package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horizons/internal/service"
)

type countingStatus struct {
	checks atomic.Int32
	err    error
}

func (s *countingStatus) Check(ctx context.Context) error {
	s.checks.Add(1)
	return s.err
}

func (s *countingStatus) Last() service.HorizonsStatus {
	return service.HorizonsStatus{Checked: s.checks.Load() > 0, Reachable: s.err == nil}
}

// blockingStatus holds every check until its context ends.
type blockingStatus struct {
	entered   chan struct{}
	cancelled atomic.Bool
}

func (s *blockingStatus) Check(ctx context.Context) error {
	close(s.entered)
	<-ctx.Done()
	s.cancelled.Store(true)
	return ctx.Err()
}

func (s *blockingStatus) Last() service.HorizonsStatus { return service.HorizonsStatus{} }

type stuckWorker struct{}

func (stuckWorker) Name() string { return "stuck" }

func (stuckWorker) Run(context.Context) { select {} }

func TestProbeWorkerRunsImmediatelyAndOnTick(t *testing.T) {
	status := &countingStatus{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewProbeWorker(status, 10*time.Millisecond).Run(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return status.checks.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	n := status.checks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, status.checks.Load(), "no probes after cancel")
}

func TestProbeWorkerKeepsRunningOnError(t *testing.T) {
	status := &countingStatus{err: assert.AnError}
	s := NewScheduler()
	s.AddWorker(NewProbeWorker(status, 5*time.Millisecond))

	s.Start(context.Background())
	defer s.Stop()
	require.Eventually(t, func() bool { return status.checks.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.False(t, status.Last().Reachable)
}

func TestSchedulerStopCancelsProbeInFlight(t *testing.T) {
	status := &blockingStatus{entered: make(chan struct{})}
	s := NewScheduler()
	s.AddWorker(NewProbeWorker(status, time.Hour))

	s.Start(context.Background())
	<-status.entered

	assert.True(t, s.Stop())
	assert.True(t, status.cancelled.Load())
}

func TestSchedulerLifecycle(t *testing.T) {
	status := &countingStatus{}
	s := NewScheduler()
	s.AddWorker(NewProbeWorker(status, time.Hour))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.IsRunning())

	s.Start(context.Background())
	s.Start(context.Background())
	assert.True(t, s.IsRunning())
	require.Eventually(t, func() bool { return status.checks.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.True(t, s.Stop())

	s.Start(context.Background())
	assert.False(t, s.IsRunning(), "a stopped scheduler does not restart")
	assert.Equal(t, int32(1), status.checks.Load())
}

func TestSchedulerStopTimesOut(t *testing.T) {
	s := NewScheduler()
	s.stopTimeout = 20 * time.Millisecond
	s.AddWorker(stuckWorker{})

	s.Start(context.Background())
	assert.False(t, s.Stop())
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.AddWorker(stuckWorker{})
	assert.True(t, s.Stop())
}

package worker

import (
	"context"
	"log"
	"time"

	"horizons/internal/service"
)

// ProbeWorker checks Horizons reachability on an interval so the health
// endpoint can report the last result without a round trip of its own.
type ProbeWorker struct {
	service  service.StatusService
	interval time.Duration
	timeout  time.Duration
}

func NewProbeWorker(service service.StatusService, interval time.Duration) *ProbeWorker {
	return &ProbeWorker{
		service:  service,
		interval: interval,
		timeout:  30 * time.Second,
	}
}

func (w *ProbeWorker) Name() string { return "Probe Worker" }

// Run probes once right away, then on every tick until ctx ends. A probe in
// flight is cancelled with ctx.
func (w *ProbeWorker) Run(ctx context.Context) {
	log.Printf("Probe Worker started with interval %v", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe(ctx)
	for {
		select {
		case <-ticker.C:
			w.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *ProbeWorker) probe(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, w.timeout)
	defer cancel()

	if err := w.service.Check(ctx); err != nil {
		if parent.Err() == nil {
			log.Printf("Probe Worker error: %v", err)
		}
		return
	}
	log.Println("Probe Worker: Horizons reachable")
}

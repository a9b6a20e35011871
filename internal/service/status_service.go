package service

import (
	"context"
	"log"
	"sync"
	"time"

	"horizons/internal/clients"
)

type StatusService interface {
	Check(ctx context.Context) error
	Last() HorizonsStatus
}

type HorizonsStatus struct {
	Checked   bool      `json:"checked"`
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Latency   string    `json:"latency,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type statusService struct {
	client clients.HorizonsClient

	mu   sync.RWMutex
	last HorizonsStatus
}

func NewStatusService(client clients.HorizonsClient) StatusService {
	return &statusService{client: client}
}

func (s *statusService) Check(ctx context.Context) error {
	started := time.Now()
	err := s.client.Ping(ctx)

	status := HorizonsStatus{
		Checked:   true,
		Reachable: err == nil,
		CheckedAt: started.UTC(),
		Latency:   time.Since(started).Round(time.Millisecond).String(),
	}
	if err != nil {
		status.Error = err.Error()
		log.Printf("Horizons probe failed: %v", err)
	}

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()

	return err
}

func (s *statusService) Last() HorizonsStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

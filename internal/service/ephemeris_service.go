package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"horizons/internal/clients"
	"horizons/internal/models"
	"horizons/internal/naif"
	"horizons/internal/parser"
	"horizons/internal/query"
	"horizons/internal/table"
)

type EphemerisService interface {
	Ephemeris(ctx context.Context, body models.Body, start, stop time.Time, step time.Duration, opts models.Options) (*table.LabeledTable, error)
	ResolveCode(name string) (int, error)
	ResolveName(code int) (string, error)
	Describe(body models.Body) (naif.Entry, error)
	Bodies() []naif.Entry
}

type ephemerisService struct {
	designators *naif.Table
	builder     *query.Builder
	client      clients.HorizonsClient
	defaults    models.Options
}

// NewEphemerisService wires the resolver, builder and transport. defaults
// fills any option the caller leaves zero.
func NewEphemerisService(designators *naif.Table, client clients.HorizonsClient, defaults models.Options) EphemerisService {
	return &ephemerisService{
		designators: designators,
		builder:     query.NewBuilder(designators),
		client:      client,
		defaults:    defaults,
	}
}

func (s *ephemerisService) Ephemeris(
	ctx context.Context,
	body models.Body,
	start, stop time.Time,
	step time.Duration,
	opts models.Options,
) (*table.LabeledTable, error) {
	spec := models.NewQuerySpec(body, start, stop, step, s.mergeDefaults(opts))

	req, err := s.builder.Build(spec)
	if err != nil {
		return nil, err
	}

	log.Printf("Fetching ephemeris for %s (COMMAND=%s CENTER=%s %s..%s step %s)",
		body, req.Command, req.Center, req.StartTime, req.StopTime, req.StepSize)

	raw, err := s.client.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	records, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("ephemeris for %s: %w", body, err)
	}

	return table.Assemble(records, spec.Options().Header)
}

func (s *ephemerisService) mergeDefaults(opts models.Options) models.Options {
	if opts.Site == "" {
		opts.Site = s.defaults.Site
	}
	if !opts.WRT.IsCode() && opts.WRT.Name() == "" {
		opts.WRT = s.defaults.WRT
	}
	if opts.Units == "" {
		opts.Units = s.defaults.Units
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = s.defaults.TimeFormat
	}
	if opts.RefPlane == "" {
		opts.RefPlane = s.defaults.RefPlane
	}
	if len(opts.Header) == 0 {
		opts.Header = s.defaults.Header
	}
	return opts
}

func (s *ephemerisService) ResolveCode(name string) (int, error) {
	return s.designators.ResolveCode(name)
}

func (s *ephemerisService) ResolveName(code int) (string, error) {
	return s.designators.ResolveName(code)
}

func (s *ephemerisService) Describe(body models.Body) (naif.Entry, error) {
	return s.designators.Describe(body)
}

func (s *ephemerisService) Bodies() []naif.Entry {
	return s.designators.Entries()
}

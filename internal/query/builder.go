// Package query turns an ephemeris request into the parameter set the
// Horizons API expects.
package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"horizons/internal/models"
)

// HeaderArity is the number of columns in a vector table.
const HeaderArity = 8

const horizonsTimeLayout = "2006-01-02 15:04:05"

// Resolver maps a Body to a NAIF code.
type Resolver interface {
	Resolve(body models.Body) (int, error)
}

// WireRequest is the transport-ready request. All fields are plain strings
// without the Horizons quoting, which Params adds.
type WireRequest struct {
	Command   string `json:"command"`
	Center    string `json:"center"`
	StartTime string `json:"start_time"`
	StopTime  string `json:"stop_time"`
	StepSize  string `json:"step_size"`
	OutUnits  string `json:"out_units"`
	TimeType  string `json:"time_type"`
	RefPlane  string `json:"ref_plane"`
}

// Params renders the request as Horizons key/value pairs, including the
// fixed switches selecting a CSV vector table of positions and velocities.
func (r WireRequest) Params() map[string]string {
	return map[string]string{
		"format":     "text",
		"COMMAND":    quote(r.Command),
		"OBJ_DATA":   quote("NO"),
		"MAKE_EPHEM": quote("YES"),
		"EPHEM_TYPE": quote("VECTORS"),
		"CENTER":     quote(r.Center),
		"START_TIME": quote(r.StartTime),
		"STOP_TIME":  quote(r.StopTime),
		"STEP_SIZE":  quote(r.StepSize),
		"OUT_UNITS":  quote(r.OutUnits),
		"TIME_TYPE":  quote(r.TimeType),
		"REF_PLANE":  quote(r.RefPlane),
		"REF_SYSTEM": quote("ICRF"),
		"VEC_TABLE":  quote("2"),
		"VEC_LABELS": quote("NO"),
		"CSV_FORMAT": quote("YES"),
	}
}

func quote(v string) string { return "'" + v + "'" }

type Builder struct {
	resolver Resolver
}

func NewBuilder(resolver Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build validates the query and produces the wire request. It never touches the
// network, so every failure here is an *models.InvalidQueryError or a
// *models.NotFoundError.
func (b *Builder) Build(spec models.QuerySpec) (WireRequest, error) {
	opts := spec.Options()

	target, err := b.resolver.Resolve(spec.Body())
	if err != nil {
		return WireRequest{}, err
	}
	wrt, err := b.resolver.Resolve(opts.WRT)
	if err != nil {
		return WireRequest{}, err
	}

	start, stop, step := spec.Start(), spec.Stop(), spec.Step()
	if start.IsZero() {
		return WireRequest{}, invalid("start", "", "start time is required")
	}
	if stop.IsZero() {
		return WireRequest{}, invalid("stop", "", "stop time is required")
	}
	if !stop.After(start) {
		return WireRequest{}, invalid("stop", formatTime(stop),
			fmt.Sprintf("stop must be after start %s", formatTime(start)))
	}
	stepSize, err := formatStep(step, stop.Sub(start))
	if err != nil {
		return WireRequest{}, err
	}

	if err := validateSite(opts.Site); err != nil {
		return WireRequest{}, err
	}
	if !slices.Contains(models.AllUnits, opts.Units) {
		return WireRequest{}, invalid("units", string(opts.Units),
			fmt.Sprintf("unsupported units value, want one of %v", models.AllUnits))
	}
	if !slices.Contains(models.AllTimeFormats, opts.TimeFormat) {
		return WireRequest{}, invalid("time format", string(opts.TimeFormat),
			fmt.Sprintf("unsupported time format, want one of %v", models.AllTimeFormats))
	}
	if !slices.Contains(models.AllRefPlanes, opts.RefPlane) {
		return WireRequest{}, invalid("reference plane", string(opts.RefPlane),
			fmt.Sprintf("unsupported reference plane, want one of %v", models.AllRefPlanes))
	}
	if len(opts.Header) != HeaderArity {
		return WireRequest{}, invalid("header", strings.Join(opts.Header, ","),
			fmt.Sprintf("header arity mismatch: got %d labels, want %d", len(opts.Header), HeaderArity))
	}
	for i, label := range opts.Header {
		if strings.TrimSpace(label) == "" {
			return WireRequest{}, invalid("header", strings.Join(opts.Header, ","),
				fmt.Sprintf("label %d is empty", i+1))
		}
	}

	return WireRequest{
		Command:   strconv.Itoa(target),
		Center:    strings.TrimSpace(opts.Site) + "@" + strconv.Itoa(wrt),
		StartTime: formatTime(start),
		StopTime:  formatTime(stop),
		StepSize:  stepSize,
		OutUnits:  string(opts.Units),
		TimeType:  string(opts.TimeFormat),
		RefPlane:  string(opts.RefPlane),
	}, nil
}

func invalid(field, value, constraint string) *models.InvalidQueryError {
	return &models.InvalidQueryError{Field: field, Value: value, Constraint: constraint}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(horizonsTimeLayout)
}

// formatStep renders step in the coarsest whole Horizons unit. Horizons
// steps by minutes at the finest, so sub-minute remainders are rejected.
func formatStep(step, span time.Duration) (string, error) {
	switch {
	case step <= 0:
		return "", invalid("step", step.String(), "step must be positive")
	case step > span:
		return "", invalid("step", step.String(),
			fmt.Sprintf("step must not exceed the span %s", span))
	case step%time.Minute != 0:
		return "", invalid("step", step.String(), "step must be a whole number of minutes")
	}

	const day = 24 * time.Hour
	switch {
	case step%day == 0:
		return fmt.Sprintf("%d d", step/day), nil
	case step%time.Hour == 0:
		return fmt.Sprintf("%d h", step/time.Hour), nil
	default:
		return fmt.Sprintf("%d m", step/time.Minute), nil
	}
}

func validateSite(site string) error {
	n, err := strconv.Atoi(strings.TrimSpace(site))
	if err != nil || n < 0 {
		return invalid("site", site, "site must be a non-negative Horizons site code")
	}
	return nil
}

package models

import (
	"strings"
	"time"
)

type Units string

const (
	UnitsKmS Units = "KM-S"
	UnitsAuD Units = "AU-D"
	UnitsKmD Units = "KM-D"
)

var AllUnits = []Units{UnitsKmS, UnitsAuD, UnitsKmD}

type TimeFormat string

const (
	TimeTDB TimeFormat = "TDB"
	TimeTT  TimeFormat = "TT"
	TimeUT  TimeFormat = "UT"
)

var AllTimeFormats = []TimeFormat{TimeTDB, TimeTT, TimeUT}

type RefPlane string

const (
	RefPlaneEcliptic    RefPlane = "ECLIPTIC"
	RefPlaneFrame       RefPlane = "FRAME"
	RefPlaneBodyEquator RefPlane = "BODY EQUATOR"
)

var AllRefPlanes = []RefPlane{RefPlaneEcliptic, RefPlaneFrame, RefPlaneBodyEquator}

const (
	DefaultSite = "500"
	DefaultWRT  = "ssb"
)

// DefaultHeader labels the eight columns of a vector table.
var DefaultHeader = []string{"MJD", "Calendar", "X", "Y", "Z", "ΔX", "ΔY", "ΔZ"}

// ASCIIHeader is DefaultHeader without the Greek deltas.
var ASCIIHeader = []string{"MJD", "Calendar", "X", "Y", "Z", "DX", "DY", "DZ"}

// Options carries the optional knobs of an ephemeris request. Zero fields
// take the documented defaults through WithDefaults.
type Options struct {
	Site       string
	WRT        Body
	Units      Units
	TimeFormat TimeFormat
	RefPlane   RefPlane
	Header     []string
}

func DefaultOptions() Options {
	return Options{}.WithDefaults()
}

func (o Options) WithDefaults() Options {
	if strings.TrimSpace(o.Site) == "" {
		o.Site = DefaultSite
	}
	if !o.WRT.IsCode() && strings.TrimSpace(o.WRT.Name()) == "" {
		o.WRT = ByName(DefaultWRT)
	}
	if o.Units == "" {
		o.Units = UnitsKmS
	}
	if o.TimeFormat == "" {
		o.TimeFormat = TimeTDB
	}
	if o.RefPlane == "" {
		o.RefPlane = RefPlaneEcliptic
	}
	if len(o.Header) == 0 {
		o.Header = append([]string(nil), DefaultHeader...)
	} else {
		o.Header = append([]string(nil), o.Header...)
	}
	return o
}

// QuerySpec is an ephemeris request before validation. It is immutable once
// built; accessors hand out copies.
type QuerySpec struct {
	body    Body
	start   time.Time
	stop    time.Time
	step    time.Duration
	options Options
}

func NewQuerySpec(body Body, start, stop time.Time, step time.Duration, opts Options) QuerySpec {
	return QuerySpec{
		body:    body,
		start:   start,
		stop:    stop,
		step:    step,
		options: opts.WithDefaults(),
	}
}

func (q QuerySpec) Body() Body { return q.body }

func (q QuerySpec) Start() time.Time { return q.start }

func (q QuerySpec) Stop() time.Time { return q.stop }

func (q QuerySpec) Step() time.Duration { return q.step }

func (q QuerySpec) Options() Options {
	o := q.options
	o.Header = append([]string(nil), q.options.Header...)
	return o
}

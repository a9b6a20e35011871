// Package parser decodes the text of a Horizons vector-table reply.
package parser

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	"horizons/internal/models"
)

const (
	StartMarker = "$$SOE"
	EndMarker   = "$$EOE"
)

// FieldCount is the number of comma-separated fields in a data line:
// JD, calendar date, X, Y, Z, VX, VY, VZ.
const FieldCount = 8

// Parse extracts the records between the start and end markers of raw, in
// the order Horizons sent them. Everything outside the markers is ignored.
func Parse(raw string) ([]models.Record, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records []models.Record
		lineNo  int
		inBlock bool
		started bool
		ended   bool
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case StartMarker:
			if started {
				return nil, &models.MalformedResponseError{Line: lineNo, Text: line, Reason: "repeated start marker"}
			}
			started, inBlock = true, true
			continue
		case EndMarker:
			if !started {
				return nil, &models.MalformedResponseError{Line: lineNo, Text: line, Reason: "end marker before start marker"}
			}
			if ended {
				return nil, &models.MalformedResponseError{Line: lineNo, Text: line, Reason: "repeated end marker"}
			}
			ended, inBlock = true, false
			continue
		}

		if !inBlock || line == "" {
			continue
		}

		rec, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &models.MalformedResponseError{Reason: "reading response: " + err.Error()}
	}

	if !started {
		return nil, &models.MalformedResponseError{Text: serviceMessage(raw), Reason: "missing start marker " + StartMarker}
	}
	if !ended {
		return nil, &models.MalformedResponseError{Reason: "missing end marker " + EndMarker}
	}

	return records, nil
}

func parseLine(line string, lineNo int) (models.Record, error) {
	fields := strings.Split(line, ",")
	// Horizons terminates every CSV row with a comma.
	if n := len(fields); n > 0 && strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	if len(fields) != FieldCount {
		return models.Record{}, &models.MalformedResponseError{
			Line:   lineNo,
			Text:   line,
			Reason: "expected " + strconv.Itoa(FieldCount) + " fields, got " + strconv.Itoa(len(fields)),
		}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	jd, err := parseNumber(fields[0], "epoch", line, lineNo)
	if err != nil {
		return models.Record{}, err
	}
	if fields[1] == "" {
		return models.Record{}, &models.MalformedResponseError{Line: lineNo, Text: line, Reason: "empty calendar date"}
	}

	var vec [6]float64
	for i := range vec {
		v, err := parseNumber(fields[i+2], vectorNames[i], line, lineNo)
		if err != nil {
			return models.Record{}, err
		}
		vec[i] = v
	}

	return models.Record{
		Epoch:    jd - models.MJDOffset,
		Calendar: fields[1],
		Position: [3]float64{vec[0], vec[1], vec[2]},
		Velocity: [3]float64{vec[3], vec[4], vec[5]},
	}, nil
}

var vectorNames = [6]string{"X", "Y", "Z", "VX", "VY", "VZ"}

// parseNumber accepts finite decimal numbers only. ParseFloat also takes
// hex floats, NaN and Inf, none of which Horizons writes.
func parseNumber(field, name, line string, lineNo int) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || strings.ContainsAny(field, "xX") {
		return 0, &models.MalformedResponseError{
			Line:   lineNo,
			Text:   line,
			Reason: "field " + name + " is not a number: " + strconv.Quote(field),
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &models.MalformedResponseError{
			Line:   lineNo,
			Text:   line,
			Reason: "field " + name + " is not finite: " + strconv.Quote(field),
		}
	}
	return v, nil
}

// serviceMessage picks the first line of raw that reads like a message from
// Horizons rather than its banner, so failed lookups stay diagnosable.
func serviceMessage(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "",
			strings.HasPrefix(line, "API VERSION"),
			strings.HasPrefix(line, "API SOURCE"),
			strings.Trim(line, "*") == "":
			continue
		}
		if len(line) > 200 {
			line = line[:200]
		}
		return line
	}
	return ""
}

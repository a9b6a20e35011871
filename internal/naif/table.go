// Package naif maps body names to NAIF integer codes and back.
//
// The table is built once from a Source and is read-only afterwards, so a
// single *Table may be shared by any number of goroutines.
package naif

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v2"
)

//go:embed bodies.yaml
var bundledBodies []byte

type Entry struct {
	Name string `yaml:"name" json:"name"`
	Code int    `yaml:"code" json:"code"`
}

// Source supplies designator entries in declaration order.
type Source interface {
	AllEntries() ([]Entry, error)
}

// YAMLSource decodes a document of the form {bodies: [{name, code}, ...]}.
type YAMLSource struct {
	Data []byte
}

func (s YAMLSource) AllEntries() ([]Entry, error) {
	var doc struct {
		Bodies []Entry `yaml:"bodies"`
	}
	if err := yaml.UnmarshalStrict(s.Data, &doc); err != nil {
		return nil, fmt.Errorf("decode designator table: %w", err)
	}
	return doc.Bodies, nil
}

// Bundled returns the source compiled into the binary.
func Bundled() Source {
	return YAMLSource{Data: bundledBodies}
}

// StaticSource serves a fixed slice, mostly for tests.
type StaticSource []Entry

func (s StaticSource) AllEntries() ([]Entry, error) {
	return append([]Entry(nil), s...), nil
}

type Table struct {
	entries   []Entry
	byName    map[string]int
	canonical map[int]string
}

// NewTable indexes the entries of src. For duplicate normalized names the
// first declared entry wins; the first name declared for a code is that
// code's canonical name, kept in its declared case. A canonical name that an earlier entry already
// claims for another code is rejected, since the name could never resolve
// back to its own code.
func NewTable(src Source) (*Table, error) {
	entries, err := src.AllEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("designator table is empty")
	}

	t := &Table{
		entries:   make([]Entry, 0, len(entries)),
		byName:    make(map[string]int, len(entries)),
		canonical: make(map[int]string),
	}

	type pair struct {
		name string
		code int
	}
	seen := make(map[pair]bool, len(entries))

	for i, e := range entries {
		key := Normalize(e.Name)
		if key == "" {
			return nil, fmt.Errorf("designator entry %d (code %d) has an empty name", i, e.Code)
		}
		if seen[pair{key, e.Code}] {
			return nil, fmt.Errorf("designator entry %d duplicates %q -> %d", i, e.Name, e.Code)
		}
		seen[pair{key, e.Code}] = true

		owner, claimed := t.byName[key]
		if !claimed {
			t.byName[key] = e.Code
		}
		display := strings.Join(strings.Fields(e.Name), " ")
		if _, ok := t.canonical[e.Code]; !ok {
			if claimed && owner != e.Code {
				return nil, fmt.Errorf("canonical name %q of code %d is shadowed by code %d", display, e.Code, owner)
			}
			t.canonical[e.Code] = display
		}
		t.entries = append(t.entries, Entry{Name: display, Code: e.Code})
	}

	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the bundled table, loading it on first use.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = NewTable(Bundled())
	})
	return defaultTable, defaultErr
}

// Entries returns every entry in declaration order, names as declared with
// whitespace collapsed.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

func (t *Table) Len() int { return len(t.entries) }

// Normalize trims, case-folds and collapses internal whitespace.
func Normalize(name string) string {
	// A Caser keeps state, so each call gets its own.
	return strings.Join(strings.Fields(cases.Fold().String(name)), " ")
}

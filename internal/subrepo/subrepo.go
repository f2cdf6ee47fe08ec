// Package subrepo reads and writes the two flat subrepository list formats
// the bridge shuttles between the systems: the assignment format
// ("name = value", one per line) and the state format ("node name"). Both
// ignore blank lines and #-comments and trim surrounding whitespace from
// every field.
package subrepo

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/go-faster/errors"

	"hgbridge/pkg/serrors"
)

// Subrepos is an insertion-ordered name→value mapping. Re-setting an
// existing name replaces its value but keeps its original position.
type Subrepos struct {
	names []string
	vals  map[string]string
}

// New returns an empty mapping.
func New() *Subrepos {
	return &Subrepos{vals: make(map[string]string)}
}

// Set stores value under name.
func (s *Subrepos) Set(name, value string) {
	if _, ok := s.vals[name]; !ok {
		s.names = append(s.names, name)
	}
	s.vals[name] = value
}

// Get returns the value stored under name.
func (s *Subrepos) Get(name string) (string, bool) {
	v, ok := s.vals[name]

	return v, ok
}

// Names returns the names in insertion order.
func (s *Subrepos) Names() []string {
	return s.names
}

// Len returns the number of entries.
func (s *Subrepos) Len() int {
	return len(s.names)
}

// ParseHgsub parses the assignment format: each significant line is split on
// its first "=" into a name and a value, both trimmed. A line without "=" is
// malformed.
func ParseHgsub(r io.Reader) (*Subrepos, error) {
	return parse(r, "hgsub", func(line string) (string, string, bool) {
		name, value, ok := strings.Cut(line, "=")

		return strings.TrimSpace(name), strings.TrimSpace(value), ok
	})
}

// SerializeHgsub writes the mapping back in the assignment format, one
// "name = value" line per entry in insertion order.
func SerializeHgsub(s *Subrepos) []byte {
	var buf bytes.Buffer
	for _, name := range s.Names() {
		value, _ := s.Get(name)
		buf.WriteString(name + " = " + value + "\n")
	}

	return buf.Bytes()
}

// ParseHgsubstate parses the state format: each significant line is split on
// its first space into a node and a name, both trimmed. A line without a
// space is malformed.
func ParseHgsubstate(r io.Reader) (*Subrepos, error) {
	return parse(r, "hgsubstate", func(line string) (string, string, bool) {
		node, name, ok := strings.Cut(line, " ")

		return strings.TrimSpace(name), strings.TrimSpace(node), ok
	})
}

// SerializeHgsubstate writes the mapping back in the state format, one
// "node name" line per entry sorted by name. Sorted output is the format's
// round-trip contract; insertion order is not preserved here.
func SerializeHgsubstate(s *Subrepos) []byte {
	names := make([]string, len(s.Names()))
	copy(names, s.Names())
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		node, _ := s.Get(name)
		buf.WriteString(node + " " + name + "\n")
	}

	return buf.Bytes()
}

// parse runs the shared line loop: blank and #-comment lines are skipped,
// every other line is handed to split, which returns the entry or reports
// the line as malformed.
func parse(r io.Reader, format string, split func(line string) (name, value string, ok bool)) (*Subrepos, error) {
	rv := New()

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, ok := split(line)
		if !ok {
			return nil, serrors.With(serrors.ErrBadInput, "%s: malformed line %d: %q", format, lineno, line)
		}
		rv.Set(name, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading "+format)
	}

	return rv, nil
}

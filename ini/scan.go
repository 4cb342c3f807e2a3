// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// EventKind identifies the type of a construction event.
type EventKind int

// Event kinds.
const (
	SectionHeader EventKind = 1 + iota
	KeyValue
)

func (k EventKind) String() string {
	switch k {
	case SectionHeader:
		return "SectionHeader"
	case KeyValue:
		return "KeyValue"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// An Event is a single construction step produced by a Scanner.
// Name is set for SectionHeader events; Key and Value are set for KeyValue
// events. All strings are trimmed of surrounding whitespace.
type Event struct {
	Kind  EventKind
	Line  int
	Name  string
	Key   string
	Value string
}

// A Scanner reads INI text line by line and produces construction events.
// Blank lines and comment lines are skipped.
type Scanner struct {
	s      *bufio.Scanner
	lineno int
	ev     Event
	err    error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

var utf8BOM = []byte("\ufeff")

// Scan advances to the next event, which is then available through Event.
// It returns false at the end of input or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.lineno++
		line := s.s.Bytes()
		if s.lineno == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		ev, ok, err := scanLine(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.lineno, err)
			return false
		}
		if !ok {
			continue
		}
		ev.Line = s.lineno
		s.ev = ev
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("line %d: %w", s.lineno+1, err)
	}
	return false
}

// Event returns the most recent event produced by Scan.
func (s *Scanner) Event() Event {
	return s.ev
}

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}

// scanLine classifies a single line. ok is false for blank and comment lines.
func scanLine(line []byte) (_ Event, ok bool, _ error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' || line[0] == ';' {
		return Event{}, false, nil
	}
	if line[0] == '[' {
		if line[len(line)-1] != ']' {
			return Event{}, false, errors.New("missing section closing bracket")
		}
		name := bytes.TrimSpace(line[1 : len(line)-1])
		if len(name) == 0 {
			return Event{}, false, errors.New("section name missing")
		}
		if bytes.ContainsAny(name, "[]") {
			return Event{}, false, errors.New("unexpected brackets in section name")
		}
		return Event{Kind: SectionHeader, Name: string(name)}, true, nil
	}
	i := bytes.IndexAny(line, "=:")
	if i == -1 {
		return Event{}, false, errors.New("could not find '=' or ':'")
	}
	k := bytes.TrimSpace(line[:i])
	if len(k) == 0 {
		return Event{}, false, errors.New("key missing")
	}
	return Event{
		Kind:  KeyValue,
		Key:   string(k),
		Value: string(bytes.TrimSpace(line[i+1:])),
	}, true, nil
}

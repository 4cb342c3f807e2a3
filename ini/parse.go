// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"io"
	"os"

	"zombiezen.com/go/log"
)

// ParseOptions holds optional parameters for Parse.
type ParseOptions struct {
	// NormalizeSection is called on each section name to apply text transformations.
	// This can be used to make section names case-insensitive, for instance.
	// If nil, no transformations are made.
	NormalizeSection func(name string) string

	// NormalizeKey is called on each key to apply text transformations.
	// If nil, no transformations are made.
	NormalizeKey func(section, key string) string
}

func (opts *ParseOptions) normalize(d *Document, ev Event) Event {
	if opts == nil {
		return ev
	}
	switch ev.Kind {
	case SectionHeader:
		if opts.NormalizeSection != nil {
			ev.Name = opts.NormalizeSection(ev.Name)
		}
	case KeyValue:
		if opts.NormalizeKey != nil {
			section, _ := d.CurrentSection()
			ev.Key = opts.NormalizeKey(section, ev.Key)
		}
	}
	return ev
}

// Parse reads an INI document from r. sourceName is recorded in the returned
// Document and used in error messages. Nil options are treated identically as
// passing the zero value.
//
// Every property must appear after a section header. Repeated section headers
// reopen the earlier section, and repeated keys within a section keep the first
// value. On error, Parse returns a nil Document.
func Parse(ctx context.Context, r io.Reader, sourceName string, opts *ParseOptions) (*Document, error) {
	errName := sourceName
	if errName == "" {
		errName = "ini file"
	}
	d := New(sourceName)
	s := NewScanner(r)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("parse %s: %w", errName, err)
		}
		ev := opts.normalize(d, s.Event())
		switch ev.Kind {
		case SectionHeader:
			if err := d.InsertSection(ev.Name); err != nil {
				return nil, fmt.Errorf("parse %s: line %d: %w", errName, ev.Line, err)
			}
		case KeyValue:
			added, err := d.insertKeyAndValue(ev.Key, ev.Value)
			if err != nil {
				return nil, fmt.Errorf("parse %s: line %d: %w", errName, ev.Line, err)
			}
			if !added {
				section, _ := d.CurrentSection()
				log.Debugf(ctx, "%s:%d: ignoring duplicate key %q in section [%s]", errName, ev.Line, ev.Key, section)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", errName, err)
	}
	return d, nil
}

// ParseFile parses the INI file at the given path. The document's source name
// is the path.
func ParseFile(ctx context.Context, path string, opts *ParseOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	defer f.Close()
	d, err := Parse(ctx, f, path, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf(ctx, "Loaded %s: %d sections", path, d.SectionCount())
	return d, nil
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"zombiezen.com/go/log"
)

// Set is a list of documents to obtain configuration from in descending order
// of precedence. Nil elements are treated as empty documents.
type Set []*Document

// ParseFiles parses the files at the given paths and returns a Set. If the
// returned error is nil, the returned set's length will be the same as the
// number of paths. ParseFiles stops on the first error, but ignores missing
// files, instead filling the corresponding element of the set with nil.
func ParseFiles(ctx context.Context, opts *ParseOptions, paths ...string) (Set, error) {
	set := make(Set, 0, len(paths))
	for _, p := range paths {
		d, err := ParseFile(ctx, p, opts)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf(ctx, "Skipping %s: file does not exist", p)
			set = append(set, nil)
			continue
		}
		if err != nil {
			return set, fmt.Errorf("parse ini files: %w", err)
		}
		set = append(set, d)
	}
	return set, nil
}

// ValueOf returns the value of key in the named section from the first
// document that has it.
func (set Set) ValueOf(section, key string) (string, bool) {
	for _, d := range set {
		if v, ok := d.ValueOf(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// Get returns the value of key in the named section from the first document
// that has it, or the empty string.
func (set Set) Get(section, key string) string {
	v, _ := set.ValueOf(section, key)
	return v
}

// HasSection reports whether any document in the set has the named section.
func (set Set) HasSection(name string) bool {
	for _, d := range set {
		if d.HasSection(name) {
			return true
		}
	}
	return false
}

// Sections returns the distinct section names across the set. Names are
// ordered by the first document they appear in, then by position within that
// document.
func (set Set) Sections() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, d := range set {
		for _, name := range d.Sections() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Keys returns the distinct keys in the named section across the set, ordered
// the same way as Sections.
func (set Set) Keys(section string) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, d := range set {
		for _, k := range d.Section(section).Keys() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

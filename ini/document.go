// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "fmt"

// A Document is a parsed INI file: an ordered collection of uniquely named
// sections. Documents are built by a single sequence of insertions and may then
// be read by multiple concurrent goroutines. The zero value and a nil
// *Document are both empty documents.
type Document struct {
	sourceName string
	// sections is kept in insertion order so that current stays valid.
	// Positions are reported newest first.
	sections []*Section
	// current is the index in sections that receives key-value insertions.
	// Out of range before the first InsertSection.
	current int
}

// New returns an empty document. sourceName is informational, typically the
// path of the file the document is read from.
func New(sourceName string) *Document {
	return &Document{sourceName: sourceName, current: -1}
}

// SourceName returns the name the document was created with.
func (d *Document) SourceName() string {
	if d == nil {
		return ""
	}
	return d.sourceName
}

func (d *Document) findSection(name string) int {
	if d == nil {
		return -1
	}
	for i, s := range d.sections {
		if s.name == name {
			return i
		}
	}
	return -1
}

// InsertSection makes the named section current, creating it at position 0 if
// the document does not have a section with that name yet. Reopening an
// existing section does not move it.
func (d *Document) InsertSection(name string) error {
	if name == "" {
		return fmt.Errorf("insert section: %w: empty section name", ErrInvalidName)
	}
	i := d.findSection(name)
	if i == -1 {
		d.sections = append(d.sections, newSection(name))
		i = len(d.sections) - 1
	}
	d.current = i
	return nil
}

// InsertKeyAndValue adds the key-value pair to the current section. If the
// current section already has the key, its value is left unchanged and
// InsertKeyAndValue returns nil. It returns an error wrapping ErrNoSection if
// InsertSection has not been called.
func (d *Document) InsertKeyAndValue(key, value string) error {
	_, err := d.insertKeyAndValue(key, value)
	return err
}

func (d *Document) insertKeyAndValue(key, value string) (added bool, _ error) {
	if d.current < 0 || d.current >= len(d.sections) {
		return false, fmt.Errorf("insert key %q: %w", key, ErrNoSection)
	}
	if key == "" {
		return false, fmt.Errorf("insert key: %w: empty key", ErrInvalidName)
	}
	return d.sections[d.current].insert(key, value), nil
}

// CurrentSection returns the name of the section that receives key-value
// insertions. The boolean is false before the first InsertSection.
func (d *Document) CurrentSection() (string, bool) {
	if d == nil || d.current < 0 || d.current >= len(d.sections) {
		return "", false
	}
	return d.sections[d.current].name, true
}

// Apply routes a construction event to InsertSection or InsertKeyAndValue.
func (d *Document) Apply(ev Event) error {
	switch ev.Kind {
	case SectionHeader:
		return d.InsertSection(ev.Name)
	case KeyValue:
		return d.InsertKeyAndValue(ev.Key, ev.Value)
	default:
		return fmt.Errorf("apply event: unknown kind %v", ev.Kind)
	}
}

// SectionCount returns the number of distinct sections.
func (d *Document) SectionCount() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// Section returns the named section or nil if it does not exist.
func (d *Document) Section(name string) *Section {
	i := d.findSection(name)
	if i == -1 {
		return nil
	}
	return d.sections[i]
}

// HasSection reports whether the document has a section with the given name.
func (d *Document) HasSection(name string) bool {
	return d.findSection(name) != -1
}

// SectionAt returns the name of the section at the given 0-based position.
// The most recently created section is at position 0. The boolean is false if
// pos is out of range.
func (d *Document) SectionAt(pos int) (string, bool) {
	i, ok := reversedIndex(d.SectionCount(), pos)
	if !ok {
		return "", false
	}
	return d.sections[i].name, true
}

// Sections returns the section names in positional order.
func (d *Document) Sections() []string {
	n := d.SectionCount()
	if n == 0 {
		return nil
	}
	names := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		names = append(names, d.sections[i].name)
	}
	return names
}

// KeyCount returns the number of keys in the named section, or 0 if the
// section does not exist.
func (d *Document) KeyCount(section string) int {
	return d.Section(section).KeyCount()
}

// KeyAt returns the key at the given 0-based position in the named section.
// The boolean is false if the section does not exist or pos is out of range.
func (d *Document) KeyAt(section string, pos int) (string, bool) {
	return d.Section(section).KeyAt(pos)
}

// ValueOf returns the value of key in the named section. The boolean is false
// if either the section or the key does not exist.
func (d *Document) ValueOf(section, key string) (string, bool) {
	return d.Section(section).ValueOf(key)
}

// Get returns the value of key in the named section, or the empty string if
// it does not exist.
func (d *Document) Get(section, key string) string {
	v, _ := d.ValueOf(section, key)
	return v
}

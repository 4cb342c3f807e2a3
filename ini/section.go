// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// An Entry is a single key-value pair in a section.
type Entry struct {
	Key   string
	Value string
}

// A Section is a named, ordered group of entries owned by a Document.
// Sections are created only by Document.InsertSection.
//
// Entries are stored in insertion order, but positions are reported newest
// first: the most recently inserted key is at position 0.
type Section struct {
	name    string
	entries []Entry
}

func newSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the section's name.
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// findEntry returns the index of the first entry with exactly the given key,
// or -1.
func findEntry(entries []Entry, key string) int {
	for i := range entries {
		if entries[i].Key == key {
			return i
		}
	}
	return -1
}

// insert adds the key-value pair unless the key is already present, in which
// case the existing value is kept. It reports whether an entry was added.
func (s *Section) insert(key, value string) bool {
	if findEntry(s.entries, key) != -1 {
		return false
	}
	s.entries = append(s.entries, Entry{Key: key, Value: value})
	return true
}

// KeyCount returns the number of distinct keys in the section.
func (s *Section) KeyCount() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// KeyAt returns the key at the given 0-based position. The boolean is false if
// pos is out of range.
func (s *Section) KeyAt(pos int) (string, bool) {
	i, ok := reversedIndex(s.KeyCount(), pos)
	if !ok {
		return "", false
	}
	return s.entries[i].Key, true
}

// ValueOf returns the value associated with key. The boolean is false if the
// section has no such key.
func (s *Section) ValueOf(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	i := findEntry(s.entries, key)
	if i == -1 {
		return "", false
	}
	return s.entries[i].Value, true
}

// Keys returns the section's keys in positional order.
func (s *Section) Keys() []string {
	n := s.KeyCount()
	if n == 0 {
		return nil
	}
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, s.entries[i].Key)
	}
	return keys
}

// Entries returns a copy of the section's entries in positional order.
func (s *Section) Entries() []Entry {
	n := s.KeyCount()
	if n == 0 {
		return nil
	}
	entries := make([]Entry, 0, n)
	for i := n - 1; i >= 0; i-- {
		entries = append(entries, s.entries[i])
	}
	return entries
}

// reversedIndex maps a position (newest first) onto an index into a
// container of length n that is kept in insertion order.
func reversedIndex(n, pos int) (int, bool) {
	if pos < 0 || pos >= n {
		return 0, false
	}
	return n - 1 - pos, true
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration, including variables that override INI properties.
package envvar

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. If it is unset or
// not one of the strings 1, t, T, TRUE, true, or True, then it returns false.
func Bool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

// List returns the elements of a list-valued environment variable such as
// PATH, split on the OS path list separator. Empty elements are dropped.
func List(key string) []string {
	var list []string
	for _, elem := range filepath.SplitList(os.Getenv(key)) {
		if elem != "" {
			list = append(list, elem)
		}
	}
	return list
}

// Name returns the environment variable that overrides the given INI property:
// the prefix, section and key joined with underscores, uppercased, with every
// character other than an ASCII letter or digit replaced by an underscore.
// For example, Name("APP", "database", "max-conns") is "APP_DATABASE_MAX_CONNS".
func Name(prefix, section, key string) string {
	sb := new(strings.Builder)
	sb.Grow(len(prefix) + len(section) + len(key) + 2)
	for i, part := range [...]string{prefix, section, key} {
		if i > 0 {
			sb.WriteByte('_')
		}
		for j := 0; j < len(part); j++ {
			switch c := part[j]; {
			case 'a' <= c && c <= 'z':
				sb.WriteByte(c - 'a' + 'A')
			case 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
				sb.WriteByte(c)
			default:
				sb.WriteByte('_')
			}
		}
	}
	return sb.String()
}

// Lookup returns the value of the environment variable that overrides the
// given INI property. The boolean is false if the variable is unset or prefix
// is empty.
func Lookup(prefix, section, key string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	return os.LookupEnv(Name(prefix, section, key))
}

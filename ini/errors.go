// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "errors"

var (
	// ErrNoSection is returned when a key-value pair is inserted into a
	// Document that has no current section to receive it.
	ErrNoSection = errors.New("no active section to receive key")

	// ErrInvalidName is returned when a section name or key is empty.
	ErrInvalidName = errors.New("invalid name")
)

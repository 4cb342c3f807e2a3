// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini parses INI files into a read-only, queryable Document.
See https://en.wikipedia.org/wiki/INI_file.

Syntax

An INI file is UTF-8 text made of section headers and properties, one per line:

	[section]
	key1 = value1
	key2: value2

A property is a key and value separated by the first equals sign ('=') or
colon (':') on the line. Whitespace around section names, keys and values is
ignored. Values are taken literally: there is no quoting, escaping or
continuation. Lines whose first non-whitespace character is a semicolon (';') or
a hash ('#') are comments and are discarded. Every property must appear after a
section header.

Repeated names

A section header naming an existing section reopens it: following properties
are added to the earlier section and no new section is created. Within a
section the first value of a key wins; later properties with the same key are
ignored.

Positions

Sections and keys can be enumerated by 0-based position with
Document.SectionAt and Document.KeyAt. Positions are newest first: the most
recently created section (or inserted key) is at position 0, so a file is
enumerated in the reverse of the order its names first appear. Positions are
not stable across further insertions.

Construction

Parse and ParseFile drive a Scanner, which turns lines into SectionHeader and
KeyValue events, and apply each event to a Document. Documents can also be
built directly with Document.InsertSection and Document.InsertKeyAndValue.
*/
package ini

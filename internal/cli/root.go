// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the iniq command, which queries INI files from the
// command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourbase/mini/envvar"
	"github.com/yourbase/mini/ini"
)

// Environment variables read by iniq.
const (
	fileEnv      = "INIQ_FILE"
	envPrefixEnv = "INIQ_ENV_PREFIX"
)

var version = "dev"

// errNotFound is returned when a queried section or key does not exist.
var errNotFound = errors.New("not found")

type globalOptions struct {
	files      []string
	ignoreCase bool
}

// NewRootCommand returns the iniq command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	g := new(globalOptions)
	rootCmd := &cobra.Command{
		Use:   "iniq",
		Short: "Query INI configuration files",
		Long: `iniq reads one or more INI files and prints their sections, keys and values.

When several files are given, earlier files take precedence over later ones.
Files default to the ` + fileEnv + ` environment variable, a list separated like PATH.
Missing files are skipped.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringArrayVarP(&g.files, "file", "f", nil, "INI `file` to read (repeatable, highest precedence first)")
	rootCmd.PersistentFlags().BoolVarP(&g.ignoreCase, "ignore-case", "i", false, "match section names and keys case-insensitively")

	rootCmd.AddCommand(
		newSectionsCommand(g),
		newKeysCommand(g),
		newGetCommand(g),
		newDumpCommand(g),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs iniq with the process's arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (g *globalOptions) parseOptions() *ini.ParseOptions {
	if !g.ignoreCase {
		return nil
	}
	return &ini.ParseOptions{
		NormalizeSection: strings.ToLower,
		NormalizeKey: func(_, key string) string {
			return strings.ToLower(key)
		},
	}
}

// name applies the same normalization to a queried name as was applied while
// parsing.
func (g *globalOptions) name(s string) string {
	if g.ignoreCase {
		return strings.ToLower(s)
	}
	return s
}

func (g *globalOptions) load(ctx context.Context) (ini.Set, error) {
	paths := g.files
	if len(paths) == 0 {
		paths = envvar.List(fileEnv)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no INI files given: use --file or set %s", fileEnv)
	}
	return ini.ParseFiles(ctx, g.parseOptions(), paths...)
}

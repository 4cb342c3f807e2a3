// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/yourbase/mini/envvar"
)

func newSectionsCommand(g *globalOptions) *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List section names",
		Long: `List the names of all sections, one per line.

Within a file, the most recently declared section is listed first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := g.load(cmd.Context())
			if err != nil {
				return err
			}
			names := set.Sections()
			out := cmd.OutOrStdout()
			if count {
				fmt.Fprintln(out, len(names))
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print the number of sections instead")
	return cmd
}

func newKeysCommand(g *globalOptions) *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "keys SECTION",
		Short: "List the keys of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := g.load(cmd.Context())
			if err != nil {
				return err
			}
			section := g.name(args[0])
			if !set.HasSection(section) {
				return fmt.Errorf("section [%s]: %w", section, errNotFound)
			}
			keys := set.Keys(section)
			out := cmd.OutOrStdout()
			if count {
				fmt.Fprintln(out, len(keys))
				return nil
			}
			for _, k := range keys {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print the number of keys instead")
	return cmd
}

func newGetCommand(g *globalOptions) *cobra.Command {
	var envPrefix string
	cmd := &cobra.Command{
		Use:   "get SECTION KEY",
		Short: "Print the value of a key",
		Long: `Print the value of a key in a section.

If --env-prefix is set, the environment variable PREFIX_SECTION_KEY (uppercased,
with other characters replaced by underscores) overrides the files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			section, key := g.name(args[0]), g.name(args[1])
			if v, ok := envvar.Lookup(envPrefix, section, key); ok {
				log.Debugf(ctx, "Using %s from environment", envvar.Name(envPrefix, section, key))
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			set, err := g.load(ctx)
			if err != nil {
				return err
			}
			v, ok := set.ValueOf(section, key)
			if !ok {
				return fmt.Errorf("[%s] %s: %w", section, key, errNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&envPrefix, "env-prefix", envvar.Get(envPrefixEnv, ""), "environment variable `prefix` for overrides")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iniq version %s\n", version)
		},
	}
}

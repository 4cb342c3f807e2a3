// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/yourbase/mini/ini"
)

func newDumpCommand(g *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every section as structured data",
		Long: `Print every section and its properties as nested objects.

Available formats:
  json  - sections and keys in the same order as the sections and keys commands
  toml  - one table per section`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := g.load(cmd.Context())
			if err != nil {
				return err
			}
			switch format {
			case "json":
				return dumpJSON(cmd.OutOrStdout(), set)
			case "toml":
				return dumpTOML(cmd.OutOrStdout(), set)
			default:
				return fmt.Errorf("unknown format %q (want json or toml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output `format`: json or toml")
	return cmd
}

func dumpJSON(w io.Writer, set ini.Set) error {
	enc := jsontext.NewEncoder(w, jsontext.WithIndent("  "))
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return fmt.Errorf("dump json: %w", err)
	}
	for _, section := range set.Sections() {
		if err := writeTokens(enc, jsontext.String(section), jsontext.ObjectStart); err != nil {
			return fmt.Errorf("dump json: %w", err)
		}
		for _, key := range set.Keys(section) {
			if err := writeTokens(enc, jsontext.String(key), jsontext.String(set.Get(section, key))); err != nil {
				return fmt.Errorf("dump json: %w", err)
			}
		}
		if err := enc.WriteToken(jsontext.ObjectEnd); err != nil {
			return fmt.Errorf("dump json: %w", err)
		}
	}
	if err := enc.WriteToken(jsontext.ObjectEnd); err != nil {
		return fmt.Errorf("dump json: %w", err)
	}
	return nil
}

func writeTokens(enc *jsontext.Encoder, tokens ...jsontext.Token) error {
	for _, tok := range tokens {
		if err := enc.WriteToken(tok); err != nil {
			return err
		}
	}
	return nil
}

func dumpTOML(w io.Writer, set ini.Set) error {
	tables := make(map[string]map[string]string)
	for _, section := range set.Sections() {
		table := make(map[string]string)
		for _, key := range set.Keys(section) {
			table[key] = set.Get(section, key)
		}
		tables[section] = table
	}
	data, err := toml.Marshal(tables)
	if err != nil {
		return fmt.Errorf("dump toml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("dump toml: %w", err)
	}
	return nil
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/log/testlog"
)

func TestMain(m *testing.M) {
	testlog.Main(nil)
	os.Exit(m.Run())
}

const appINI = `; application settings
[server]
host = example.com
port = 8080

[database]
name: app
user: admin

[server]
port = 9090
timeout = 30s
`

const overridesINI = `[database]
user = root

[Logging]
Level = debug
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}

// run executes iniq with the given arguments and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testlog.WithTB(context.Background(), t))
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr)
	}
	return stdout.String(), err
}

func TestSections(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)

	out, err := run(t, "-f", path, "sections")
	require.NoError(t, err)
	assert.Equal(t, "database\nserver\n", out)

	out, err = run(t, "-f", path, "sections", "--count")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestSections_MultipleFiles(t *testing.T) {
	overrides := writeFile(t, "overrides.ini", overridesINI)
	app := writeFile(t, "app.ini", appINI)

	out, err := run(t, "-f", overrides, "-f", app, "sections")
	require.NoError(t, err)
	assert.Equal(t, "Logging\ndatabase\nserver\n", out)
}

func TestSections_FileFromEnvironment(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)
	missing := filepath.Join(t.TempDir(), "missing.ini")
	t.Setenv(fileEnv, missing+string(os.PathListSeparator)+path)

	out, err := run(t, "sections", "--count")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestSections_NoFiles(t *testing.T) {
	t.Setenv(fileEnv, "")

	_, err := run(t, "sections")
	require.Error(t, err)
	assert.Contains(t, err.Error(), fileEnv)
}

func TestKeys(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)

	out, err := run(t, "-f", path, "keys", "server")
	require.NoError(t, err)
	assert.Equal(t, "timeout\nport\nhost\n", out)

	out, err = run(t, "-f", path, "keys", "server", "--count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestKeys_UnknownSection(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)

	_, err := run(t, "-f", path, "keys", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
}

func TestGet(t *testing.T) {
	overrides := writeFile(t, "overrides.ini", overridesINI)
	app := writeFile(t, "app.ini", appINI)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "FirstValueWins",
			args: []string{"-f", app, "get", "server", "port"},
			want: "8080\n",
		},
		{
			name: "ReopenedSection",
			args: []string{"-f", app, "get", "server", "timeout"},
			want: "30s\n",
		},
		{
			name: "ColonSeparator",
			args: []string{"-f", app, "get", "database", "name"},
			want: "app\n",
		},
		{
			name: "Precedence",
			args: []string{"-f", overrides, "-f", app, "get", "database", "user"},
			want: "root\n",
		},
		{
			name:    "CaseSensitive",
			args:    []string{"-f", overrides, "get", "logging", "level"},
			wantErr: true,
		},
		{
			name: "IgnoreCase",
			args: []string{"-f", overrides, "-i", "get", "LOGGING", "level"},
			want: "debug\n",
		},
		{
			name:    "MissingKey",
			args:    []string{"-f", app, "get", "server", "user"},
			wantErr: true,
		},
		{
			name:    "WrongArgs",
			args:    []string{"-f", app, "get", "server"},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestGet_EnvironmentOverride(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)
	t.Setenv("INIQTEST_SERVER_PORT", "7070")

	out, err := run(t, "-f", path, "get", "--env-prefix", "IniqTest", "server", "port")
	require.NoError(t, err)
	assert.Equal(t, "7070\n", out)

	out, err = run(t, "-f", path, "get", "--env-prefix", "IniqTest", "server", "host")
	require.NoError(t, err)
	assert.Equal(t, "example.com\n", out)

	out, err = run(t, "-f", path, "get", "server", "port")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)
}

func TestDump_JSON(t *testing.T) {
	overrides := writeFile(t, "overrides.ini", overridesINI)
	app := writeFile(t, "app.ini", appINI)

	out, err := run(t, "-f", overrides, "-f", app, "dump")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Logging": {"Level": "debug"},
		"database": {"user": "root", "name": "app"},
		"server": {"timeout": "30s", "port": "8080", "host": "example.com"}
	}`, out)

	// Object members follow positional order.
	assert.Less(t, strings.Index(out, `"Logging"`), strings.Index(out, `"database"`))
	assert.Less(t, strings.Index(out, `"database"`), strings.Index(out, `"server"`))
	assert.Less(t, strings.Index(out, `"timeout"`), strings.Index(out, `"host"`))
}

func TestDump_TOML(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)

	out, err := run(t, "-f", path, "dump", "--format", "toml")
	require.NoError(t, err)

	var got map[string]map[string]string
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]map[string]string{
		"server":   {"host": "example.com", "port": "8080", "timeout": "30s"},
		"database": {"name": "app", "user": "admin"},
	}, got)
}

func TestDump_UnknownFormat(t *testing.T) {
	path := writeFile(t, "app.ini", appINI)

	_, err := run(t, "-f", path, "dump", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestParseError(t *testing.T) {
	path := writeFile(t, "bad.ini", "orphan = value\n")

	_, err := run(t, "-f", path, "sections")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestVersion(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "iniq version test-version-1.0.0\n", out)
}

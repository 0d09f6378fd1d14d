package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
)

// isolateEnv keeps tests away from the real user config and log directory.
func isolateEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "")
	t.Setenv("INDEXWIZ_NO_COLOR", "")
	t.Setenv("INDEXWIZ_PROMPT_WIDTH", "")
	t.Setenv("INDEXWIZ_LOG_LEVEL", "")
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"new", "schema", "config", "logs", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "", "--version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "indexwiz version "))
}

func TestRootCmd_MissingConfigFileFails(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")

	require.Error(t, err)
	assert.Equal(t, wizerrors.ErrCodeConfigNotFound, wizerrors.GetCode(err))
}

func TestRootCmd_DebugWritesLogFile(t *testing.T) {
	// Given: a config pointing the debug log at a temp file
	isolateEnv(t)
	logFile := filepath.Join(t.TempDir(), "debug.log")
	cfgFile := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("logging:\n  file: "+logFile+"\n"), 0o644))

	// When: running a command with --debug
	_, err := execute(t, "", "--config", cfgFile, "--debug", "version")

	// Then: the log file holds the startup entry
	require.NoError(t, err)
	assert.True(t, DebugEnabled())
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "debug_logging_enabled")
}

func TestRootCmd_FlagsResetPerCommand(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "", "version", "--short")

	require.NoError(t, err)
	assert.False(t, DebugEnabled())
}

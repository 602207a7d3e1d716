package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pkgopts/internal/cli"
	"github.com/specialistvlad/pkgopts/internal/flagset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"}, map[string]string{})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"}, map[string]string{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ConflictIsSurfacedVerbatim(t *testing.T) {
	t.Parallel()

	schema := `
package "exf" {
  flag "ALLOW_ATM_WIND" {}
  flag "ALLOW_ATM_TEMP" {}
  conflict { flags = ["ALLOW_ATM_WIND", "ALLOW_ATM_TEMP"] }
}
`
	filePath := filepath.Join(t.TempDir(), "exf.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(schema), 0o600), "failed to set up test file")

	args := []string{"-set", "ALLOW_ATM_WIND=true", "-set", "ALLOW_ATM_TEMP=true", filePath}
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args, map[string]string{})

	require.ErrorIs(t, err, flagset.ErrConflictingFlags)
	assert.Contains(t, err.Error(), "ALLOW_ATM_WIND and ALLOW_ATM_TEMP")

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "configuration errors are not usage errors")
}

func TestRun_BuiltinSchemaToStdout(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{"-format", "text", "-set", "ALLOW_RUNOFF=false"}, map[string]string{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "package exf, master ALLOW_EXF on")
	assert.Regexp(t, `ALLOW_RUNOFF\s+off\s+requested`, out.String())
	assert.Contains(t, logs.String(), "Package options resolved.")
}

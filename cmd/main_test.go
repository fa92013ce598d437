package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"primobs/pkg/logger"
	"primobs/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := rootCommand(&app{})
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"-c", filepath.Join(t.TempDir(), "none.yml")}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRoot_NoArgsRunsDemo(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, out, "Primitive obsession demo")

	again, err := execute(t, "run")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestRoot_Overrides(t *testing.T) {
	out, err := execute(t, "--tenant", "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"sections"`)
	require.Contains(t, out, "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee")
}

func TestRoot_InvalidInput(t *testing.T) {
	_, err := execute(t, "--pack", "not-a-uuid")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = execute(t, "--format", "xml")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)
	require.Contains(t, out, "Type inspection")
	require.NotContains(t, out, "Raw identifiers")
}

func TestRoot_ConfigFailure(t *testing.T) {
	t.Run("invalid format from env", func(t *testing.T) {
		t.Setenv("OUTPUT_FORMAT", "xml")

		out, err := execute(t)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.ErrorContains(t, err, "could not load config")
		require.Empty(t, out)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o600))

		var out bytes.Buffer
		cmd := rootCommand(&app{})
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"-c", path})

		err := cmd.ExecuteContext(context.Background())
		require.ErrorContains(t, err, "could not load config")
		require.Empty(t, out.String())
	})
}

func TestReportError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	reportError(ctx, fmt.Errorf("could not load config: %w",
		serrors.With(serrors.ErrBadRequest, `unsupported output format "xml"`)))

	entries := logs.FilterMessage("command failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.ErrorLevel, entries[0].Level)
	require.Equal(t, "BAD_REQUEST", entries[0].ContextMap()["kind"])
	require.Contains(t, entries[0].ContextMap()["error"], "unsupported output format")
}

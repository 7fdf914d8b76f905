package logic_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/imgenc/internal/config"
	"github.com/idelchi/imgenc/internal/encryption"
	"github.com/idelchi/imgenc/internal/logic"
)

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var report map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&report))

	return report
}

func TestRunEncryptDecrypt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(input, []byte("\x89PNG fake image"), 0o600))

	var out, diag bytes.Buffer

	logger := logic.NewLogger(&diag, true)

	err := logic.Run(&config.Config{Operation: config.Encrypt, Input: input, Key: "secret"}, &out, logger)
	require.NoError(t, err)

	report := decode(t, &out)
	require.Equal(t, true, report["success"])
	require.Equal(t, filepath.Join(dir, "cat_encrypted.png"), report["encrypted_path"])
	require.NotEmpty(t, report["iv"])
	require.NotContains(t, report, "error")
	require.NotContains(t, report, "decrypted_path")

	require.Contains(t, diag.String(), "operation completed")
	require.NotContains(t, diag.String(), "secret")

	decrypted := filepath.Join(dir, "cat.out.png")
	out.Reset()

	err = logic.Run(&config.Config{
		Operation: config.Decrypt,
		Input:     filepath.Join(dir, "cat_encrypted.png"),
		Key:       "secret",
		Output:    decrypted,
	}, &out, logger)
	require.NoError(t, err)

	report = decode(t, &out)
	require.Equal(t, true, report["success"])
	require.Equal(t, decrypted, report["decrypted_path"])
	require.NotContains(t, report, "iv")

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	require.Equal(t, []byte("\x89PNG fake image"), got)
}

func TestRunFailureIsReported(t *testing.T) {
	t.Parallel()

	var out, diag bytes.Buffer

	cfg := &config.Config{
		Operation: config.Decrypt,
		Input:     filepath.Join(t.TempDir(), "missing.png"),
		Key:       "secret",
		Output:    filepath.Join(t.TempDir(), "out.png"),
	}

	err := logic.Run(cfg, &out, logic.NewLogger(&diag, false))
	require.ErrorIs(t, err, logic.ErrReported)

	report := decode(t, &out)
	require.Equal(t, false, report["success"])
	require.Contains(t, report["error"], "missing.png")
	require.Contains(t, diag.String(), "operation failed")
}

func TestRunInvalidMaxSize(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config.Config{Operation: config.Encrypt, Input: "cat.png", Key: "secret", MaxSize: "huge"}

	err := logic.Run(cfg, &out, logic.NewLogger(io.Discard, false))
	require.ErrorIs(t, err, logic.ErrReported)
	require.Equal(t, false, decode(t, &out)["success"])
}

func TestReport(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.NoError(t, logic.Report(&out, encryption.Failure(errors.New("Invalid arguments"))))
	require.JSONEq(t, `{"success": false, "error": "Invalid arguments"}`, out.String())
	require.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	var quiet, verbose bytes.Buffer

	logic.NewLogger(&quiet, false).Info("hidden")
	logic.NewLogger(&verbose, true).Debug("shown")

	require.Empty(t, quiet.String())
	require.Contains(t, verbose.String(), "shown")
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordcheck/pkg/config"
	"github.com/dmitrymomot/recordcheck/pkg/record"
	"github.com/dmitrymomot/recordcheck/pkg/report"
	"github.com/dmitrymomot/recordcheck/pkg/storage"
)

const records = `[
  {
    "id": 1,
    "email": "valerabig4len@ukr.net",
    "full_name": "Valera Zmyshenko",
    "gender": "male",
    "date_of_birth": "1975-08-15",
    "addresses": [{"country": "Ukraine", "city": "Kyiv", "postal_code": "01001"}]
  },
  {
    "id": 2,
    "email": "a@b",
    "full_name": "Lonely",
    "gender": "other",
    "date_of_birth": "1990-01-01",
    "addresses": [{"country": "ukraine", "city": "Lviv", "postal_code": "79000"}]
  }
]`

func writeRecords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Setenv("RECORDS_STORAGE", "local")
	t.Setenv("REPORT_FORMAT", "text")
	t.Setenv("APP_ENV", "production")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root := NewRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("text report on stdout", func(t *testing.T) {
		path := writeRecords(t, records)
		out, logs, err := execute(t, "validate", path)
		require.NoError(t, err)

		assert.Contains(t, out, "loaded 2 records")
		assert.Contains(t, out, "data for user valerabig4len@ukr.net is valid")
		assert.Contains(t, out, "invalid fields: [email full_name gender addresses]")
		assert.Contains(t, out, "summary: 1 valid, 1 invalid of 2 records")
		assert.Contains(t, logs, "records loaded")
		assert.Contains(t, logs, "run_id")
	})

	t.Run("json report", func(t *testing.T) {
		path := writeRecords(t, records)
		out, _, err := execute(t, "validate", path, "--format", "json")
		require.NoError(t, err)

		var rep report.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 2, rep.Total)
		assert.Equal(t, 1, rep.Valid)
		assert.Equal(t, 1, rep.Invalid)
		require.Len(t, rep.Results, 2)
		assert.Equal(t, []int{0}, rep.Results[1].InvalidAddresses)
	})

	t.Run("yaml report", func(t *testing.T) {
		path := writeRecords(t, records)
		out, _, err := execute(t, "validate", path, "-f", "yaml")
		require.NoError(t, err)

		var rep map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
		assert.Equal(t, 2, rep["total"])
	})

	t.Run("path from environment", func(t *testing.T) {
		path := writeRecords(t, records)
		t.Setenv("RECORDS_INPUT", path)
		out, _, err := execute(t, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "loaded 2 records")
	})

	t.Run("dir flag confines local storage", func(t *testing.T) {
		path := writeRecords(t, records)
		out, _, err := execute(t, "validate", "data.json", "--dir", filepath.Dir(path))
		require.NoError(t, err)
		assert.Contains(t, out, "loaded 2 records")

		_, _, err = execute(t, "validate", "../escape.json", "--dir", filepath.Dir(path))
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
	})

	t.Run("fail on invalid", func(t *testing.T) {
		path := writeRecords(t, records)
		out, _, err := execute(t, "validate", path, "--fail-on-invalid")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecords)
		assert.Contains(t, out, "summary:")
	})

	t.Run("all valid passes fail on invalid", func(t *testing.T) {
		path := writeRecords(t, `[]`)
		out, _, err := execute(t, "validate", path, "--fail-on-invalid")
		require.NoError(t, err)
		assert.Contains(t, out, "loaded 0 records")
	})

	t.Run("missing file", func(t *testing.T) {
		_, logs, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, record.ErrFileNotFound)
		assert.Contains(t, logs, "source not found")
		assert.Contains(t, logs, "failed to load records")
	})

	t.Run("malformed date aborts", func(t *testing.T) {
		path := writeRecords(t, `[{"id": 1, "date_of_birth": "15.08.1975"}]`)
		out, _, err := execute(t, "validate", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, record.ErrMalformedDate)
		assert.Empty(t, out)
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeRecords(t, records)
		_, _, err := execute(t, "validate", path, "--format", "xml")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		t.Setenv("S3_BUCKET", "")
		path := writeRecords(t, records)
		_, _, err := execute(t, "validate", path, "--storage", "s3")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.NotErrorIs(t, err, storage.ErrInvalidConfig)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, _, err := execute(t, "validate", "data.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestValidateCommand_DefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	config.ResetCache()
	t.Setenv("RECORDS_STORAGE", "local")
	t.Setenv("APP_ENV", "production")

	stderr := &bytes.Buffer{}
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(stderr)
	root.SetArgs([]string{"validate", writeRecords(t, records)})
	require.NoError(t, root.ExecuteContext(context.Background()))

	stderr.Reset()
	slog.Info("stray")
	assert.Contains(t, stderr.String(), `"msg":"stray"`)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "recordcheck v"+Version)
}

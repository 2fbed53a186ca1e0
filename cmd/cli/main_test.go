package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"ats-coverage/internal/charts"

	"github.com/stretchr/testify/assert"
)

func TestRunReportsFailureWithStructuredLog(t *testing.T) {
	var logs bytes.Buffer
	code := run([]string{"simulate", "--config", filepath.Join(t.TempDir(), "missing.yaml")}, &logs)

	assert.Equal(t, 1, code)
	assert.Contains(t, logs.String(), "command failed")
	assert.Contains(t, logs.String(), "missing.yaml")
}

func TestRunChartsWithoutMarketData(t *testing.T) {
	var logs bytes.Buffer
	out := t.TempDir()
	code := run([]string{
		"charts",
		"--out", out,
		"--data", filepath.Join(t.TempDir(), "absent.json"),
	}, &logs)

	assert.Equal(t, 0, code, logs.String())
	assert.FileExists(t, filepath.Join(out, charts.FileSensitivityHeatmap))
	assert.Contains(t, logs.String(), "omitting overlay")
}

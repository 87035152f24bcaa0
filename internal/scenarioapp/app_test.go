package scenarioapp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru-core/report"

	"isru/pkg/api"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestEvaluateFile_SectionOrderAndFailures(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, "s.yaml", `
version: 1
name: south pole
models:
  dryer:
    pressure: 700
  electrolyzer:
    water_load: 20
`)
	var got []report.Report
	n, err := EvaluateFile(p, func(r report.Report) error { got = append(got, r); return nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, got, 2)
	assert.Equal(t, "dryer", got[0].Model)
	assert.True(t, got[0].Failed())
	assert.Equal(t, "electrolyzer", got[1].Model)
	assert.Equal(t, "south pole", got[1].Case)
	load, _ := got[1].Input("water_load")
	assert.Equal(t, 20.0, load.Value)
}

func TestEvaluateFile_Errors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"unknown model": "models:\n  fusion: {}\n",
		"unknown field": "models:\n  electrolyzer:\n    voltage: 2\n",
		"bad yaml":      "models: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := write(t, dir, strings.ReplaceAll(name, " ", "_")+".yaml", body)
			_, err := EvaluateFile(p, func(report.Report) error { return nil }, nil)
			assert.Error(t, err)
		})
	}
}

func TestRunContext_JSON(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.yaml", "name: a\nmodels:\n  sabatier: {}\n")
	write(t, dir, "b.yaml", "name: b\nmodels:\n  extraction:\n    redundancy: 1\n")

	var out, errb bytes.Buffer
	code := RunContext(context.Background(), []string{"-o", "json", a, filepath.Join(dir, "b*.yaml")}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "sabatier", got[0].Model)
	assert.Equal(t, "a", got[0].Case)
	assert.Equal(t, "extraction", got[1].Model)
	assert.Equal(t, got[0].RunID, got[1].RunID)
	assert.NotEmpty(t, got[0].RunID)
}

func TestRunContext_Usage(t *testing.T) {
	var out, errb bytes.Buffer
	assert.Equal(t, 2, RunContext(context.Background(), nil, &out, &errb))
	assert.Contains(t, errb.String(), "at least one scenario file")

	errb.Reset()
	dir := t.TempDir()
	a := write(t, dir, "a.yaml", "models:\n  sabatier: {}\n")
	assert.Equal(t, 2, RunContext(context.Background(), []string{"--watch", "-o", "json", a}, &out, &errb))
	assert.Contains(t, errb.String(), "streaming output")

	errb.Reset()
	bad := write(t, dir, "bad.yaml", "models:\n  sabatier:\n    nope: 1\n")
	assert.Equal(t, 2, RunContext(context.Background(), []string{bad}, &out, &errb))
	assert.Contains(t, errb.String(), "nope")
}

func TestRunContext_WatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.yaml", "models:\n  electrolyzer: {}\n")
	ctx, cancel := context.WithCancel(context.Background())
	var out, errb bytes.Buffer
	done := make(chan int, 1)
	go func() { done <- RunContext(ctx, []string{"--watch", "-q", "-o", "tsv", a}, &out, &errb) }()
	cancel()
	code := <-done
	assert.Contains(t, []int{0, 1, 130}, code)
}

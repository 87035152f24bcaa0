package writers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"isru-core/report"

	"isru/internal/output"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

func rep(model string, keys ...string) report.Report {
	r := report.Report{Model: model, Title: model, Inputs: []report.Figure{report.F("water_load", "H2O Load", "kg/day", 1)}}
	for i, k := range keys {
		r.Figures = append(r.Figures, report.F(k, k, "kW", float64(i+1)))
	}
	return r
}

func run(t *testing.T, opts Options, list ...report.Report) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartReportWriter(&buf, opts, 1)
	for _, r := range list {
		in <- r
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, Options{Format: "nope-format"}, rep("a", "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRegistered(t *testing.T) {
	assert.ElementsMatch(t, output.Formats(), Registered())
}

func TestTSV_HeaderPerShape(t *testing.T) {
	a1, a2, b := rep("a", "x"), rep("a", "x"), rep("b", "y", "z")
	failed := rep("b")
	failed.Err = "boom"
	got, err := run(t, Options{Format: output.FormatTSV, Header: true, Precision: 6}, a1, a2, b, failed)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Equal(t, []string{
		"model\tcase\twater_load\tx\terror",
		"a\t\t1\t1\t",
		"a\t\t1\t1\t",
		"model\tcase\twater_load\ty\tz\terror",
		"b\t\t1\t1\t2\t",
		"b\t\t1\t\t\tboom",
	}, lines)
}

func TestTSV_NoHeader(t *testing.T) {
	got, err := run(t, Options{Format: output.FormatTSV}, rep("a", "x"))
	require.NoError(t, err)
	assert.Equal(t, "a\t\t1\t1\t\n", got)
}

func TestText_BlankLineBetweenBlocks(t *testing.T) {
	got, err := run(t, Options{Format: output.FormatText}, rep("a", "x"), rep("b", "y"))
	require.NoError(t, err)
	assert.Equal(t, "a:\n  x (kW) = 1\n\nb:\n  y (kW) = 1\n", got)
}

func TestJSON_EmptyIsArray(t *testing.T) {
	got, err := run(t, Options{Format: output.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", got)
}

func TestJSONL_OneLinePerReport(t *testing.T) {
	got, err := run(t, Options{Format: output.FormatJSONL, RunID: "r"}, rep("a", "x"), rep("b", "y"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "\n"))
	assert.Contains(t, got, `"run_id":"r"`)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteErrorDrains(t *testing.T) {
	in, done := StartReportWriter(failWriter{err: syscall.EPIPE}, Options{Format: output.FormatText}, 1)
	for i := 0; i < 10; i++ {
		in <- rep("a", "x")
	}
	close(in)
	err := <-done
	require.Error(t, err)
	assert.True(t, IsBrokenPipe(err))
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("other")))
	assert.False(t, IsBrokenPipe(nil))
}

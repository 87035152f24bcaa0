package sweepapp

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru/internal/models"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := RunContext(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestPoint_FailedIsReport(t *testing.T) {
	m, _ := models.Lookup("dryer")
	r, err := Point(m.New(), "pressure", 700, "pressure=700")
	require.NoError(t, err)
	assert.True(t, r.Failed())
	assert.Contains(t, r.Err, "triple point")
	assert.Equal(t, "pressure=700", r.Case)

	_, err = Point(m.New(), "no_such", 1, "")
	assert.Error(t, err)
}

func TestRunContext_TSVRowsInOrder(t *testing.T) {
	code, out, errs := run(t, "electrolyzer", "--param", "water-load", "--from", "10", "--to", "40", "--steps", "4", "-o", "tsv", "--threads", "3")
	require.Equal(t, 0, code, errs)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "model\tcase\t"))
	for i, want := range []string{"water_load=10", "water_load=20", "water_load=30", "water_load=40"} {
		cols := strings.Split(lines[i+1], "\t")
		assert.Equal(t, "electrolyzer", cols[0])
		assert.Equal(t, want, cols[1])
	}
}

func TestRunContext_AllInfeasible(t *testing.T) {
	code, out, _ := run(t, "dryer", "--param", "pressure", "--from", "700", "--to", "900", "--steps", "3", "-o", "jsonl")
	assert.Equal(t, 1, code)
	assert.Equal(t, 3, strings.Count(out, `"error":`))

	code, _, _ = run(t, "dryer", "--param", "pressure", "--from", "700", "--to", "900", "--steps", "3", "--no-result-exit-code", "0", "-q")
	assert.Equal(t, 0, code)
}

func TestRunContext_UsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"warp-drive", "--param", "x", "--from", "1", "--to", "2"},
		{"electrolyzer", "--from", "1", "--to", "2"},
		{"electrolyzer", "--param", "water-load", "--from", "1"},
		{"electrolyzer", "--param", "nope", "--from", "1", "--to", "2"},
		{"electrolyzer", "--param", "water-load", "--from", "1", "--to", "2", "--steps", "0"},
		{"electrolyzer", "--param", "water-load", "--from", "1", "--to", "2", "extra"},
	}
	for _, args := range cases {
		code, _, errs := run(t, args...)
		assert.Equal(t, 2, code, "%v: %s", args, errs)
		assert.Contains(t, errs, "error:", args)
	}
}

func TestRunContext_Help(t *testing.T) {
	code, out, _ := run(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Models: extraction, electrolyzer")

	code, out, _ = run(t, "dryer", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--renewal-rate")
}

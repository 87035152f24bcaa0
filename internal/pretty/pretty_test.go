package pretty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru-core/ilmenite"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0o644)
	}
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0o644)
	}
	return false, nil
}

func TestNumber_Grouping(t *testing.T) {
	p := printer("en")
	assert.Equal(t, "6,541.56", Number(p, 6541.5625, 6))
	assert.Equal(t, "85", Number(p, 85, 6))
	assert.Equal(t, "1,234,568", Number(p, 1234567.89, 6))
	assert.Equal(t, "0.5", Number(p, 0.5, 6))
	assert.Equal(t, "0", Number(p, 0, 6))
	assert.Equal(t, "1e-06", Number(p, 1e-6, 6))
}

func TestRenderIlmenite_Golden(t *testing.T) {
	r, err := ilmenite.Evaluate(ilmenite.Default())
	require.NoError(t, err)
	got := Render(r.Report(), DefaultOptions)

	assert.Contains(t, got, "Inputs")
	assert.Contains(t, got, "Results")
	assert.Contains(t, got, "╭")
	assert.True(t, strings.HasSuffix(got, "\n"))
	for _, f := range r.Report().Figures {
		assert.Contains(t, got, f.Label)
	}

	golden := filepath.Join("testdata", "ilmenite.golden")
	created, err := writeIfMissingOrUpdate(golden, got)
	require.NoError(t, err)
	if created {
		t.Logf("golden written: %s", golden)
		return
	}
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestRender_FailedPoint(t *testing.T) {
	r, err := ilmenite.Evaluate(ilmenite.Default())
	require.NoError(t, err)
	rep := r.Report()
	rep.Case = "residence_time=9"
	rep.Err = "ilmenite: residence time too long"
	got := Render(rep, Options{})
	assert.Contains(t, got, "[residence_time=9]")
	assert.Contains(t, got, "error: ilmenite: residence time too long")
	assert.NotContains(t, got, "Results")
}

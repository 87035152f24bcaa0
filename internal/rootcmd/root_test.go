package rootcmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru/internal/version"
)

func run(args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	code := RunContext(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestModels_ListsAll(t *testing.T) {
	code, out, _ := run("models")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "extraction "))
	assert.True(t, strings.HasPrefix(lines[5], "sabatier "))

	code, out, _ = run("models", "--long")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "--conversion-efficiency")
}

func TestModelSubcommand_Delegates(t *testing.T) {
	code, out, errs := run("electrolyzer", "--water-load", "10", "-o", "tsv", "--no-header")
	require.Equal(t, 0, code, errs)
	assert.True(t, strings.HasPrefix(out, "electrolyzer\t\t0.72\t10\t"), out)

	code, _, _ = run("dryer", "--pressure", "700")
	assert.Equal(t, 2, code)

	code, out, _ = run("ilmenite", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--separation-factor")
}

func TestSweepAndScenario_Delegate(t *testing.T) {
	code, out, _ := run("sweep", "extraction", "--param", "regolith-load", "--from", "1000", "--to", "6000", "--steps", "2", "-o", "tsv", "--no-header")
	require.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	code, _, errs := run("scenario")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "scenario file")
}

func TestDoc(t *testing.T) {
	code, out, _ := run("doc", "dryer", "--raw")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "# LADI dryer"))

	code, out, _ = run("doc", "sabatier", "--width", "60")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sabatier")

	code, _, errs := run("doc", "warp")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "known: extraction")
}

func TestVersion(t *testing.T) {
	code, out, _ := run("version")
	require.Equal(t, 0, code)
	assert.Equal(t, "isru version "+version.Version+"\n", out)

	code, out, _ = run("--version")
	require.Equal(t, 0, code)
	assert.Equal(t, "isru version "+version.Version+"\n", out)
}

func TestUnknownCommand(t *testing.T) {
	code, _, errs := run("fusion")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "unknown command")
}

func TestVerbose_ReachesDelegatedRunner(t *testing.T) {
	for _, args := range [][]string{
		{"--verbose", "electrolyzer"},
		{"electrolyzer", "--verbose"},
	} {
		code, _, errs := run(args...)
		require.Equal(t, 0, code, errs)
		assert.Contains(t, errs, "evaluated", "args=%v", args)
	}

	code, _, errs := run("electrolyzer")
	require.Equal(t, 0, code)
	assert.NotContains(t, errs, "evaluated")
}

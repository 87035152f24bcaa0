package appshell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"isru/internal/rootcmd"
)

const childEnv = "ISRU_APPSHELL_CHILD"

// The child re-runs this test binary with stdout connected to a pipe whose
// reader is already closed; without SIGPIPE ignored it dies with status 141.
func TestMain_ClosedStdoutExitsZero(t *testing.T) {
	if os.Getenv(childEnv) == "1" {
		Main(func(ctx context.Context, _ []string, stdout, stderr io.Writer) int {
			return rootcmd.RunContext(ctx, []string{"sweep", "dryer", "--param", "pressure",
				"--from", "50", "--to", "600", "--steps", "400", "-q"}, stdout, stderr)
		})
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_ClosedStdoutExitsZero$")
	cmd.Env = append(os.Environ(), childEnv+"=1")
	out, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())
	require.NoError(t, out.Close())

	err = cmd.Wait()
	require.NoError(t, err, "child should exit 0 on a closed stdout")
}

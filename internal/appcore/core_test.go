package appcore

import (
	"bytes"
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"isru-core/report"

	"isru/internal/writers"
)

func rep(model string, notes ...string) report.Report {
	return report.Report{Model: model, Title: model, Figures: []report.Figure{report.F("x", "X", "", 1)}, Notes: notes}
}

func TestRun_OK_NotesLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, zap.New(core), Options{Writer: writers.Options{Format: "text"}},
		func(ctx context.Context, emit Emit) (int, error) {
			for i := 0; i < 3; i++ {
				if err := emit(rep("dryer", "process physics only")); err != nil {
					return i, err
				}
			}
			return 3, nil
		})
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("dryer:")))
	assert.Equal(t, 1, logs.FilterMessage("process physics only").Len())
	assert.Empty(t, errb.String())
}

func TestRun_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		prod Producer
		want int
	}{
		{"no result", func(context.Context, Emit) (int, error) { return 0, nil }, 7},
		{"input error", func(context.Context, Emit) (int, error) { return 0, errors.New("bad") }, ExitUsage},
		{"canceled", func(context.Context, Emit) (int, error) { return 0, context.Canceled }, ExitCanceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errb bytes.Buffer
			got := Run(context.Background(), &out, &errb, nil, Options{Writer: writers.Options{Format: "tsv"}, NoResultExitCode: 7}, tc.prod)
			assert.Equal(t, tc.want, got)
		})
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRun_OutputErrors(t *testing.T) {
	prod := func(ctx context.Context, emit Emit) (int, error) { return 1, emit(rep("a")) }
	var errb bytes.Buffer
	assert.Equal(t, ExitOK, Run(context.Background(), errWriter{syscall.EPIPE}, &errb, nil,
		Options{Writer: writers.Options{Format: "json"}}, prod))
	assert.Equal(t, ExitOutput, Run(context.Background(), errWriter{errors.New("disk full")}, &errb, nil,
		Options{Writer: writers.Options{Format: "json"}}, prod))
	assert.Contains(t, errb.String(), "disk full")
	assert.Equal(t, ExitOutput, Run(context.Background(), &bytes.Buffer{}, &errb, nil,
		Options{Writer: writers.Options{Format: "nope"}}, prod))
}

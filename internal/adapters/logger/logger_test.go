package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rake/internal/adapters/logger"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		trace      bool
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{name: "info", log: func(lg *logger.Logger) { lg.Info("some message") }, goldenName: "info_basic"},
		{name: "warn", log: func(lg *logger.Logger) { lg.Warn("something odd") }, goldenName: "warn_basic"},
		{name: "debug hidden", log: func(lg *logger.Logger) { lg.Debug("tracing on") }, goldenName: "debug_hidden"},
		{name: "debug traced", trace: true, log: func(lg *logger.Logger) { lg.Debug("tracing on") }, goldenName: "debug_trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetTrace(tt.trace)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_SetTraceOff(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetTrace(true)
	lg.SetTrace(false)
	lg.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{name: "plain error", err: errors.New("boom"), goldenName: "error_plain"},
		{
			name:       "stdlib chain is not expanded",
			err:        fmt.Errorf("outer: %w", errors.New("inner")),
			goldenName: "error_stdlib",
		},
		{
			name: "task not found",
			err: zerr.Wrap(
				zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "Don't know how to build task 'nope'"), "task", "nope"),
				"rake aborted!",
			),
			goldenName: "error_task_not_found",
		},
		{
			name: "exit error is transparent",
			err: zerr.Wrap(
				domain.NewExitError(2, zerr.Wrap(domain.ErrShellCommandFailed, "Command failed with status (2): [false]")),
				"rake aborted!",
			),
			goldenName: "error_exit_code",
		},
		{
			name:       "multiline message",
			err:        zerr.Wrap(errors.New("cause"), "first\nsecond"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

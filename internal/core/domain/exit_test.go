package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{
			name: "task not found",
			err:  zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "Don't know how to build task 'nope'"), "task", "nope"),
			want: -1,
		},
		{name: "rakefile not found", err: zerr.Wrap(domain.ErrRakefileNotFound, "rake aborted!"), want: -1},
		{
			name: "shell failure keeps child code",
			err:  zerr.Wrap(domain.NewExitError(2, domain.ErrShellCommandFailed), "rake aborted!"),
			want: 2,
		},
		{name: "other fatal error", err: domain.ErrCopyFailed, want: 1},
		{name: "plain error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := domain.NewExitError(3, domain.ErrShellCommandFailed)
	assert.ErrorIs(t, err, domain.ErrShellCommandFailed)
	assert.Equal(t, domain.ErrShellCommandFailed.Error(), err.Error())
}

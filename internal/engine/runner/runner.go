// Package runner executes resolved task records one at a time.
package runner

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls the output and failure policy of a run.
type Options struct {
	// Verbose enables print-text output and the echo of shell commands.
	Verbose bool
	// ReportExitCodes prints the exit code of every shell command.
	ReportExitCodes bool
	// IgnoreFailures keeps going after a shell command exits nonzero.
	IgnoreFailures bool
	// DryRun prints the tasks that would run instead of running them.
	DryRun bool
}

// OptionsFrom extracts the runner options from the run settings.
func OptionsFrom(s domain.Settings) Options {
	return Options{
		Verbose:         s.Verbose,
		ReportExitCodes: s.ReportExitCodes,
		IgnoreFailures:  s.IgnoreFailures,
		DryRun:          s.DryRun,
	}
}

// Runner dispatches task records to their effects.
type Runner struct {
	procs  ports.ProcessRunner
	fs     ports.FileSystem
	logger ports.Logger
	out    io.Writer
	opts   Options

	cwd string
}

// New creates a Runner writing command output to out.
func New(
	procs ports.ProcessRunner,
	fs ports.FileSystem,
	logger ports.Logger,
	out io.Writer,
	opts Options,
) *Runner {
	return &Runner{
		procs:  procs,
		fs:     fs,
		logger: logger,
		out:    out,
		opts:   opts,
	}
}

// Run executes tasks in order. The first fatal failure stops the run.
// A failed shell command is returned as a *domain.ExitError carrying the
// command's exit code.
func (r *Runner) Run(ctx context.Context, tasks []domain.Task) error {
	cwd, err := r.fs.Getwd()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}
	r.cwd = cwd

	if r.opts.DryRun {
		r.printPlan(tasks)
		return nil
	}

	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug(fmt.Sprintf("execute %s: %s [%s] (line %d)", t.Name, t.Command, t.Params, t.SourceLine+1))
		if err := r.dispatch(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) printPlan(tasks []domain.Task) {
	last := ""
	for i, t := range tasks {
		if i > 0 && t.Name == last {
			continue
		}
		last = t.Name
		_, _ = fmt.Fprintf(r.out, "** Execute (dry run) %s\n", t.Name)
	}
}

func (r *Runner) dispatch(ctx context.Context, t domain.Task) error {
	switch t.Command {
	case domain.VerbPrintText:
		if r.opts.Verbose {
			r.println(t.Params)
		}
	case domain.VerbSleepMillis:
		sleep(t.Params)
	case domain.VerbPrintWorkingDir:
		r.println(r.cwd)
	case domain.VerbChangeWorkingDir:
		return r.chdir(t.Params)
	case domain.VerbDeleteFile:
		return r.delete(t.Params)
	case domain.VerbCopyFile:
		return r.copy(t.Params)
	case domain.VerbRunShell:
		return r.shell(ctx, t)
	case domain.VerbWriteFile:
		r.logger.Debug(fmt.Sprintf("skipping reserved write-file command on line %d", t.SourceLine+1))
	case domain.VerbNone:
	}
	return nil
}

func (r *Runner) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// sleep pauses for params milliseconds. Invalid or negative values do nothing.
func sleep(params string) {
	ms, err := strconv.Atoi(strings.TrimSpace(params))
	if err != nil || ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (r *Runner) chdir(dir string) error {
	target := r.abs(dir)
	if err := r.fs.Chdir(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrChangeDirFailed.Error()), "path", dir)
	}
	r.cwd = target
	return nil
}

func (r *Runner) delete(path string) error {
	if err := r.fs.RemoveIfExists(r.abs(path)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDeleteFailed.Error()), "path", path)
	}
	return nil
}

func (r *Runner) copy(params string) error {
	src, dst, ok := strings.Cut(params, " ")
	if !ok || src == "" || dst == "" {
		return zerr.With(domain.ErrCopyFailed, "params", params)
	}
	if err := r.fs.Copy(r.abs(src), r.abs(dst)); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src)
		return zerr.With(err, "dst", dst)
	}
	return nil
}

func (r *Runner) shell(ctx context.Context, t domain.Task) error {
	if r.opts.Verbose {
		r.println(t.Params)
	}

	args := strings.Split(t.Params, " ")
	code, err := r.procs.Run(ctx, r.cwd, args[0], args[1:])
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to start %q: %v", args[0], err))
		code = domain.ExitAborted
	}

	if r.opts.ReportExitCodes {
		r.println(fmt.Sprintf("Exited with status %d", code))
	}

	if code == 0 {
		return nil
	}

	if r.opts.IgnoreFailures {
		r.logger.Warn(fmt.Sprintf("ignoring status %d of %s (line %d)", code, t.Name, t.SourceLine+1))
		return nil
	}

	failure := zerr.Wrap(domain.ErrShellCommandFailed, fmt.Sprintf("Command failed with status (%d): [%s]", code, t.Params))
	failure = zerr.With(failure, "task", t.Name)
	failure = zerr.With(failure, "line", t.SourceLine+1)
	return domain.NewExitError(code, failure)
}

func (r *Runner) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.cwd, path)
}

// Package app implements the application layer for rake.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/core/ports"
	"go.trai.ch/rake/internal/engine/classifier"
	"go.trai.ch/rake/internal/engine/resolver"
	"go.trai.ch/rake/internal/engine/runner"
	"go.trai.ch/rake/internal/engine/symbols"
	"go.trai.ch/zerr"
)

// App runs rakefile tasks.
type App struct {
	rakefiles ports.RakefileLoader
	settings  ports.SettingsLoader
	procs     ports.ProcessRunner
	fs        ports.FileSystem
	platform  ports.Platform
	logger    ports.Logger
	stdout    io.Writer
}

// New creates a new App instance writing command output to os.Stdout.
func New(
	rakefiles ports.RakefileLoader,
	settings ports.SettingsLoader,
	procs ports.ProcessRunner,
	fs ports.FileSystem,
	platform ports.Platform,
	log ports.Logger,
) *App {
	return &App{
		rakefiles: rakefiles,
		settings:  settings,
		procs:     procs,
		fs:        fs,
		platform:  platform,
		logger:    log,
		stdout:    os.Stdout,
	}
}

// WithOutput replaces the writer receiving command output.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions holds the command-line overrides of the settings file.
// Flags can only switch options on, except Quiet which switches verbose output off.
type RunOptions struct {
	Rakefile       string
	Quiet          bool
	ExitCodes      bool
	IgnoreFailures bool
	DryRun         bool
	Trace          bool
}

func (o RunOptions) apply(s *domain.Settings) {
	if o.Rakefile != "" {
		s.Rakefile = o.Rakefile
	}
	s.Verbose = s.Verbose && !o.Quiet
	s.ReportExitCodes = s.ReportExitCodes || o.ExitCodes
	s.IgnoreFailures = s.IgnoreFailures || o.IgnoreFailures
	s.DryRun = s.DryRun || o.DryRun
	s.Trace = s.Trace || o.Trace
}

// Run executes the named tasks. No names means the default task.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	settings, rf, err := a.load(opts)
	if err != nil {
		return err
	}

	table := symbols.Build(rf.Variables, rf.Structs)
	tasks := symbols.SubstituteAll(rf.Tasks, table)
	a.logger.Debug(fmt.Sprintf("%d variables, %d records", len(table), len(tasks)))

	if len(targetNames) == 0 {
		targetNames = []string{domain.DefaultTask}
	}

	plan, err := resolver.Resolve(targetNames, tasks)
	if err != nil {
		return err
	}
	a.logger.Debug(fmt.Sprintf("resolved %v to %d records", targetNames, len(plan)))

	r := runner.New(a.procs, a.fs, a.logger, a.stdout, runner.OptionsFrom(settings))
	return r.Run(ctx, plan)
}

// ListTasks prints every task of the rakefile with its dependency.
func (a *App) ListTasks(opts RunOptions) error {
	_, rf, err := a.load(opts)
	if err != nil {
		return err
	}

	names := rf.TaskNames()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	for _, name := range names {
		dep := rf.DependencyOf(name)
		if dep == "" {
			_, _ = fmt.Fprintf(a.stdout, "rake %s\n", name)
			continue
		}
		_, _ = fmt.Fprintf(a.stdout, "rake %-*s  # => %s\n", width, name, dep)
	}
	return nil
}

func (a *App) load(opts RunOptions) (domain.Settings, *domain.Rakefile, error) {
	cwd, err := a.fs.Getwd()
	if err != nil {
		return domain.Settings{}, nil, zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}

	settings, err := a.settings.Load(cwd)
	if err != nil {
		return settings, nil, err
	}
	opts.apply(&settings)
	a.logger.SetTrace(settings.Trace)

	src, err := a.rakefiles.Load(cwd, settings.Rakefile)
	if err != nil {
		return settings, nil, err
	}

	rf := classifier.NewScanner(a.platform).Scan(src)
	a.logger.Debug(fmt.Sprintf("scanned %s on %s: %d tasks, %d blocks",
		rf.Path, a.platform.Name(), len(rf.TaskNames()), len(rf.Blocks)))

	return settings, rf, nil
}

// Package config reads run settings from the .rake.yaml file.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader on top of an afero filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the settings file in cwd. A missing file yields the defaults.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	path := filepath.Join(cwd, domain.SettingsFileName)

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}
	if !exists {
		return settings, nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	cfg, err := parse(data)
	if err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	apply(&settings, cfg)
	return settings, nil
}

func parse(data []byte) (Rakeconfig, error) {
	var cfg Rakeconfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

func apply(s *domain.Settings, cfg Rakeconfig) {
	if cfg.Rakefile != "" {
		s.Rakefile = cfg.Rakefile
	}
	set(&s.Verbose, cfg.Verbose)
	set(&s.ReportExitCodes, cfg.ExitCodes)
	set(&s.IgnoreFailures, cfg.IgnoreFailures)
	set(&s.DryRun, cfg.DryRun)
	set(&s.Trace, cfg.Trace)
}

func set(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}

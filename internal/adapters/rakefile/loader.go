// Package rakefile locates and reads the task file.
package rakefile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RakefileLoader = (*Loader)(nil)

// Loader implements ports.RakefileLoader on top of an afero filesystem.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a Loader reading from fs.
func NewLoader(fs afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fs, logger: logger}
}

// Load reads the rakefile. An explicit path that exists wins; otherwise the
// candidate names are tried in cwd in order.
func (l *Loader) Load(cwd, explicit string) (*domain.Source, error) {
	if explicit != "" {
		path := resolve(cwd, explicit)
		if l.isFile(path) {
			return l.read(path)
		}
		l.logger.Debug(fmt.Sprintf("rakefile %s not found, searching candidates", path))
	}

	for _, name := range domain.CandidateRakefiles {
		path := filepath.Join(cwd, name)
		if l.isFile(path) {
			return l.read(path)
		}
	}

	msg := fmt.Sprintf("No Rakefile found (looking for %s)", strings.Join(domain.CandidateRakefiles, ", "))
	return nil, zerr.With(zerr.Wrap(domain.ErrRakefileNotFound, msg), "cwd", cwd)
}

func (l *Loader) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (l *Loader) read(path string) (*domain.Source, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRakefileReadFailed.Error()), "path", path)
	}

	src := &domain.Source{
		Path:   path,
		Digest: fmt.Sprintf("%016x", xxhash.Sum64(data)),
		Text:   string(data),
	}
	l.logger.Debug(fmt.Sprintf("loaded %s (%d bytes, xxhash %s)", src.Path, len(data), src.Digest))
	return src, nil
}

func resolve(cwd, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

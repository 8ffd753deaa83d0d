// Package fs provides the file and directory primitives of the built-in commands.
package fs

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/rake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem. File operations go through afero;
// the working directory is the process's own.
type FileSystem struct {
	fs afero.Fs
}

// NewFileSystem creates a FileSystem operating on fs.
func NewFileSystem(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// Getwd returns the process working directory.
func (f *FileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory.
func (f *FileSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

// RemoveIfExists deletes path if it exists.
func (f *FileSystem) RemoveIfExists(path string) error {
	exists, err := afero.Exists(f.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if !exists {
		return nil
	}
	if err := f.fs.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// Copy copies the contents and permissions of src to dst, replacing dst.
func (f *FileSystem) Copy(src, dst string) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	if info.IsDir() {
		return zerr.With(zerr.New("source is a directory"), "path", src)
	}

	out, err := f.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination"), "path", dst)
	}
	return nil
}

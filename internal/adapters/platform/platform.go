// Package platform identifies the host operating system.
package platform

import (
	"runtime"
	"slices"

	"go.trai.ch/rake/internal/core/ports"
)

var _ ports.Platform = (*Platform)(nil)

var recognized = []string{
	"linux", "darwin", "windows",
	"freebsd", "openbsd", "netbsd", "dragonfly",
	"solaris", "illumos", "aix",
}

// Platform implements ports.Platform for a GOOS value.
type Platform struct {
	goos string
}

// New returns the Platform of the running process.
func New() *Platform {
	return &Platform{goos: runtime.GOOS}
}

// NewFor returns the Platform for goos.
func NewFor(goos string) *Platform {
	return &Platform{goos: goos}
}

// Name returns the GOOS value.
func (p *Platform) Name() string {
	return p.goos
}

// Recognized reports whether the operating system is one the interpreter knows.
func (p *Platform) Recognized() bool {
	return slices.Contains(recognized, p.goos)
}

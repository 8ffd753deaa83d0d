package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when none of the requested tasks is defined in the rakefile.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrRakefileNotFound is returned when no candidate rakefile exists.
	ErrRakefileNotFound = zerr.New("no rakefile found")

	// ErrRakefileReadFailed is returned when the rakefile exists but cannot be read.
	ErrRakefileReadFailed = zerr.New("failed to read rakefile")

	// ErrShellCommandFailed is returned when a shell command exits with a nonzero code.
	ErrShellCommandFailed = zerr.New("command failed")

	// ErrChangeDirFailed is returned when the working directory cannot be changed.
	ErrChangeDirFailed = zerr.New("failed to change working directory")

	// ErrCopyFailed is returned when a file copy fails.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrDeleteFailed is returned when an existing file cannot be removed.
	ErrDeleteFailed = zerr.New("failed to delete file")

	// ErrWorkingDirFailed is returned when the current working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine working directory")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)

// Package ports defines the core interfaces for the application.
package ports

import "context"

// ProcessRunner spawns external processes for shell commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Run starts name with args in dir, inheriting standard output and error,
	// and waits for it to exit.
	//
	// It returns the process exit code. An error is returned only when the
	// process could not be started.
	Run(ctx context.Context, dir, name string, args []string) (int, error)
}

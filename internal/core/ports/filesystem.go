package ports

// FileSystem provides the file and directory primitives used by the built-in commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Getwd returns the process working directory.
	Getwd() (string, error)
	// Chdir changes the process working directory.
	Chdir(dir string) error
	// RemoveIfExists deletes path. A missing path is not an error.
	RemoveIfExists(path string) error
	// Copy copies the contents of src to dst.
	Copy(src, dst string) error
}

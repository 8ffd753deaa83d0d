package ports

// Platform identifies the host operating system.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type Platform interface {
	// Name returns the platform identifier.
	Name() string
	// Recognized reports whether the platform could be positively identified.
	Recognized() bool
}

package ports

import "go.trai.ch/rake/internal/core/domain"

// RakefileLoader locates and reads the task file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type RakefileLoader interface {
	// Load reads the rakefile. An explicit path is used when it exists,
	// otherwise the candidate names are searched in cwd.
	Load(cwd, explicit string) (*domain.Source, error)
}

// SettingsLoader reads run settings from the working directory.
type SettingsLoader interface {
	// Load returns the settings found in cwd, or the defaults when there is no settings file.
	Load(cwd string) (domain.Settings, error)
}

package domain

// SettingsFileName is the optional settings file read from the working directory.
const SettingsFileName = ".rake.yaml"

// Settings holds the options that control a run.
type Settings struct {
	Rakefile        string
	Verbose         bool
	ReportExitCodes bool
	IgnoreFailures  bool
	DryRun          bool
	Trace           bool
}

// DefaultSettings returns the settings used when neither a settings file nor flags override them.
func DefaultSettings() Settings {
	return Settings{Verbose: true}
}

package config

// Rakeconfig is the structure of the .rake.yaml settings file.
// Unset fields keep their default values.
type Rakeconfig struct {
	Rakefile       string `yaml:"rakefile"`
	Verbose        *bool  `yaml:"verbose"`
	ExitCodes      *bool  `yaml:"exitCodes"`
	IgnoreFailures *bool  `yaml:"ignoreFailures"`
	DryRun         *bool  `yaml:"dryRun"`
	Trace          *bool  `yaml:"trace"`
}

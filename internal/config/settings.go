package config

import "time"

// CurrentSettingsVersion is the schema version for the settings file.
// Increment when making breaking changes to the settings structure.
const CurrentSettingsVersion = 1

// Settings is conkygen's own configuration: which design to render by
// default and how probing and terminal output behave. It is separate from
// the machine data file, which describes the machine being rendered.
type Settings struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Design is the design rendered when the command line names none.
	Design string `yaml:"design" mapstructure:"design"`

	// ProbeTimeout bounds each external probe. Zero means the resolver's
	// default.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`

	// ExternalIPURL overrides the service queried for the public IP.
	// Empty means the prober's stock endpoint.
	ExternalIPURL string `yaml:"external_ip_url" mapstructure:"external_ip_url"`

	Output OutputSettings `yaml:"output" mapstructure:"output"`
}

// OutputSettings controls terminal output.
type OutputSettings struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Quiet suppresses progress messages on stderr.
	Quiet bool `yaml:"quiet" mapstructure:"quiet"`
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Version:      CurrentSettingsVersion,
		Design:       "clean-stack",
		ProbeTimeout: 5 * time.Second,
		Output: OutputSettings{
			Color: "auto",
		},
	}
}

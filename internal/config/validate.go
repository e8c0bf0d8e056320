package config

import (
	"fmt"
	"net/url"

	"github.com/conkygen/conkygen/internal/errors"
)

// Validate checks loaded settings before a run uses them.
func Validate(cfg *Settings) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Settings are nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentSettingsVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("These settings are from the future (version %d, but conkygen only knows up to %d)", cfg.Version, CurrentSettingsVersion),
			"Update conkygen, or drop the version field to use the current schema")
	}

	if cfg.ProbeTimeout < 0 {
		return errors.New(errors.ErrConfig,
			"probe_timeout can't be negative - that doesn't make sense",
			"Use a duration like '5s', or 0 for the default")
	}

	if err := validateExternalIPURL(cfg.ExternalIPURL); err != nil {
		return err
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your settings file.")
	}

	return nil
}

// validateExternalIPURL accepts empty (the prober's stock endpoint) or a
// full http(s) URL.
func validateExternalIPURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("external_ip_url '%s' isn't a usable URL", raw),
			"Use a full http(s) URL for a service that answers with the caller's IP as plain text")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("external_ip_url scheme '%s' isn't supported", u.Scheme),
			"Use an http or https URL")
	}
	return nil
}

// validateOutput checks output settings.
func validateOutput(out OutputSettings) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

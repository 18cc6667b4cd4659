// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config/settings.yaml (or the file named by
// ALERT_RUNS_CONFIG) and validated using struct tags. Cities that are not
// configured fall back to built-in MEL, SYD and SEQ settings, and a city can be
// selected by tag or name.
package config

package main

import (
	"fmt"

	"github.com/theoremus-urban-solutions/alert-runs/config"
	"github.com/theoremus-urban-solutions/alert-runs/export"
)

// resolveCity picks the city and its input files. Patterns given on the command
// line override the configured ones; without -city the tag is derived from the
// matched file names.
func resolveCity(cityName string, patterns []string) (config.City, []string, error) {
	if cityName != "" {
		city, ok := config.SelectCity(cityName)
		if !ok {
			return config.City{}, nil, fmt.Errorf("unknown city %q", cityName)
		}
		if len(patterns) == 0 {
			patterns = city.Patterns
		}
		files, err := export.Discover(patterns...)
		return city, files, err
	}

	if len(patterns) == 0 {
		return config.City{}, nil, fmt.Errorf("-city or input patterns required")
	}
	files, err := export.Discover(patterns...)
	if err != nil {
		return config.City{}, nil, err
	}
	tag := export.DeriveCityTag(files)
	city, ok := config.SelectCity(tag)
	if !ok {
		city = config.City{Name: tag, Tag: tag}
	}
	return city, files, nil
}

// validationTargets returns the summary tables to check: explicit paths, or the
// configured output of every city.
func validationTargets(paths []string) []string {
	if len(paths) > 0 {
		return paths
	}
	out := make([]string, 0, len(config.Config.Cities))
	for _, c := range config.Config.Cities {
		out = append(out, c.OutputPath())
	}
	return out
}

package config

import (
	"fmt"

	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// DefaultOutputPattern is the summary table path when a city sets no output.
const DefaultOutputPattern = "results/tables/_runs_summary_%s.csv"

// City contains the inputs and resolution settings of one feed
type City struct {
	Name            string   `yaml:"name" validate:"required"`
	Tag             string   `yaml:"tag" validate:"required,alpha,uppercase"`
	Patterns        []string `yaml:"patterns" validate:"required,min=1,dive,required"`
	Resolver        string   `yaml:"resolver" validate:"omitempty,oneof=short_name route_index"` // short_name|route_index
	RoutesPath      string   `yaml:"routesPath" validate:"required_if=Resolver route_index"`
	RouteIndexCache string   `yaml:"routeIndexCache"`
	TZOffset        string   `yaml:"tzOffset" validate:"omitempty,tzoffset"`
	RunIDTimestamp  *bool    `yaml:"runIdTimestamp"`
	Output          string   `yaml:"output"`
}

// UseRunIDTimestamp reports whether run ids are preferred for the run timestamp.
// Unset means true.
func (c City) UseRunIDTimestamp() bool {
	return c.RunIDTimestamp == nil || *c.RunIDTimestamp
}

// OutputPath returns the configured summary path or the per-tag default.
func (c City) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return fmt.Sprintf(DefaultOutputPattern, c.Tag)
}

// Offset returns the city's UTC offset or the package default.
func (c City) Offset() string {
	if c.TZOffset != "" {
		return c.TZOffset
	}
	return utils.DefaultTZOffset
}

// SummariesConfig contains cross-city table settings
type SummariesConfig struct {
	AveragesOut string `yaml:"averagesOut"`
}

// SamplesConfig contains anonymised sample defaults
type SamplesConfig struct {
	Rows   int    `yaml:"rows" validate:"gte=0"`
	Count  int    `yaml:"count" validate:"gte=0"`
	OutDir string `yaml:"outDir"`
	Seed   int64  `yaml:"seed"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Cities    []City          `yaml:"cities" validate:"dive"`
	Summaries SummariesConfig `yaml:"summaries"`
	Samples   SamplesConfig   `yaml:"samples"`
}

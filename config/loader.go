package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/alert-runs/resolve"
	"github.com/theoremus-urban-solutions/alert-runs/samples"
)

// Environment variables read by LoadAppConfig.
const (
	EnvConfigPath = "ALERT_RUNS_CONFIG"
	EnvTZOffset   = "ALERT_RUNS_TZ_OFFSET"
)

// DefaultAveragesOut is where the cross-city averages table is written.
const DefaultAveragesOut = "results/tables/averages.csv"

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{"config/settings.yaml", "settings.yaml"}

// Config is the global application configuration
var Config AppConfig

var tzOffsetRe = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

// Default returns the built-in configuration for the MEL, SYD and SEQ feeds.
func Default() AppConfig {
	no := false
	return AppConfig{
		Cities: []City{
			{
				Name:     "Melbourne",
				Tag:      "MEL",
				Patterns: []string{"out/alerts_*.csv"},
				Resolver: resolve.KindShortName,
			},
			{
				Name:           "Sydney",
				Tag:            "SYD",
				Patterns:       []string{"out/syd_alerts_translated_*.csv"},
				Resolver:       resolve.KindRouteIndex,
				RoutesPath:     "config/routes.txt",
				// dated by the first created_at_iso, unlike the other feeds
				RunIDTimestamp: &no,
			},
			{
				Name:     "SEQ",
				Tag:      "SEQ",
				Patterns: []string{"out/seq_alerts_*.csv"},
				Resolver: resolve.KindShortName,
			},
		},
		Summaries: SummariesConfig{AveragesOut: DefaultAveragesOut},
		Samples: SamplesConfig{
			Rows:   samples.DefaultRows,
			Count:  samples.DefaultCount,
			OutDir: samples.DefaultOutDir,
			Seed:   samples.DefaultSeed,
		},
	}
}

// LoadAppConfig loads, completes and validates the application configuration.
// .env and .env.local are read first; ALERT_RUNS_CONFIG names a config file that
// takes precedence over paths. With no explicit path and no file at the default
// locations the built-in configuration is used.
func LoadAppConfig(paths ...string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	explicit := len(paths) > 0
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append([]string{p}, paths...)
		explicit = true
	}
	if !explicit {
		paths = DefaultPaths
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			log.Printf("config: loaded %s", p)
			break
		}
	}
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Printf("config: no settings file found, using built-in defaults")
		data = nil
	}

	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes YAML settings, fills in built-in cities and defaults that are not
// configured, applies environment overrides and validates the result.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	if tz := os.Getenv(EnvTZOffset); tz != "" {
		for i := range cfg.Cities {
			if cfg.Cities[i].TZOffset == "" {
				cfg.Cities[i].TZOffset = tz
			}
		}
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	def := Default()
	have := make(map[string]bool, len(cfg.Cities))
	for i := range cfg.Cities {
		c := &cfg.Cities[i]
		c.Tag = strings.ToUpper(strings.TrimSpace(c.Tag))
		if c.Resolver == "" {
			c.Resolver = resolve.KindShortName
		}
		have[c.Tag] = true
	}
	for _, c := range def.Cities {
		if !have[c.Tag] {
			cfg.Cities = append(cfg.Cities, c)
		}
	}
	if cfg.Summaries.AveragesOut == "" {
		cfg.Summaries.AveragesOut = def.Summaries.AveragesOut
	}
	if cfg.Samples.Rows == 0 {
		cfg.Samples.Rows = def.Samples.Rows
	}
	if cfg.Samples.Count == 0 {
		cfg.Samples.Count = def.Samples.Count
	}
	if cfg.Samples.OutDir == "" {
		cfg.Samples.OutDir = def.Samples.OutDir
	}
	if cfg.Samples.Seed == 0 {
		cfg.Samples.Seed = def.Samples.Seed
	}
}

// Validate checks struct tags and rejects duplicate city tags.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.RegisterValidation("tzoffset", func(fl validator.FieldLevel) bool {
		return tzOffsetRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.Struct(cfg); err != nil {
		return err
	}
	seen := make(map[string]bool, len(cfg.Cities))
	for _, c := range cfg.Cities {
		if seen[c.Tag] {
			return fmt.Errorf("config: duplicate city tag %q", c.Tag)
		}
		seen[c.Tag] = true
	}
	return nil
}

// SelectCity chooses a city by tag or name, case-insensitively; an empty name
// selects the first city.
func SelectCity(name string) (City, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		if len(Config.Cities) > 0 {
			return Config.Cities[0], true
		}
		return City{}, false
	}
	for _, c := range Config.Cities {
		if strings.EqualFold(c.Tag, name) || strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

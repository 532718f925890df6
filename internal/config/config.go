// Package config defines the configuration for unidex.
//
// Defaults are compiled in (creasty/defaults struct tags plus the built-in
// country list) and can be overridden with an optional YAML file or
// UNIDEX_* environment variables, both handled by viper.
package config

import (
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

type Configuration struct {
	Store     Store   `mapstructure:"store"`
	Catalog   Catalog `mapstructure:"catalog"`
	Ingest    Ingest  `mapstructure:"ingest"`
	Report    Report  `mapstructure:"report"`
	Server    Server  `mapstructure:"server"`
	LogLevel  string  `mapstructure:"log_level" default:"info"`
	LogFormat string  `mapstructure:"log_format" default:"console"`
}

type Store struct {
	// DataFile is the path of the DuckDB database file.
	DataFile string `mapstructure:"data_file" default:"universities.db"`
}

type Catalog struct {
	BaseURL        string        `mapstructure:"base_url" default:"http://universities.hipolabs.com/search"`
	Timeout        time.Duration `mapstructure:"timeout" default:"30s"`
	MaxAttempts    uint          `mapstructure:"max_attempts" default:"3"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" default:"1500ms"`
	Multiplier     float64       `mapstructure:"multiplier" default:"1.5"`
}

type Ingest struct {
	// Countries to iterate, one catalog request each. Empty means the
	// built-in list.
	Countries []string `mapstructure:"countries"`
}

type Report struct {
	// Country whose universities are listed by the per-country report.
	Country string `mapstructure:"country" default:"Brazil"`
	// SearchTerm is the substring used by the name-search report.
	SearchTerm string `mapstructure:"search_term" default:"Tech"`
	Limit      uint64 `mapstructure:"limit" default:"20"`
}

type Server struct {
	// Mode is "dev" or "prod"; it maps directly onto gin's mode.
	Mode     string `mapstructure:"mode" default:"dev"`
	HTTPPort int    `mapstructure:"http_port" default:"8000"`
}

// DefaultCountries is the built-in iteration list. The catalog requires a
// country parameter on every request, so the pipeline walks a fixed set of
// common country names.
func DefaultCountries() []string {
	return []string{
		"Brazil", "United States", "Canada", "Argentina", "Chile", "Colombia", "Mexico", "Peru",
		"United Kingdom", "France", "Germany", "Spain", "Italy", "Portugal", "Netherlands", "Belgium",
		"Australia", "New Zealand", "China", "Japan", "South Korea", "India", "South Africa",
		"Nigeria", "Egypt", "Kenya", "Ghana", "Sweden", "Norway", "Finland", "Denmark", "Poland",
	}
}

// Load builds the configuration from defaults, an optional config file and
// the environment. An empty path skips the file entirely.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("UNIDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so the
	// documented environment overrides are bound explicitly.
	for _, key := range []string{
		"store.data_file",
		"catalog.base_url", "catalog.timeout", "catalog.max_attempts",
		"catalog.initial_backoff", "catalog.multiplier",
		"report.country", "report.search_term", "report.limit",
		"server.mode", "server.http_port",
		"log_level", "log_format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}
	if len(cfg.Ingest.Countries) == 0 {
		cfg.Ingest.Countries = DefaultCountries()
	}

	return cfg, nil
}

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Gamma    GammaConfig    `mapstructure:"gamma"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Probe    ProbeConfig    `mapstructure:"probe"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type GammaConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PipelineConfig carries every tunable of the aggregation pipeline. The
// zero-ish defaults set in Load match the production deployment; tests build
// smaller configs by hand.
type PipelineConfig struct {
	FetchLimit  int    `mapstructure:"fetch_limit"`
	Active      bool   `mapstructure:"active"`
	Closed      bool   `mapstructure:"closed"`
	Order       string `mapstructure:"order"`
	ResultLimit int    `mapstructure:"result_limit"`

	// Markets whose rounded probability falls outside [MinProbability,
	// MaxProbability] on either side are excluded from the output.
	MinProbability int `mapstructure:"min_probability"`
	MaxProbability int `mapstructure:"max_probability"`

	// Blacklist entries are matched case-insensitively as substrings of the
	// question and of the space-joined tag list.
	Blacklist []string `mapstructure:"blacklist"`

	// Selection picks the market that represents a multi-market event:
	// "first" takes index 0 unconditionally, "scan" walks the list until a
	// structurally valid candidate is found.
	Selection string `mapstructure:"selection"`

	DefaultVolumeDisplay string `mapstructure:"default_volume_display"`
	YearFixFrom          string `mapstructure:"year_fix_from"`
	YearFixTo            string `mapstructure:"year_fix_to"`
}

type ProbeConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("gamma.base_url", "https://gamma-api.polymarket.com")
	v.SetDefault("gamma.timeout", "15s")
	v.SetDefault("pipeline.fetch_limit", 50)
	v.SetDefault("pipeline.active", true)
	v.SetDefault("pipeline.closed", false)
	v.SetDefault("pipeline.order", "volume24hr:desc")
	v.SetDefault("pipeline.result_limit", 40)
	v.SetDefault("pipeline.min_probability", 4)
	v.SetDefault("pipeline.max_probability", 96)
	v.SetDefault("pipeline.blacklist", []string{})
	v.SetDefault("pipeline.selection", "scan")
	v.SetDefault("pipeline.default_volume_display", "$100K")
	v.SetDefault("pipeline.year_fix_from", "2025")
	v.SetDefault("pipeline.year_fix_to", "2026")
	v.SetDefault("probe.enabled", false)
	v.SetDefault("probe.schedule", "@every 5m")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

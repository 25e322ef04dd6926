// Package config loads application configuration and bootstraps logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Stats   StatsConfig   `yaml:"stats" mapstructure:"stats"`
	Suggest SuggestConfig `yaml:"suggest" mapstructure:"suggest"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the two delimited source files.
type DataConfig struct {
	SurveyPath      string `yaml:"survey_path" mapstructure:"survey_path"`
	RosterPath      string `yaml:"roster_path" mapstructure:"roster_path"`
	SurveyDelimiter string `yaml:"survey_delimiter" mapstructure:"survey_delimiter"`
	RosterDelimiter string `yaml:"roster_delimiter" mapstructure:"roster_delimiter"`
}

// StatsConfig configures the statistical aggregations.
type StatsConfig struct {
	ComparisonTolerance float64 `yaml:"comparison_tolerance" mapstructure:"comparison_tolerance"`
	UniverseTotal       int     `yaml:"universe_total" mapstructure:"universe_total"`
}

// SuggestConfig configures the suggestion classifier rollups.
type SuggestConfig struct {
	TopKeywords int `yaml:"top_keywords" mapstructure:"top_keywords"`
	TopThemes   int `yaml:"top_themes" mapstructure:"top_themes"`
	MaxExamples int `yaml:"max_examples" mapstructure:"max_examples"`
}

// ServerConfig configures the read-only query server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MEDICION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.survey_path", "datos.csv")
	v.SetDefault("data.roster_path", "ejecutivos.csv")
	v.SetDefault("data.survey_delimiter", ";")
	v.SetDefault("data.roster_delimiter", ";")
	v.SetDefault("stats.comparison_tolerance", 0.1)
	v.SetDefault("stats.universe_total", 24067)
	v.SetDefault("suggest.top_keywords", 5)
	v.SetDefault("suggest.top_themes", 3)
	v.SetDefault("suggest.max_examples", 3)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

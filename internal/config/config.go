// Package config loads settings from an optional config.yaml, MAMCHOI_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Log     LogConfig
	DB      DBConfig
	History HistoryConfig
	Round   RoundConfig
	Server  ServerConfig
}

// LogConfig selects the log level and the encoder.
type LogConfig struct {
	Level string
	// Env is "production" for JSON output, anything else for console.
	Env string
}

type DBConfig struct {
	// Path is the SQLite file; empty means the default data directory.
	Path string
}

type HistoryConfig struct {
	MaxRecentIcons int
	MaxSessions    int
}

type RoundConfig struct {
	AttemptsPerSlot int
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")
	v.SetDefault("db.path", "")
	v.SetDefault("history.max_recent_icons", 300)
	v.SetDefault("history.max_sessions", 3)
	v.SetDefault("round.attempts_per_slot", 20)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
}

// Load reads file when it is set, otherwise looks for config.yaml in ./,
// ./config and $XDG_CONFIG_HOME/mamchoi. A missing search-path file is
// not an error; a missing explicit file is.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MAMCHOI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "mamchoi"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("log.level"),
			Env:   v.GetString("log.env"),
		},
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
		History: HistoryConfig{
			MaxRecentIcons: v.GetInt("history.max_recent_icons"),
			MaxSessions:    v.GetInt("history.max_sessions"),
		},
		Round: RoundConfig{
			AttemptsPerSlot: v.GetInt("round.attempts_per_slot"),
		},
		Server: ServerConfig{
			Addr:           v.GetString("server.addr"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.History.MaxRecentIcons <= 0:
		return fmt.Errorf("config: history.max_recent_icons must be positive, got %d", c.History.MaxRecentIcons)
	case c.History.MaxSessions <= 0:
		return fmt.Errorf("config: history.max_sessions must be positive, got %d", c.History.MaxSessions)
	case c.Round.AttemptsPerSlot <= 0:
		return fmt.Errorf("config: round.attempts_per_slot must be positive, got %d", c.Round.AttemptsPerSlot)
	}
	return nil
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

/*
Package config loads wordle-helper settings.

Precedence, lowest first:
 1. DefaultConfig()
 2. TOML file (the path given to Load, CONFIG_FILE, or wordle-helper.toml)
 3. environment, after .env files are loaded with godotenv

Environment variables:

	WORDS_FILE       candidate list (.txt or .bin); empty uses the embedded list
	HISTORY_DB       SQLite path for session history
	HISTORY_ENABLED  "false" keeps history in memory only
	MAX_ROUNDS       rounds per session
	RULES            general | pairwise
	OPENER           fixed first guess
	ALTERNATIVES     extra suggestions shown per round
	DAILY_SALT       salt for the daily secret
	LOG_LEVEL        zerolog level name
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/solver"
)

// Config holds every setting.
type Config struct {
	Words   WordsConfig   `toml:"words"`
	Session SessionConfig `toml:"session"`
	History HistoryConfig `toml:"history"`
	Daily   DailyConfig   `toml:"daily"`
	Log     LogConfig     `toml:"log"`
}

// WordsConfig selects the candidate list.
type WordsConfig struct {
	File string `toml:"file"`
}

// SessionConfig tunes solving sessions.
type SessionConfig struct {
	MaxRounds    int    `toml:"max_rounds"`
	Rules        string `toml:"rules"`
	Opener       string `toml:"opener"`
	Alternatives int    `toml:"alternatives"`
}

// HistoryConfig controls where finished sessions are recorded.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	DB      string `toml:"db"`
}

// DailyConfig holds the daily secret derivation salt.
type DailyConfig struct {
	Salt string `toml:"salt"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultFile is read when neither Load's path nor CONFIG_FILE names one.
const DefaultFile = "wordle-helper.toml"

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			MaxRounds:    6,
			Rules:        "general",
			Alternatives: 3,
		},
		History: HistoryConfig{
			Enabled: true,
			DB:      "data/history.db",
		},
		Daily: DailyConfig{Salt: "wordle-helper"},
		Log:   LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the TOML file at path and the
// environment. envFiles are loaded with godotenv first (default ".env");
// missing files are ignored and existing variables are never overridden.
// An empty path falls back to CONFIG_FILE, then DefaultFile; a missing file
// is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	str("WORDS_FILE", &cfg.Words.File)
	str("HISTORY_DB", &cfg.History.DB)
	str("RULES", &cfg.Session.Rules)
	str("OPENER", &cfg.Session.Opener)
	str("DAILY_SALT", &cfg.Daily.Salt)
	str("LOG_LEVEL", &cfg.Log.Level)

	for key, dst := range map[string]*int{
		"MAX_ROUNDS":   &cfg.Session.MaxRounds,
		"ALTERNATIVES": &cfg.Session.Alternatives,
	} {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}
	if v := os.Getenv("HISTORY_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HISTORY_ENABLED: %w", err)
		}
		cfg.History.Enabled = b
	}
	return nil
}

// Validate checks values that would otherwise fail later in a session.
func (c *Config) Validate() error {
	if c.Session.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", c.Session.MaxRounds)
	}
	if _, err := solver.ParseRules(c.Session.Rules); err != nil {
		return err
	}
	if c.Session.Opener != "" {
		w, err := solver.ParseWord(c.Session.Opener)
		if err != nil {
			return fmt.Errorf("opener: %w", err)
		}
		c.Session.Opener = string(w)
	}
	if c.Session.Alternatives < 0 {
		c.Session.Alternatives = 0
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	return nil
}

// Rules returns the parsed duplicate-letter rules.
func (c *Config) Rules() solver.Rules {
	r, _ := solver.ParseRules(c.Session.Rules)
	return r
}

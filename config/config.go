// Package config resolves runtime settings from defaults, a .env file, a TOML file and the environment
// The game rules themselves are fixed and live in constants
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DotEnvFile is the optional env file read from the working directory
const DotEnvFile = ".env"

// Environment overrides
const (
	EnvHighScore = "VISNAKE_HIGHSCORE"
	EnvLogDir    = "VISNAKE_LOG_DIR"
	EnvDebug     = "VISNAKE_DEBUG"
	EnvAudio     = "VISNAKE_AUDIO"
	EnvVolume    = "VISNAKE_VOLUME"
	EnvSeed      = "VISNAKE_SEED"
)

// Volume bounds, beep volume is an exponent of base 2
const (
	MinVolume = -10.0
	MaxVolume = 2.0
)

// Config holds peripheral settings: persistence, logging, audio and the random seed
type Config struct {
	HighScorePath string      `toml:"high_score_path"`
	LogDir        string      `toml:"log_dir"`
	Debug         bool        `toml:"debug"`
	Seed          uint64      `toml:"seed"` // 0 seeds from the clock
	Audio         AudioConfig `toml:"audio"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		HighScorePath: defaultHighScorePath(),
		LogDir:        "logs",
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

func defaultHighScorePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "highscore"
	}
	return filepath.Join(home, ".vi-snake", "highscore")
}

// Load resolves settings using DotEnvFile from the working directory
// path names an optional TOML file; empty skips it
func Load(path string) (*Config, error) {
	return LoadFiles(path, DotEnvFile)
}

// LoadFiles resolves settings in order: defaults, env file, TOML file, environment
// A missing env file is ignored, a missing TOML file named explicitly is an error
func LoadFiles(path, envFile string) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvHighScore); ok {
		c.HighScorePath = v
	}
	if v, ok := os.LookupEnv(EnvLogDir); ok {
		c.LogDir = v
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = f
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.HighScorePath == "" {
		return errors.New("high_score_path must not be empty")
	}
	if c.Audio.Volume < MinVolume || c.Audio.Volume > MaxVolume {
		return fmt.Errorf("audio volume %.2f outside [%.0f, %.0f]", c.Audio.Volume, MinVolume, MaxVolume)
	}
	return nil
}

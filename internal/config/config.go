// Package config provides configuration loading and saving for the
// mateline engine.
//
// Configuration lives at ~/.mateline/engine.toml in TOML format.
// Loading never fails outright: a missing or malformed file falls
// back to EngineDefaults, so callers never need to handle a config
// error except when explicitly saving.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds the tunable parameters of the search core.
type EngineConfig struct {
	// DefaultDepth is the iterative-deepening ceiling GetBestMove uses
	// when the caller does not specify one.
	DefaultDepth int
	// QuiescenceCap bounds how many plies quiescence search chases
	// noisy moves past the nominal depth.
	QuiescenceCap int
	// BigDelta is the quiescence delta-pruning margin, in centipawns.
	BigDelta int32
	// MateScore is the magnitude used to score a forced mate.
	MateScore int32
	// UseBook enables opening-book lookups before search.
	UseBook bool
}

// EngineDefaults returns the engine's built-in tuning values, matching
// the constants the search package falls back to when no config file
// is present.
func EngineDefaults() EngineConfig {
	return EngineConfig{
		DefaultDepth:  4,
		QuiescenceCap: 10,
		BigDelta:      900,
		MateScore:     99999,
		UseBook:       true,
	}
}

// engineConfigFile is the TOML-file shape of EngineConfig.
type engineConfigFile struct {
	Search searchConfig `toml:"search"`
}

type searchConfig struct {
	DefaultDepth  int   `toml:"default_depth"`
	QuiescenceCap int   `toml:"quiescence_cap"`
	BigDelta      int32 `toml:"big_delta"`
	MateScore     int32 `toml:"mate_score"`
	UseBook       bool  `toml:"use_book"`
}

func defaultEngineConfigFile() engineConfigFile {
	d := EngineDefaults()
	return engineConfigFile{
		Search: searchConfig{
			DefaultDepth:  d.DefaultDepth,
			QuiescenceCap: d.QuiescenceCap,
			BigDelta:      d.BigDelta,
			MateScore:     d.MateScore,
			UseBook:       d.UseBook,
		},
	}
}

func fileToEngineConfig(cf engineConfigFile) EngineConfig {
	return EngineConfig{
		DefaultDepth:  cf.Search.DefaultDepth,
		QuiescenceCap: cf.Search.QuiescenceCap,
		BigDelta:      cf.Search.BigDelta,
		MateScore:     cf.Search.MateScore,
		UseBook:       cf.Search.UseBook,
	}
}

func engineConfigToFile(c EngineConfig) engineConfigFile {
	return engineConfigFile{
		Search: searchConfig{
			DefaultDepth:  c.DefaultDepth,
			QuiescenceCap: c.QuiescenceCap,
			BigDelta:      c.BigDelta,
			MateScore:     c.MateScore,
			UseBook:       c.UseBook,
		},
	}
}

// LoadEngineConfig reads ~/.mateline/engine.toml. If the file doesn't
// exist or cannot be parsed, it returns EngineDefaults. This function
// never returns an error — it always returns a usable configuration.
func LoadEngineConfig() EngineConfig {
	configPath, err := getConfigFilePath()
	if err != nil {
		return EngineDefaults()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return EngineDefaults()
	}

	var cf engineConfigFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return EngineDefaults()
	}

	return fileToEngineConfig(cf)
}

// SaveEngineConfig writes config to ~/.mateline/engine.toml, creating
// the directory if needed.
func SaveEngineConfig(cfg EngineConfig) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(engineConfigToFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

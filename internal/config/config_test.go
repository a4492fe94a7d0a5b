package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFakeHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadEngineConfigFallsBackToDefaultsWhenMissing(t *testing.T) {
	withFakeHome(t)

	cfg := LoadEngineConfig()
	assert.Equal(t, EngineDefaults(), cfg)
}

func TestLoadEngineConfigFallsBackToDefaultsOnMalformedFile(t *testing.T) {
	home := withFakeHome(t)

	dir := filepath.Join(home, ".mateline")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "engine.toml"), []byte("not valid toml {{{"), 0644))

	cfg := LoadEngineConfig()
	assert.Equal(t, EngineDefaults(), cfg)
}

func TestSaveThenLoadEngineConfigRoundTrips(t *testing.T) {
	withFakeHome(t)

	want := EngineConfig{
		DefaultDepth:  6,
		QuiescenceCap: 8,
		BigDelta:      700,
		MateScore:     99999,
		UseBook:       false,
	}

	require.NoError(t, SaveEngineConfig(want))

	got := LoadEngineConfig()
	assert.Equal(t, want, got)
}

func TestGetConfigDirUnderHome(t *testing.T) {
	home := withFakeHome(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".mateline"), dir)
}

func TestGetConfigPathIsEngineTomlUnderConfigDir(t *testing.T) {
	home := withFakeHome(t)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".mateline", "engine.toml"), path)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "./data", cfg.StoragePath)
	require.Equal(t, "channels.json", cfg.ChannelsFile)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, AppEnvProduction, cfg.AppEnv)
	require.False(t, cfg.SortChannels)
	require.Equal(t, filepath.Join("data", "channels.json"), cfg.ChannelsPath())
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
storage_path: /var/lib/wizard
http_port: "9090"
sort_channels: true
app_env: development
log_level: debug
`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/wizard", cfg.StoragePath)
	require.Equal(t, "9090", cfg.HTTPPort)
	require.True(t, cfg.SortChannels)
	require.Equal(t, AppEnvDevelopment, cfg.AppEnv)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, "/var/lib/wizard/channels.json", cfg.ChannelsPath())
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`channels_file = "saved.json"`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "saved.json", cfg.ChannelsFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"http_port": "9090", "app_env": "local"}`), 0644))
	t.Setenv("WIZARD_HTTP_PORT", "7070")
	t.Setenv("WIZARD_APP_ENV", "bogus")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.HTTPPort)
	require.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestChannelsPath_Absolute(t *testing.T) {
	cfg := &Config{StoragePath: "./data", ChannelsFile: "/tmp/channels.json"}
	require.Equal(t, "/tmp/channels.json", cfg.ChannelsPath())
}

func TestSlogLevel_Unknown(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

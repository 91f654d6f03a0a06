package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MUDDAT_DATA", "")
	t.Setenv("MUDDAT_DATA_DIR", "")
	t.Setenv("MUDDAT_SENDER", "")
}

func TestResolveMissingConfigFile(t *testing.T) {
	clearEnv(t)

	cfg, err := ResolveConfig(ResolveOptions{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	require.NoError(t, err)
	require.Empty(t, cfg.DataDir.Value)
	require.Empty(t, cfg.Sender.Value)
}

func TestResolveFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/muddat\nsender: Ali\n"), 0o600))

	cfg, err := ResolveConfig(ResolveOptions{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, "/srv/muddat", cfg.DataDir.Value)
	require.Equal(t, SourceConfig, cfg.DataDir.Source)
	require.Equal(t, path, cfg.DataDir.From)
	require.Equal(t, "Ali", cfg.Sender.Value)
}

func TestResolveEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MUDDAT_SENDER", "Sara")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sender: Ali\n"), 0o600))

	cfg, err := ResolveConfig(ResolveOptions{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, "Sara", cfg.Sender.Value)
	require.Equal(t, SourceEnv, cfg.Sender.Source)
	require.Equal(t, "MUDDAT_SENDER", cfg.Sender.From)
}

func TestResolveCLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MUDDAT_SENDER", "Sara")

	cfg, err := ResolveConfig(ResolveOptions{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
		CLISender:  "Zara",
	})
	require.NoError(t, err)
	require.Equal(t, "Zara", cfg.Sender.Value)
	require.Equal(t, SourceCLI, cfg.Sender.Source)
	require.Equal(t, "--sender", cfg.Sender.From)
}

func TestResolveExpandsUserPath(t *testing.T) {
	clearEnv(t)

	cfg, err := ResolveConfig(ResolveOptions{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
		CLIDataDir: "~/muddat-data",
	})
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "muddat-data"), cfg.DataDir.Value)
}

func TestResolveMalformedYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed\n"), 0o600))

	_, err := ResolveConfig(ResolveOptions{ConfigPath: path})
	require.Error(t, err)
}

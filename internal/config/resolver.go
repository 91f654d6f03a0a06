// Package config resolves runtime settings from a YAML config file,
// environment variables, and CLI flags, recording where each value came
// from. Precedence is CLI over env over file over default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

// ResolvedValue is a setting plus the provenance of its value.
type ResolvedValue struct {
	Value  string      `json:"value"`
	Source ValueSource `json:"source"`
	From   string      `json:"from,omitempty"`
}

type ResolveOptions struct {
	ConfigPath string
	CLIDataDir string
	CLISender  string
}

type ResolvedConfig struct {
	ConfigPath string `json:"config_path"`

	// DataDir is where the feedback store keeps its database. Empty means
	// feedback stays in memory only.
	DataDir ResolvedValue `json:"data_dir"`

	// Sender is the default sender name attached to messages that arrive
	// without one.
	Sender ResolvedValue `json:"sender"`
}

type fileConfig struct {
	DataDir string `yaml:"data_dir"`
	Sender  string `yaml:"sender"`
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".muddat", "config.yaml")
}

// DefaultDataDir is where feedback persistence lands when a data dir is
// requested but not configured.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".muddat")
}

func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}

	out := ResolvedConfig{ConfigPath: path}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}
	if cfg != nil {
		apply(&out.DataDir, cfg.DataDir, SourceConfig, path)
		apply(&out.Sender, cfg.Sender, SourceConfig, path)
	}

	applyEnv(&out.DataDir, "MUDDAT_DATA")
	applyEnv(&out.DataDir, "MUDDAT_DATA_DIR")
	applyEnv(&out.Sender, "MUDDAT_SENDER")

	apply(&out.DataDir, opts.CLIDataDir, SourceCLI, "--data")
	apply(&out.Sender, opts.CLISender, SourceCLI, "--sender")

	if out.DataDir.Value != "" {
		out.DataDir.Value = expandUserPath(out.DataDir.Value)
	}

	return out, nil
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func expandUserPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

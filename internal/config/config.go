package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const appName = "xdg-terminal-exec"

// LogLevelEnv overrides the configured log level when set.
const LogLevelEnv = "XDG_TERMINAL_EXEC_LOG"

type Lists struct {
	SkipComments bool `yaml:"skip_comments" toml:"skip_comments"`
}

type Config struct {
	Shell          string `yaml:"shell" toml:"shell"`
	DefaultExecArg string `yaml:"default_exec_arg" toml:"default_exec_arg"`
	LogLevel       string `yaml:"log_level" toml:"log_level"`

	Lists Lists `yaml:"lists" toml:"lists"`
}

func Default() Config {
	return Config{
		Shell:          "sh",
		DefaultExecArg: "-e",
		LogLevel:       "warn",
	}
}

// configPaths returns the candidate config files in lookup order.
func configPaths() ([]string, error) {
	xdg.Reload()
	if xdg.ConfigHome == "" {
		return nil, errors.New("no user config directory")
	}
	dir := filepath.Join(xdg.ConfigHome, appName)
	return []string{
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.toml"),
	}, nil
}

// Load reads the first config file found and overlays it onto Default.
// A missing file is not an error.
func Load() (Config, string, error) {
	cfg := Default()
	paths, err := configPaths()
	if err != nil {
		return applyEnv(cfg), "", err
	}
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return applyEnv(cfg), path, err
		}
		return applyEnv(loaded), path, nil
	}
	return applyEnv(cfg), "", nil
}

// LoadFile decodes a single config file, picking the format by extension.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var user Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &user)
	case ".toml":
		err = toml.Unmarshal(data, &user)
	default:
		return cfg, errors.New("unsupported config format: " + path)
	}
	if err != nil {
		return cfg, err
	}
	return merge(cfg, user), nil
}

func merge(cfg, user Config) Config {
	out := cfg
	if user.Shell != "" {
		out.Shell = user.Shell
	}
	if user.DefaultExecArg != "" {
		out.DefaultExecArg = user.DefaultExecArg
	}
	if user.LogLevel != "" {
		out.LogLevel = user.LogLevel
	}
	if user.Lists.SkipComments {
		out.Lists.SkipComments = true
	}
	return out
}

func applyEnv(cfg Config) Config {
	if lvl := strings.TrimSpace(os.Getenv(LogLevelEnv)); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg
}

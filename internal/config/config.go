package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	jfs "github.com/andyballingall/semver-stamp/internal/fs"
)

// ConfigFile is the optional per-repository configuration file.
const ConfigFile = "semver-stamp.yml"

const (
	GitEnvVar     = "SEMVER_STAMP_GIT"
	LogFileEnvVar = "SEMVER_STAMP_LOG_FILE"
	RepoEnvVar    = "SEMVER_STAMP_REPO"
)

const defaultGit = "git"

type Config struct {
	Git     string `yaml:"git"`
	LogFile string `yaml:"logFile"`
}

// Default returns the configuration used when no file or overrides are present.
func Default() *Config {
	return &Config{Git: defaultGit}
}

// Load reads ConfigFile from repoDir, if present, and applies environment overrides.
// A missing file is not an error.
func Load(repoDir string, env jfs.EnvProvider) (*Config, error) {
	cfg := Default()

	path := filepath.Join(repoDir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, &ReadError{Path: path, Wrapped: err}
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, &InvalidYAMLError{Path: path, Wrapped: err}
		}
	}

	if env != nil {
		if v := env.Get(GitEnvVar); v != "" {
			cfg.Git = v
		}
		if v := env.Get(LogFileEnvVar); v != "" {
			cfg.LogFile = v
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(repoDir, cfg.LogFile)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Git == "" {
		return &MissingPropertyError{Property: "git"}
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrPasswordMissing is returned when the secrets file has no usable password field.
var ErrPasswordMissing = errors.New("secrets: password field missing or empty")

// Secrets is the mapping of named secrets parsed from the secrets file.
type Secrets map[string]string

// Password returns the privileged-operation password from the secrets mapping.
func (s Secrets) Password() (string, error) {
	pw := strings.TrimSpace(s["password"])
	if pw == "" {
		return "", ErrPasswordMissing
	}
	return pw, nil
}

// LoadSecrets reads and parses the secrets file at path. Every call re-reads
// the file; nothing is cached, so edits take effect on the next task run.
func LoadSecrets(path string) (Secrets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("secrets file not found: %s", path)
		}
		return nil, fmt.Errorf("read secrets file: %w", err)
	}

	var sec Secrets
	if err := yaml.Unmarshal(data, &sec); err != nil {
		return nil, fmt.Errorf("parse secrets file: %w", err)
	}
	return sec, nil
}

// UpdaterSettings holds the package-update task configuration.
type UpdaterSettings struct {
	RepoURL     string
	CloneDir    string
	WorkDir     string
	SecretsPath string

	BuildCommand   []string
	InstallCommand []string

	StepTimeout time.Duration
}

type fileSettings struct {
	Updater struct {
		RepoURL     string `yaml:"repo_url"`
		WorkDir     string `yaml:"work_dir"`
		SecretsPath string `yaml:"secrets_path"`
		StepTimeout string `yaml:"step_timeout"`
	} `yaml:"updater"`
}

// LoadUpdaterSettings reads devtasks.yaml from the working directory when
// present and applies defaults for everything unset. DEVTASKS_SECRETS
// overrides the secrets path. The clone directory name is derived from the
// repository URL, matching what git clone creates.
func LoadUpdaterSettings() (*UpdaterSettings, error) {
	var fs fileSettings
	data, err := os.ReadFile("devtasks.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}

	cfg := &UpdaterSettings{}

	cfg.RepoURL = strings.TrimSpace(fs.Updater.RepoURL)
	if cfg.RepoURL == "" {
		cfg.RepoURL = "https://aur.archlinux.org/visual-studio-code-insiders-bin.git"
	}
	cfg.CloneDir = cloneDirFromURL(cfg.RepoURL)
	if cfg.CloneDir == "" {
		return nil, fmt.Errorf("updater.repo_url has no usable repository name: %q", cfg.RepoURL)
	}

	cfg.WorkDir = strings.TrimSpace(fs.Updater.WorkDir)
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}

	cfg.SecretsPath = strings.TrimSpace(os.Getenv("DEVTASKS_SECRETS"))
	if cfg.SecretsPath == "" {
		cfg.SecretsPath = strings.TrimSpace(fs.Updater.SecretsPath)
	}
	if cfg.SecretsPath == "" {
		cfg.SecretsPath = "secrets.yaml"
	}

	cfg.BuildCommand = []string{"makepkg", "-si"}
	cfg.InstallCommand = []string{"pacman", "-U"}

	cfg.StepTimeout = parseDuration(fs.Updater.StepTimeout, 10*time.Minute)

	return cfg, nil
}

// cloneDirFromURL returns the directory git clone would create for url.
func cloneDirFromURL(url string) string {
	base := filepath.Base(strings.TrimSuffix(strings.TrimSpace(url), "/"))
	base = strings.TrimSuffix(base, ".git")
	if base == "." || base == "/" || base == "" {
		return ""
	}
	return base
}

// parseDuration parses a duration string and returns defaultVal if parsing
// fails or the result is <= 0.
func parseDuration(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

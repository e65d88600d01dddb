package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lerenn/cherrybomb/configs"
	"github.com/lerenn/cherrybomb/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Environment variables overriding the configuration file.
const (
	EnvTracker     = "CHERRYBOMB_TRACKER"
	EnvBaseURL     = "JIRA_BASE_URL"
	EnvEmail       = "JIRA_EMAIL"
	EnvAPIToken    = "JIRA_API_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvCategoryID  = "CHERRYBOMB_CATEGORY_ID"
	EnvSentryDSN   = "SENTRY_DSN"
)

// DotEnvFile is the environment file read from the working directory.
const DotEnvFile = ".env"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// LoadConfig merges defaults, the config file and the environment without validating the result.
	LoadConfig() (Config, error)
	// GetConfig loads the configuration and validates it.
	GetConfig() (Config, error)
	// SaveConfig writes the configuration file. An existing file is only replaced when force is set.
	SaveConfig(cfg Config, force bool) error
	ConfigExists() (bool, error)
	GetConfigPath() string
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
	dotEnvPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
		dotEnvPath: DotEnvFile,
	}
}

// DefaultConfigPath returns ~/.cherrybomb/config.yaml.
func DefaultConfigPath(fsys fs.FS) (string, error) {
	homeDir, err := fsys.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cherrybomb", "config.yaml"), nil
}

// LoadConfig loads configuration from the embedded config path and the environment.
func (m *realManager) LoadConfig() (Config, error) {
	cfg := m.DefaultConfig()

	data, err := m.fs.ReadFile(m.configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
		}
	case m.fs.IsNotExist(err):
		// Defaults and environment only.
	default:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := m.loadDotEnv(); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	cfg.Tracker = strings.ToLower(strings.TrimSpace(cfg.Tracker))
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if cfg.LogFile != "" {
		if cfg.LogFile, err = m.fs.ExpandPath(cfg.LogFile); err != nil {
			return Config{}, fmt.Errorf("failed to expand log file path: %w", err)
		}
	}

	return cfg, nil
}

// GetConfig loads and validates the configuration.
func (m *realManager) GetConfig() (Config, error) {
	cfg, err := m.LoadConfig()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to the embedded config path.
func (m *realManager) SaveConfig(cfg Config, force bool) error {
	exists, err := m.ConfigExists()
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, m.configPath)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// The file may hold a token.
	if err := m.fs.WriteFileAtomic(m.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// ConfigExists reports whether the config file is present.
func (m *realManager) ConfigExists() (bool, error) {
	exists, err := m.fs.Exists(m.configPath)
	if err != nil {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}
	return exists, nil
}

// GetConfigPath returns the embedded config path.
func (m *realManager) GetConfigPath() string {
	return m.configPath
}

// DefaultConfig returns the configuration described by the embedded default file.
func (m *realManager) DefaultConfig() Config {
	return DefaultConfig()
}

// DefaultConfig returns the configuration described by the embedded default file.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return cfg
}

// loadDotEnv exports the variables of the .env file that are not already set.
func (m *realManager) loadDotEnv() error {
	exists, err := m.fs.Exists(m.dotEnvPath)
	if err != nil || !exists {
		return nil //nolint:nilerr // a missing or unreadable .env is not an error
	}

	if err := godotenv.Load(m.dotEnvPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", m.dotEnvPath, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Tracker, EnvTracker)
	setFromEnv(&cfg.BaseURL, EnvBaseURL)
	setFromEnv(&cfg.Email, EnvEmail)
	setFromEnv(&cfg.CategoryID, EnvCategoryID)
	setFromEnv(&cfg.SentryDSN, EnvSentryDSN)

	if strings.EqualFold(strings.TrimSpace(cfg.Tracker), TrackerGitHub) {
		setFromEnv(&cfg.APIToken, EnvGitHubToken)
	} else {
		setFromEnv(&cfg.APIToken, EnvAPIToken)
	}
}

func setFromEnv(field *string, name string) {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		*field = value
	}
}

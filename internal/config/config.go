package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the syntaxpresso configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the syntaxpresso configuration directory
const ConfigDirName = ".syntaxpresso"

// Config holds all syntaxpresso configuration
type Config struct {
	Scan      ScanConfig      `yaml:"scan"`
	Generator GeneratorConfig `yaml:"generator"`
}

// ScanConfig holds configuration for source-tree scanning
type ScanConfig struct {
	// Exclude lists directory names skipped during scans.
	Exclude []string `yaml:"exclude"`
	// Workers bounds the parse pool; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// DisableCache turns off the on-disk classification cache.
	DisableCache bool `yaml:"disable_cache"`
}

// GeneratorConfig holds defaults for code generation
type GeneratorConfig struct {
	SequenceAllocationSize int    `yaml:"sequence_allocation_size"`
	SequenceInitialValue   int64  `yaml:"sequence_initial_value"`
	RepositoryPackage      string `yaml:"repository_package"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .syntaxpresso/config.yaml, falling back to
// defaults. It searches for the config directory starting from workDir
// and walking up the directory tree. If no config is found, returns
// defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .syntaxpresso directory by walking up from
// startDir. Returns the path to the directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .syntaxpresso directory if it doesn't
// exist. Returns the path to the directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("%w: scan workers must be non-negative, got %d",
			ErrInvalidConfig, cfg.Scan.Workers)
	}

	if cfg.Generator.SequenceAllocationSize <= 0 {
		return fmt.Errorf("%w: sequence_allocation_size must be positive, got %d",
			ErrInvalidConfig, cfg.Generator.SequenceAllocationSize)
	}

	if cfg.Generator.SequenceInitialValue <= 0 {
		return fmt.Errorf("%w: sequence_initial_value must be positive, got %d",
			ErrInvalidConfig, cfg.Generator.SequenceInitialValue)
	}

	return nil
}

// SaveDefault writes the default configuration to
// .syntaxpresso/config.yaml in workDir. Creates the config directory
// if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# syntaxpresso configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}

package config

import "github.com/syntaxpresso/core/internal/jpa"

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Exclude: []string{
				"target",
				"build",
				"out",
				"bin",
				"node_modules",
			},
			Workers: 0,
		},
		Generator: GeneratorConfig{
			SequenceAllocationSize: jpa.DefaultAllocationSize,
			SequenceInitialValue:   jpa.DefaultInitialValue,
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}
	result.Scan = mergeScanConfig(loaded.Scan, defaults.Scan)
	result.Generator = mergeGeneratorConfig(loaded.Generator, defaults.Generator)
	return result
}

func mergeScanConfig(loaded, defaults ScanConfig) ScanConfig {
	result := ScanConfig{}

	// Use loaded exclude patterns if provided, otherwise defaults
	if len(loaded.Exclude) > 0 {
		result.Exclude = loaded.Exclude
	} else {
		result.Exclude = defaults.Exclude
	}

	// Workers: use loaded if non-zero
	if loaded.Workers != 0 {
		result.Workers = loaded.Workers
	} else {
		result.Workers = defaults.Workers
	}

	// The zero value means the cache stays on, so a plain copy works
	// for the boolean.
	result.DisableCache = loaded.DisableCache || defaults.DisableCache

	return result
}

func mergeGeneratorConfig(loaded, defaults GeneratorConfig) GeneratorConfig {
	result := GeneratorConfig{}

	if loaded.SequenceAllocationSize != 0 {
		result.SequenceAllocationSize = loaded.SequenceAllocationSize
	} else {
		result.SequenceAllocationSize = defaults.SequenceAllocationSize
	}

	if loaded.SequenceInitialValue != 0 {
		result.SequenceInitialValue = loaded.SequenceInitialValue
	} else {
		result.SequenceInitialValue = defaults.SequenceInitialValue
	}

	if loaded.RepositoryPackage != "" {
		result.RepositoryPackage = loaded.RepositoryPackage
	} else {
		result.RepositoryPackage = defaults.RepositoryPackage
	}

	return result
}

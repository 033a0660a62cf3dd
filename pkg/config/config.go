package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BackendOptions locates the accounting backend and the company context
// every journal call is scoped to.
type BackendOptions struct {
	BaseURL   string `yaml:"baseUrl"`
	CompanyID string `yaml:"companyId"`
	User      string `yaml:"user"`
}

// SuggestionOptions tunes when presented account suggestions are considered
// stale.
type SuggestionOptions struct {
	DescriptionDelta  int     `yaml:"descriptionDelta"`
	AmountChangeRatio float64 `yaml:"amountChangeRatio"`
}

// Config holds the application configuration
type Config struct {
	Backend       BackendOptions    `yaml:"backend"`
	Suggestions   SuggestionOptions `yaml:"suggestions"`
	AmountCeiling string            `yaml:"amountCeiling"`
}

var (
	// Global configuration instance
	globalConfig *Config
	// Mutex to ensure thread-safe access to the global configuration
	configMutex sync.RWMutex
	// Flag to track if the configuration has been loaded
	configLoaded bool
)

func defaultConfig() *Config {
	return &Config{
		Backend: BackendOptions{
			BaseURL: "http://localhost:3000/api",
		},
		Suggestions: SuggestionOptions{
			DescriptionDelta:  5,
			AmountChangeRatio: 0.10,
		},
		AmountCeiling: "1000000",
	}
}

// LoadConfig loads the configuration from the specified YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// InitGlobalConfig initializes the global configuration from the specified file
func InitGlobalConfig(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = config
	configLoaded = true
	return nil
}

// GetConfig returns the global configuration instance
// If the configuration hasn't been loaded yet, it attempts to load it from
// the default location (./config.yaml), creating a default file when missing.
func GetConfig() (*Config, error) {
	configMutex.RLock()
	if configLoaded {
		defer configMutex.RUnlock()
		return globalConfig, nil
	}
	configMutex.RUnlock()

	configPath := "config.yaml"
	if err := InitGlobalConfig(configPath); err != nil {
		if os.IsNotExist(err) {
			dir := filepath.Dir(configPath)
			if dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, fmt.Errorf("error creating config directory: %w", err)
				}
			}

			config := defaultConfig()
			data, err := yaml.Marshal(config)
			if err != nil {
				return nil, fmt.Errorf("error creating default config: %w", err)
			}
			if err := os.WriteFile(configPath, data, 0644); err != nil {
				return nil, fmt.Errorf("error writing default config: %w", err)
			}

			configMutex.Lock()
			globalConfig = config
			configLoaded = true
			configMutex.Unlock()

			return config, nil
		}
		return nil, err
	}

	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig, nil
}

// GetBackendOptions returns the backend connection options, requiring the
// company ID to be configured.
func GetBackendOptions() (BackendOptions, error) {
	config, err := GetConfig()
	if err != nil {
		return BackendOptions{}, err
	}

	opts := config.Backend
	if opts.BaseURL == "" {
		return BackendOptions{}, fmt.Errorf("error: backend base URL not set in configuration")
	}
	if opts.CompanyID == "" {
		return BackendOptions{}, fmt.Errorf("error: company ID not set in configuration")
	}
	return opts, nil
}

// GetSuggestionOptions returns the suggestion staleness thresholds, falling
// back to defaults for unset values.
func GetSuggestionOptions() (SuggestionOptions, error) {
	config, err := GetConfig()
	if err != nil {
		return SuggestionOptions{}, err
	}

	opts := config.Suggestions
	defaults := defaultConfig().Suggestions
	if opts.DescriptionDelta <= 0 {
		opts.DescriptionDelta = defaults.DescriptionDelta
	}
	if opts.AmountChangeRatio <= 0 {
		opts.AmountChangeRatio = defaults.AmountChangeRatio
	}
	return opts, nil
}

// GetAmountCeiling returns the sanity limit for AI-path amounts.
func GetAmountCeiling() (decimal.Decimal, error) {
	config, err := GetConfig()
	if err != nil {
		return decimal.Decimal{}, err
	}

	raw := config.AmountCeiling
	if raw == "" {
		raw = defaultConfig().AmountCeiling
	}
	ceiling, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing amount ceiling %q: %w", raw, err)
	}
	return ceiling, nil
}

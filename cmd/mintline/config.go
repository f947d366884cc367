// Config loading for the mintline CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir    = "data_dir"
	cfgKeyAdmin      = "admin"
	cfgKeyCollection = "collection"
	cfgKeyListingFee = "listing_fee"
	cfgKeyLogLevel   = "log_level"

	// Defaults.
	defaultAdmin      = "admin"
	defaultCollection = "mintline"
	defaultListingFee = "0.025"
	defaultLogLevel   = "info"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Mintline CLI configuration

# Marketplace administrator (may change the listing fee and withdraw fees)
admin: admin

# Token collection name
collection: mintline

# Listing fee charged on item creation
listing_fee: "0.025"

# Log level (info or debug)
log_level: info

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// cliConfig is the parsed view of config.yaml plus defaults.
type cliConfig struct {
	DataDir    string
	Admin      string
	Collection string
	ListingFee decimal.Decimal
	LogLevel   string
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (cliConfig, error) {
	var cfg cliConfig

	if err := ensureConfigDir(configDir); err != nil {
		return cfg, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cfg, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyAdmin, defaultAdmin)
	v.SetDefault(cfgKeyCollection, defaultCollection)
	v.SetDefault(cfgKeyListingFee, defaultListingFee)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	fee, err := decimal.NewFromString(v.GetString(cfgKeyListingFee))
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", cfgKeyListingFee, err)
	}

	cfg = cliConfig{
		DataDir:    v.GetString(cfgKeyDataDir),
		Admin:      v.GetString(cfgKeyAdmin),
		Collection: v.GetString(cfgKeyCollection),
		ListingFee: fee,
		LogLevel:   v.GetString(cfgKeyLogLevel),
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("MINTLINE_CONFIG_DIR"); v != "" {
		return v
	}
	return ".mintline"
}

// resolveDataDir returns the data directory from flag, config, or default.
func resolveDataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if loadedConfig.DataDir != "" {
		return loadedConfig.DataDir
	}
	return ".mintline-db"
}

// Package conf loads dataset builder configuration with Viper.
//
// Precedence (lowest to highest): built-in defaults, an optional
// internacia.toml found by walking up from the working directory, then
// INTERNACIA_* environment variables.
package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/internacia/dataset/errors"
)

// Config holds the dataset builder configuration.
type Config struct {
	// DataDir is the root of the document corpus (contains countries/,
	// intblocks/ and datasets/blocktypes.yaml).
	DataDir string `mapstructure:"data_dir"`

	// OutputDir is where dataset artifacts are written.
	OutputDir string `mapstructure:"output_dir"`

	// Formats is the default comma-separated format list for builds.
	Formats string `mapstructure:"formats"`
}

// CountriesDir returns the countries corpus directory.
func (c *Config) CountriesDir() string {
	return filepath.Join(c.DataDir, "countries")
}

// IntblocksDir returns the intblocks corpus directory.
func (c *Config) IntblocksDir() string {
	return filepath.Join(c.DataDir, "intblocks")
}

// BlocktypesFile returns the blocktypes auxiliary file path.
func (c *Config) BlocktypesFile() string {
	return filepath.Join(c.DataDir, "datasets", "blocktypes.yaml")
}

// SetDefaults registers default configuration values on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("output_dir", filepath.Join("data", "datasets"))
	v.SetDefault("formats", "jsonl,yaml,parquet,duckdb")
}

// Load reads configuration from defaults, an optional project config file,
// and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("INTERNACIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// findProjectConfig searches for internacia.toml by walking up the
// directory tree. Returns the first match, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "internacia.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

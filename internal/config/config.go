package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersionInfo returns a formatted version string
func GetVersionInfo() string {
	return fmt.Sprintf("gurtarctl version %s, commit %s, built at %s", version, commit, date)
}

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig describes how to reach the Gurtar backend.
type APIConfig struct {
	BaseURL string            `mapstructure:"base_url"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Headers map[string]string `mapstructure:"headers"`
}

// StorageConfig controls where session credentials are persisted.
// An empty path disables persistence; the client then behaves as if
// no credentials were ever stored.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level             string `mapstructure:"level"`
	Format            string `mapstructure:"format"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
	OutputPath        string `mapstructure:"output_path"`
	AppendToFile      bool   `mapstructure:"append_to_file"`
	DisableConsole    bool   `mapstructure:"disable_console"`
}

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

type OutputConfig struct {
	Format OutputFormat `mapstructure:"format"`
}

// InitFlags initializes command line flags (without parsing)
func InitFlags() {
	pflag.String("api-url", "", "Base URL of the Gurtar API")
	pflag.String("output", string(OutputTable), "Output format (table|json|yaml)")
	// Note: no pflag.Parse() here as it's called in main.go
}

// DefaultStoragePath returns the per-user credentials file location.
// Returns "" when no user config directory can be resolved, which
// disables persistence rather than failing.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gurtarctl", "credentials.json")
}

func Load() (*Config, error) {
	viper.Reset() // Ensure clean state

	viper.SetEnvPrefix("GURTAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	viper.SetDefault("api.base_url", "http://localhost:3000/api/v1")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("storage.path", DefaultStoragePath())
	viper.SetDefault("output.format", string(OutputTable))

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "gurtarctl"))
	}

	// A missing config file is fine; defaults, env and flags cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if u := viper.GetString("api-url"); u != "" {
		config.API.BaseURL = u
	}
	if out := viper.GetString("output"); out != "" {
		switch OutputFormat(out) {
		case OutputTable, OutputJSON, OutputYAML:
			config.Output.Format = OutputFormat(out)
		default:
			return nil, fmt.Errorf("unsupported output format: %s", out)
		}
	}

	if config.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url is required, please adjust the config or pass --api-url or GURTAR_API_BASE_URL environment variable")
	}

	return &config, nil
}

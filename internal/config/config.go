package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"samplegen/internal/dataset"
)

// Config represents the complete generator configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ExportConfig contains dataset export configuration
type ExportConfig struct {
	// Formats is a comma-separated list (csv,json,xlsx); empty means
	// each dataset's default format
	Formats string `yaml:"formats" envconfig:"FORMATS"`
	// Indent is the space count per nesting level for document output
	Indent int `yaml:"indent" envconfig:"INDENT"`
	// ExcelSheet names the sheet of generated workbooks
	ExcelSheet string `yaml:"excel_sheet" envconfig:"EXCEL_SHEET"`
	// Manifest controls whether a run manifest is written
	Manifest bool `yaml:"manifest" envconfig:"MANIFEST"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Default returns the configuration used when no file or environment
// overrides are present
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/samplegen.log",
		},
		Export: ExportConfig{
			Formats:    "",
			Indent:     2,
			ExcelSheet: "Data",
			Manifest:   true,
		},
		Paths: PathsConfig{
			OutputDir: "data/datasets",
			LogsDir:   "logs",
		},
	}
}

// Load loads configuration with the precedence: environment variables
// over config file over defaults. The config file location comes from
// SAMPLEGEN_CONFIG, falling back to samplegen.yml in the working
// directory; a missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	configFile := os.Getenv("SAMPLEGEN_CONFIG")
	if configFile == "" {
		configFile = "samplegen.yml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables override file and defaults. No default tags
	// on the struct, so envconfig only touches fields with a set variable.
	if err := envconfig.Process("SAMPLEGEN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks configuration values
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "file", "both":
	default:
		return fmt.Errorf("invalid logging output %q (want stdout, file or both)", c.Logging.Output)
	}

	if c.Export.Indent < 0 {
		return fmt.Errorf("export indent must be non-negative, got %d", c.Export.Indent)
	}

	if _, err := c.ExportFormats(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	return nil
}

// ExportFormats parses the configured format list. An empty list means
// each dataset keeps its default format.
func (c *Config) ExportFormats() ([]dataset.Format, error) {
	raw := strings.TrimSpace(c.Export.Formats)
	if raw == "" {
		return nil, nil
	}

	var formats []dataset.Format
	for _, part := range strings.Split(raw, ",") {
		format, err := dataset.ParseFormat(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

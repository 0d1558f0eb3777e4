// FILE: config.go
package ringlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Placement
	Directory string `toml:"directory"` // Directory holding the single log file
	FileName  string `toml:"file_name"` // Fixed file name, never changes after construction
	Tag       string `toml:"tag"`       // Tag handed to platform forwarders

	// Retention
	CapacityKB    int64 `toml:"capacity_kb"`      // In-memory ring capacity (KiB)
	MaxFileSizeKB int64 `toml:"max_file_size_kb"` // On-disk cap triggering compaction, 0=append-only

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Time format for log timestamps

	// Console mirroring
	EnableConsole bool   `toml:"enable_console"` // Mirror each line to a console stream
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Directory:       "./logs",
	FileName:        DefaultFileName,
	Tag:             "",
	CapacityKB:      DefaultCapacity / sizeMultiplier,
	MaxFileSizeKB:   0,
	TimestampFormat: DefaultTimestampFormat,
	EnableConsole:   false,
	ConsoleTarget:   "stdout",
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("ringlog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "ringlog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	// String validations
	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty")
	}

	if strings.TrimSpace(c.FileName) == "" {
		return fmtErrorf("file_name cannot be empty")
	}

	if strings.ContainsAny(c.FileName, `/\`) {
		return fmtErrorf("file_name must not contain path separators: %s", c.FileName)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	// Numeric validations
	if c.CapacityKB <= 0 {
		return fmtErrorf("capacity_kb must be positive: %d", c.CapacityKB)
	}

	if c.MaxFileSizeKB < 0 {
		return fmtErrorf("max_file_size_kb cannot be negative: %d", c.MaxFileSizeKB)
	}

	// Cross-field validations
	// A file cap below the ring capacity would re-trigger compaction on
	// every append once the ring fills.
	if c.MaxFileSizeKB > 0 && c.MaxFileSizeKB < c.CapacityKB {
		return fmtErrorf("max_file_size_kb (%d) cannot be smaller than capacity_kb (%d)",
			c.MaxFileSizeKB, c.CapacityKB)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// capacityBytes converts the KiB knob to the ring capacity in bytes.
func (c *Config) capacityBytes() int {
	return int(c.CapacityKB * sizeMultiplier)
}

// maxFileBytes converts the KiB knob to the on-disk cap in bytes.
func (c *Config) maxFileBytes() int64 {
	return c.MaxFileSizeKB * sizeMultiplier
}

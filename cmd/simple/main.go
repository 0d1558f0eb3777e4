package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/ringlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[ringlog]
  directory = "./simple_logs"
  file_name = "app.log"
  capacity_kb = 64
  enable_console = true
  console_target = "stdout"
`

func main() {
	fmt.Println("--- Simple ringlog Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	// Load and validate the configuration
	cfg, err := ringlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the process-wide logger
	if err := ringlog.InitWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer ringlog.Shutdown()
	fmt.Println("Logger initialized.")

	_ = ringlog.Debug("This is a debug message.", "user_id", 123)
	_ = ringlog.Info("Application starting...")
	_ = ringlog.Warn("Potential issue detected.", "threshold", 0.95)
	_ = ringlog.Error("An error occurred!", "code", 500)

	// Read back the retained window
	content, err := ringlog.ReadLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read logs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Retained %d bytes:\n%s", ringlog.CurrentSize(), content)
}

package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/ringlog"
	"github.com/lixenwraith/ringlog/compat"
	"github.com/rs/zerolog"
)

// Demonstrates routing a zerolog front end into the bounded core: zerolog
// renders the structured event, the core retains the last 10 MiB of lines
// and mirrors them to the single backing file.
func main() {
	core, err := ringlog.NewBuilder().
		Directory("./zerolog_logs").
		CapacityMB(10).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer core.Close()

	logger := zerolog.New(compat.NewZerologWriter(core)).With().Timestamp().Logger()

	logger.Info().Str("component", "startup").Msg("service online")
	logger.Warn().Int("queue_depth", 42).Msg("backlog growing")
	logger.Error().Str("op", "dial").Msg("upstream unreachable")

	content, err := core.ReadLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read logs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Retained window:\n%s", content)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/ringlog"
)

func main() {
	writers := flag.Int("writers", 8, "concurrent writer goroutines")
	messages := flag.Int("messages", 10000, "messages per writer")
	capacityKB := flag.Int64("capacity-kb", 256, "ring capacity in KiB")
	dir := flag.String("dir", "./stress_logs", "log directory")
	flag.Parse()

	logger, err := ringlog.NewBuilder().
		Directory(*dir).
		CapacityKB(*capacityKB).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < *writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < *messages; i++ {
				_ = logger.Info("writer", id, "seq", i, "payload", strings.Repeat("x", 64))
			}
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)
	total := *writers * *messages

	content, err := logger.ReadLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read logs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d lines in %v (%.0f lines/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("Ring retains %d bytes (%d lines), file holds %d bytes\n",
		logger.CurrentSize(), strings.Count(content, "\n"), logger.FileSize())
}

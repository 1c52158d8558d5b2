// Package config loads runtime settings from the environment, with an
// optional .env file picked up from the working directory.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

// Config holds the settings shared by the server and the report tool.
type Config struct {
	// DataDir is the root of the sample mask collection. Empty means
	// dataset operations need an explicit path.
	DataDir string

	// OutputDir is where generated charts are written.
	OutputDir string

	// Threshold is the gray level at which mask pixels become
	// foreground.
	Threshold uint8

	// Workers bounds the number of concurrent scoring goroutines.
	Workers int
}

// Load reads configuration from the environment. A missing variable
// falls back to its default; a malformed numeric value is an error.
//
// Variables: SHAPE_MCP_DATA_DIR, SHAPE_MCP_OUTPUT_DIR,
// SHAPE_MCP_THRESHOLD (0-255, default 128), SHAPE_MCP_WORKERS
// (default: number of CPUs).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:   os.Getenv("SHAPE_MCP_DATA_DIR"),
		OutputDir: ".",
		Threshold: imaging.DefaultThreshold,
		Workers:   runtime.NumCPU(),
	}

	if v := os.Getenv("SHAPE_MCP_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SHAPE_MCP_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("invalid SHAPE_MCP_THRESHOLD %q: must be an integer in 0-255", v)
		}
		cfg.Threshold = uint8(n)
	}
	if v := os.Getenv("SHAPE_MCP_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SHAPE_MCP_WORKERS %q: must be a positive integer", v)
		}
		cfg.Workers = n
	}

	return cfg, nil
}

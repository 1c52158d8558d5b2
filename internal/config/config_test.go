package config

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SHAPE_MCP_DATA_DIR", "")
	t.Setenv("SHAPE_MCP_OUTPUT_DIR", "")
	t.Setenv("SHAPE_MCP_THRESHOLD", "")
	t.Setenv("SHAPE_MCP_WORKERS", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "" {
		t.Errorf("DataDir: got %q, want empty", cfg.DataDir)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir: got %q, want \".\"", cfg.OutputDir)
	}
	if cfg.Threshold != imaging.DefaultThreshold {
		t.Errorf("Threshold: got %d, want %d", cfg.Threshold, imaging.DefaultThreshold)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers: got %d, want %d", cfg.Workers, runtime.NumCPU())
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHAPE_MCP_DATA_DIR", "/data/shapes")
	t.Setenv("SHAPE_MCP_OUTPUT_DIR", "/tmp/charts")
	t.Setenv("SHAPE_MCP_THRESHOLD", "200")
	t.Setenv("SHAPE_MCP_WORKERS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/data/shapes" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.OutputDir != "/tmp/charts" {
		t.Errorf("OutputDir: got %q", cfg.OutputDir)
	}
	if cfg.Threshold != 200 {
		t.Errorf("Threshold: got %d, want 200", cfg.Threshold)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers: got %d, want 3", cfg.Workers)
	}
}

func TestLoad_ThresholdBounds(t *testing.T) {
	for _, value := range []string{"0", "255"} {
		clearEnv(t)
		t.Setenv("SHAPE_MCP_THRESHOLD", value)

		cfg, err := Load()
		if err != nil {
			t.Errorf("threshold %s rejected: %v", value, err)
			continue
		}
		want, _ := strconv.Atoi(value)
		if got := int(cfg.Threshold); got != want {
			t.Errorf("threshold %s: got %d, want %d", value, got, want)
		}
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	for _, value := range []string{"abc", "-1", "256", "300", "12.5"} {
		clearEnv(t)
		t.Setenv("SHAPE_MCP_THRESHOLD", value)

		if _, err := Load(); err == nil {
			t.Errorf("threshold %q accepted, want error", value)
		}
	}
}

func TestLoad_InvalidWorkers(t *testing.T) {
	for _, value := range []string{"0", "-2", "many", "1.5"} {
		clearEnv(t)
		t.Setenv("SHAPE_MCP_WORKERS", value)

		if _, err := Load(); err == nil {
			t.Errorf("workers %q accepted, want error", value)
		}
	}
}

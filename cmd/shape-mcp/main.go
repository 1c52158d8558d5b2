package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/shape-metrics-mcp/internal/config"
	"github.com/ironsheep/shape-metrics-mcp/internal/logger"
	"github.com/ironsheep/shape-metrics-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("shape-metrics-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("shape-metrics-mcp - MCP server for shape rectangularity analysis")
			fmt.Println()
			fmt.Println("Usage: shape-metrics-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SHAPE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  SHAPE_MCP_DATA_DIR=<dir>     Default dataset directory")
			fmt.Println("  SHAPE_MCP_OUTPUT_DIR=<dir>   Default chart output directory")
			fmt.Println("  SHAPE_MCP_THRESHOLD=<0-255>  Mask binarization threshold")
			fmt.Println("  SHAPE_MCP_WORKERS=<n>        Concurrent scoring workers")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}

	logger.Debug(fmt.Sprintf("shape-metrics-mcp v%s (built %s, commit %s)", Version, BuildTime, GitCommit))

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		logger.WithError(err).Error("server error")
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/shape-metrics-mcp/internal/config"
	"github.com/ironsheep/shape-metrics-mcp/internal/dataset"
	"github.com/ironsheep/shape-metrics-mcp/internal/descriptor"
	"github.com/ironsheep/shape-metrics-mcp/internal/logger"
	"github.com/ironsheep/shape-metrics-mcp/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}

	var (
		dataDir   = flag.String("data", cfg.DataDir, "dataset directory of masks named <kind>-<index>.<ext>")
		kind      = flag.String("kind", "bottle", "sample kind to score")
		methodStr = flag.String("methods", "", "comma-separated method codes (default: all methods)")
		outDir    = flag.String("out", cfg.OutputDir, "directory for chart files")
		workers   = flag.Int("workers", cfg.Workers, "concurrent scoring workers")
		threshold = flag.Int("threshold", int(cfg.Threshold), "mask binarization threshold (0-255)")
		list      = flag.Bool("list", false, "list the kinds in the dataset and exit")
	)
	flag.Parse()

	if *dataDir == "" {
		fmt.Fprintln(os.Stderr, "no dataset directory: pass -data or set SHAPE_MCP_DATA_DIR")
		os.Exit(2)
	}
	if *threshold < 0 || *threshold > 255 {
		fmt.Fprintln(os.Stderr, "threshold must be in 0-255")
		os.Exit(2)
	}

	loader := dataset.NewLoader(*dataDir, uint8(*threshold))

	if *list {
		kinds, err := loader.Kinds()
		if err != nil {
			logger.WithError(err).Error("failed to list kinds")
			os.Exit(1)
		}
		for _, k := range kinds {
			fmt.Println(k)
		}
		return
	}

	methods, err := parseMethods(*methodStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	samples, err := loader.LoadKind(*kind)
	if err != nil {
		logger.WithError(err).Error("failed to load samples")
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"kind":    *kind,
		"samples": len(samples),
	}).Info("scoring dataset")

	runner := report.Runner{Workers: *workers, Methods: methods}
	scores := runner.Run(samples)

	tableMethods := methods
	if len(tableMethods) == 0 {
		tableMethods = descriptor.Methods()
	}
	nameW := len("sample")
	for _, s := range samples {
		if len(s.Name) > nameW {
			nameW = len(s.Name)
		}
	}
	fmt.Printf("%-*s", nameW, "sample")
	for _, m := range tableMethods {
		fmt.Printf("  %6s", m.Code())
	}
	fmt.Println()
	// Runner lays scores out sample-major, so each row is a
	// contiguous slice of one sample's methods.
	for i := range samples {
		row := scores[i*len(tableMethods) : (i+1)*len(tableMethods)]
		fmt.Printf("%-*s", nameW, row[0].Sample)
		for _, sc := range row {
			if sc.Err != "" {
				fmt.Printf("  %6s", "-")
			} else {
				fmt.Printf("  %6.3f", sc.Value)
			}
		}
		fmt.Println()
	}
	fmt.Println()

	for _, s := range report.Summarize(scores) {
		fmt.Printf("%-4s n=%-3d mean=%.3f stddev=%.3f min=%.3f max=%.3f", s.Method, s.Count, s.Mean, s.StdDev, s.Min, s.Max)
		if s.Failed > 0 {
			fmt.Printf("  failed=%d", s.Failed)
		}
		fmt.Println()
	}

	charts, err := report.WriteCharts(*outDir, *kind, methods, scores)
	if err != nil {
		logger.WithError(err).Error("failed to write charts")
		os.Exit(1)
	}
	for _, path := range charts {
		fmt.Println("wrote", path)
	}
}

// parseMethods resolves a comma-separated method code list; empty
// means all methods.
func parseMethods(s string) ([]descriptor.Method, error) {
	if s == "" {
		return nil, nil
	}
	var methods []descriptor.Method
	for _, code := range strings.Split(s, ",") {
		m, err := descriptor.ParseMethod(strings.TrimSpace(code))
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

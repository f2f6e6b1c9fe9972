// Command pryce reads a JSON-encoded DAE structural-analysis instance,
// runs Pryce's Σ-method (optionally over a compression of sub-components),
// and prints the resulting AnalysisResult as JSON to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pryce-method/daestruct/compress"
	"github.com/pryce-method/daestruct/internal/flagset"
	"github.com/pryce-method/daestruct/pryce"
)

const usage = `Usage: %s -instance instance.json

%s reads in a Σ-matrix instance JSON file, runs Pryce's method and prints
the resulting assignment and canonical offsets to standard out.

Arguments:
`

func main() {
	fs := flagset.New(usage)
	filename := fs.String("instance", "", "instance filename (JSON)")
	logLevel := fs.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	fs.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "please supply the instance file name via -instance")
		os.Exit(1)
	}

	ins, err := readInstance(*filename)
	if err != nil {
		slog.Error("failed to read instance", "error", err)
		os.Exit(1)
	}

	problem, err := ins.toProblem()
	if err != nil {
		slog.Error("failed to build problem", "error", err)
		os.Exit(1)
	}

	if ins.Compression == nil {
		result, err := pryce.Analyse(problem)
		if err != nil {
			slog.Error("analysis failed", "error", err)
			os.Exit(1)
		}
		printResult(result, 1.0)
		return
	}

	c, err := ins.Compression.toCompression(problem.Sigma)
	if err != nil {
		slog.Error("failed to build compression", "error", err)
		os.Exit(1)
	}

	result, err := compress.AnalyseCompressed(problem, c)
	if err != nil {
		slog.Error("compressed analysis failed", "error", err)
		os.Exit(1)
	}
	printResult(result.AnalysisResult, result.CompressionRatio)
}

func printResult(result *pryce.AnalysisResult, ratio float64) {
	out := struct {
		RowAssignment    []int   `json:"rowAssignment"`
		ColAssignment    []int   `json:"colAssignment"`
		C                []int   `json:"c"`
		D                []int   `json:"d"`
		CompressionRatio float64 `json:"compressionRatio"`
	}{result.RowAssignment, result.ColAssignment, result.C, result.D, ratio}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}

func readInstance(filename string) (*jsonInstance, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var ins jsonInstance
	if err := json.Unmarshal(b, &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "Debug":
		return slog.LevelDebug
	case "Info":
		return slog.LevelInfo
	case "Warn":
		return slog.LevelWarn
	case "Error":
		return slog.LevelError
	}
	slog.Warn("unknown log level, defaulting to Info", "level", level)
	return slog.LevelInfo
}

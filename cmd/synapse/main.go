// Package main provides the synapse training CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/synapse-ml/synapse/internal/config"
	"github.com/synapse-ml/synapse/internal/dataset"
	"github.com/synapse-ml/synapse/internal/models"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/solver"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "synapse: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "synapse %s\n", version)
		return nil
	case "info":
		info(stdout)
		return nil
	case "train":
		return train(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "synapse - gradient-based training engine")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  info       Show host CPU capabilities")
	fmt.Fprintln(w, "  train      Train a model on a CSV file")
}

func info(w io.Writer) {
	fmt.Fprintf(w, "go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "cpu:      %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(w, "cores:    %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "avx2:     %t\n", cpuid.CPU.Supports(cpuid.AVX2))
	fmt.Fprintf(w, "avx512:   %t\n", cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ))
	fmt.Fprintf(w, "features: %s\n", strings.Join(cpuid.CPU.FeatureSet(), ","))
}

func train(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to YAML config")
	data := fs.String("data", "", "Override CSV data path")
	target := fs.String("target", "", "Override target column (default: last)")
	features := fs.String("features", "", "Comma-separated feature columns (default: all but the target)")
	epochs := fs.Int("epochs", 0, "Number of epochs")
	batchSize := fs.Int("batch-size", 0, "Batch size (0 = full training set)")
	earlyStop := fs.Int("early-stop", 0, "Early-stopping patience in epochs")
	lr := fs.Float64("lr", 0, "Learning rate")
	optimizer := fs.String("optimizer", "", "Optimizer: sgd, momentum or adam")
	seed := fs.Uint64("seed", 0, "PRNG seed (0 = random)")
	logEvery := fs.Int("log-every", 0, "Log every N epochs")
	verbose := fs.Bool("v", false, "Log every batch")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		Data:         *data,
		Target:       *target,
		Features:     splitList(*features),
		Epochs:       *epochs,
		BatchSize:    *batchSize,
		EarlyStop:    *earlyStop,
		LearningRate: *lr,
		Optimizer:    *optimizer,
		Seed:         *seed,
		LogEvery:     *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	table, err := dataset.LoadCSV(cfg.Data)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Data, err)
	}
	x, y, err := table.XY(cfg.Target, cfg.Features)
	if err != nil {
		return err
	}
	split, err := dataset.TrainTestSplit(x, y, cfg.TestRatio, random.FromSeed(cfg.Seed))
	if err != nil {
		return err
	}

	raw := split.RawInput()
	if err := cfg.RawInput(raw); err != nil {
		return err
	}
	in, err := raw.ToInternal()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	s, err := solver.New(models.Init, in, solver.Config{Logger: logger, LogEvery: cfg.LogEvery})
	if err != nil {
		return err
	}
	history, err := s.Train()
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	model, ok := s.Model().(*models.LinearRegression)
	if !ok {
		return errors.New("unexpected model type")
	}
	testLoss, err := model.Test(in)
	if err != nil {
		return err
	}

	names, err := table.FeatureNames(cfg.Target, cfg.Features)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "run:       %s\n", history.RunID)
	fmt.Fprintf(stdout, "epochs:    %d (stopped early: %t)\n", len(history.Epochs), history.StoppedEarly)
	for i, w := range model.Weights().Data() {
		fmt.Fprintf(stdout, "weight:    %s = %.6f\n", names[i], w)
	}
	fmt.Fprintf(stdout, "bias:      %.6f\n", model.Bias())
	fmt.Fprintf(stdout, "test loss: %.6g\n", testLoss)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

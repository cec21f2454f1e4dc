package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/workload"
	"golang.org/x/exp/slog"
)

var (
	// Global flags
	size         int
	actions      int
	maxRequest   int
	seed         int64
	scenarioName string
	checkMode    bool
	verbose      bool
	jsonOut      bool
)

var rootCmd = &cobra.Command{
	Use:   "fitsim",
	Short: "Compare free-list allocation strategies on synthetic workloads",
	Long: `fitsim simulates first-fit, next-fit, best-fit and worst-fit allocation over an
abstract space of units, in lazy and eager coalescing variants, and reports how much
bookkeeping each strategy needed and how fragmented it left the space.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&size, "size", "s", 10240, "Size of the managed space in units")
	rootCmd.PersistentFlags().IntVarP(&actions, "actions", "a", 10000, "Number of alloc/free actions")
	rootCmd.PersistentFlags().IntVar(&maxRequest, "max-request", 0, "Largest request size (default size/16)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for the workload generator (default: current time)")
	rootCmd.PersistentFlags().StringVar(&scenarioName, "scenario", "random", "Workload scenario: random or browser")
	rootCmd.PersistentFlags().BoolVarP(&checkMode, "check", "c", false, "Check every free for overlap with free space (expensive)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every action")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func workloadConfig() (workload.Config, error) {
	scenario, err := workload.ParseScenario(scenarioName)
	if err != nil {
		return workload.Config{}, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return workload.Config{
		Scenario:   scenario,
		Actions:    actions,
		Seed:       seed,
		MaxRequest: maxRequest,
	}, nil
}

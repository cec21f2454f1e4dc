package main

import (
	"fmt"
	"os"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/memutils/fit"
	"github.com/vkngwrapper/fitsim/workload"
	"golang.org/x/exp/slog"
)

var runEager bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runEager, "eager", false, "Use the eager coalescing variant when a strategy is named")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <strategy>",
		Short: "Run a workload against one strategy",
		Long: `The run command drives a single strategy with a synthetic workload and prints
its report.

Example:
  fitsim run b
  fitsim run bestfit --eager -s 4096 -a 50000
  fitsim run N --scenario browser --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVariant(args[0], runEager)
			if err != nil {
				return err
			}

			config, err := workloadConfig()
			if err != nil {
				return err
			}

			result, err := runVariant(cmd, newLogger(), v, config)
			if err != nil {
				return err
			}

			return printResults([]workload.Result{result})
		},
	}
	return cmd
}

func runVariant(cmd *cobra.Command, logger *slog.Logger, v variant, config workload.Config) (workload.Result, error) {
	allocator, err := fit.New(logger, v.kind, fit.Options{Eager: v.eager, CheckMode: checkMode})
	if err != nil {
		return workload.Result{}, err
	}
	allocator.Configure(size)

	driver, err := workload.New(logger.With(slog.String("strategy", allocator.Name())), allocator, config)
	if err != nil {
		return workload.Result{}, err
	}

	return driver.Run(cmd.Context())
}

func printResults(results []workload.Result) error {
	if jsonOut {
		w := jwriter.NewWriter()
		arr := w.Array()
		for _, result := range results {
			obj := arr.Object()
			result.WriteJSON(obj)
			obj.End()
		}
		arr.End()

		if err := w.Error(); err != nil {
			return err
		}

		_, err := fmt.Fprintln(os.Stdout, string(w.Bytes()))
		return err
	}

	for _, result := range results {
		fmt.Fprintln(os.Stdout, result.Report)
		fmt.Fprintf(os.Stdout, "    %d actions: %d allocations, %d frees, %d out of memory in %s\n",
			result.Actions, result.Allocations, result.Frees, result.OutOfMemory, result.Elapsed)
		fmt.Fprintf(os.Stdout, "    final: %d/%d units allocated, %d free regions, largest %d, fragmentation %.3f\n",
			result.Final.AllocationUnits, result.Final.TotalUnits, result.Final.UnusedRangeCount,
			result.Final.UnusedRangeSizeMax, result.Final.Fragmentation())
	}

	return nil
}

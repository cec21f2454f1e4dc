package main

import (
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/workload"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(newCompareCmd())
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same workload against every strategy",
		Long: `The compare command runs every strategy in both coalescing variants, each in its
own goroutine with its own allocator, using the same seed so that all of them see
the same request stream until their outcomes diverge.

Example:
  fitsim compare -s 4096 -a 100000
  fitsim compare --scenario browser --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := workloadConfig()
			if err != nil {
				return err
			}

			logger := newLogger()
			variants := allVariants()
			results := make([]workload.Result, len(variants))

			group, ctx := errgroup.WithContext(cmd.Context())
			cmd.SetContext(ctx)
			for i, v := range variants {
				i, v := i, v
				group.Go(func() error {
					result, err := runVariant(cmd, logger, v, config)
					results[i] = result
					return err
				})
			}

			if err := group.Wait(); err != nil {
				return err
			}

			return printResults(results)
		},
	}
	return cmd
}

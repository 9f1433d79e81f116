// Package main provides the limbplan binary: it plans an IK/FK limb rig from
// a YAML limb description and emits the creation plan as JSON or YAML for a
// scene adapter to execute.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rigkit/tendon"
	"github.com/rigkit/tendon/specfile"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "limbplan",
		Short:         "Plan IK/FK limb rigs from limb spec files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(planCmd())
	return root
}

func planCmd() *cobra.Command {
	var (
		output      string
		minDistance float64
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "plan <limb.yaml>",
		Short: "Plan one limb and print its creation plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			spec, err := specfile.Load(args[0])
			if err != nil {
				return err
			}
			if minDistance > 0 {
				spec.PoleVectorDistance = minDistance
			}
			logger.Debug("loaded limb spec",
				slog.String("path", args[0]),
				slog.Int("joints", len(spec.Joints)),
				slog.String("side", spec.Side.String()))

			plan, err := tendon.Plan(spec)
			if err != nil {
				return err
			}
			logger.Debug("planned limb", slog.Int("entries", len(plan.Entries)))

			return writePlan(cmd.OutOrStdout(), plan, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	cmd.Flags().Float64Var(&minDistance, "min-distance", 0, "override the pole-vector minimum distance")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

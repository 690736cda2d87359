package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"polar/src/pointset"
)

type options struct {
	logLevel string
	format   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "polar",
		Short:         "Exact angular ordering of integer points",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", "input format (auto, yaml, tokens)")

	rootCmd.AddCommand(sortCmd(&opts))
	rootCmd.AddCommand(hullCmd(&opts))
	rootCmd.AddCommand(anglesCmd(&opts))
	rootCmd.AddCommand(mulCmd(&opts))
	return rootCmd
}

// setup builds the logger and loader shared by every subcommand.
func (o *options) setup(cmd *cobra.Command) (*logrus.Logger, *pointset.Loader, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	format, err := pointset.ParseFormat(o.format)
	if err != nil {
		return nil, nil, err
	}
	return logger, &pointset.Loader{Logger: logger, Format: format}, nil
}

func sortCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort the points of a point set by direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, loader, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return runSort(logger, loader, args[0], cmd.OutOrStdout())
		},
	}
}

func hullCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hull [file]",
		Short: "Print the convex hull of a point set, counter-clockwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, loader, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return runHull(logger, loader, args[0], cmd.OutOrStdout())
		},
	}
}

func anglesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "angles [file]",
		Short: "Sort the angles named by a point set from smallest to largest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, loader, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return runAngles(logger, loader, args[0], cmd.OutOrStdout())
		},
	}
}

func mulCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mul [a] [b]",
		Short: "Print the exact 128-bit product of two unsigned 64-bit integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return runMul(logger, args[0], args[1], cmd.OutOrStdout())
		},
	}
}

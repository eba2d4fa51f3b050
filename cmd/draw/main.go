package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/midbel/tabcharts/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:           "draw",
	Short:         "draw bar charts, scatter plots and heatmaps from csv files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		mode, _ := cmd.Flags().GetString("color")
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
		default:
			return fmt.Errorf("%s: invalid color mode (auto|on|off)", mode)
		}
		return nil
	},
}

func main() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file (default: built-in students charts)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print debug information")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (config.File, error) {
	file, _ := cmd.Flags().GetString("config")
	if file == "" {
		logger.Debug("no configuration file given, using defaults")
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	logger.WithField("file", file).Debug("loading configuration")
	return config.Load(file)
}

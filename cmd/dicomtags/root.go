package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"dicomtags/internal/config"
	"dicomtags/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "dicomtags [directory]",
		Short: "Export DICOM header attributes to CSV",
		Long: "Scan directory (default: the current directory) recursively and write one row per\n" +
			"DICOM file to original_DICOM_tags.csv inside it. Files that are not DICOM are skipped.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			cfg, configPath, configFound, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			if configFound {
				logging.NewComponentLogger(logger, "config").Info("loaded config file",
					slog.String(logging.FieldPath, configPath),
					slog.Int("progress_interval", cfg.Scan.ProgressInterval),
				)
			}

			summary, err := runScan(cmd.Context(), root, cfg, logger)
			if err != nil {
				return err
			}
			if isTerminal(os.Stdout) {
				fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	return rootCmd
}

func resolveRoot(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

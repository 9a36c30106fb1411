package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waprofiles/waprofiles/constants"
	"github.com/waprofiles/waprofiles/internal/batch"
	"github.com/waprofiles/waprofiles/internal/common"
	"github.com/waprofiles/waprofiles/internal/export"
	"github.com/waprofiles/waprofiles/internal/input"
	"github.com/waprofiles/waprofiles/internal/synth"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		formatFlag string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "waprofiles",
		Short:         "Synthesize deterministic WhatsApp-style profiles for a batch of phone numbers",
		Long:          "waprofiles derives realistic-looking profile records from a one-way hash of each phone number, without contacting any external service, and exports the batch as JSON, CSV, XML, HTML or XLSX.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(inputPath, outputPath, formatFlag, configPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "data/numbers.txt", "path to input file containing phone numbers, one per line")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "data/profiles.json", "path to output file")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", fmt.Sprintf("output format, one of: %s (overrides settings default_output_format)", strings.Join(constants.Formats(), ", ")))
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to settings file (JSON or YAML)")
	return cmd
}

func run(inputPath, outputPath, formatFlag, configPath string) error {
	cfg := common.LoadConfig(configPath, slog.Default())
	logger := common.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Format precedence: flag, then settings, then the json fallback
	// baked into the defaults. Gate it before anything else runs.
	formatName := cfg.DefaultOutputFormat
	if formatFlag != "" {
		formatName = formatFlag
	}
	format, ok := constants.ParseFormat(formatName)
	if !ok {
		err := fmt.Errorf("%w %q, supported formats: %s",
			common.ErrUnsupportedFormat, formatName, strings.Join(constants.Formats(), ", "))
		logger.Error("invalid output format", "err", err)
		return err
	}

	logger.Info("starting run",
		"input", inputPath,
		"output", outputPath,
		"format", string(format),
		"settings", configPath,
	)
	logger.Debug("rate limit configured (not enforced)", "per_minute", cfg.RateLimitPerMinute)

	numbers, err := input.ReadNumbers(inputPath)
	if err != nil {
		logger.Error("failed to read input file", "path", inputPath, "err", err)
		return err
	}
	logger.Info("loaded phone numbers", "count", len(numbers))

	builder := synth.NewBuilder(cfg.MediaBaseURL, logger)
	assembler := batch.NewAssembler(builder, logger)
	result := assembler.Assemble(numbers)
	if len(result.Profiles) == 0 {
		logger.Warn("no profiles generated from input numbers", "run_id", result.RunID)
	}

	svc := export.NewService(logger)
	if err := svc.Export(result.Profiles, outputPath, string(format)); err != nil {
		logger.Error("failed to export profiles", "err", err)
		return err
	}

	logger.Info("export completed successfully",
		"run_id", result.RunID,
		"profiles", len(result.Profiles),
		"skipped", len(result.Diagnostics),
		"finished_at", synth.NowISO(),
	)
	return nil
}

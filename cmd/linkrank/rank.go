package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/linkrank/internal/config"
	"github.com/nao1215/linkrank/internal/log"
	"github.com/nao1215/linkrank/internal/model"
	"github.com/nao1215/linkrank/internal/pipeline"
	"github.com/nao1215/linkrank/internal/report"
)

// addRankFlags registers the ranking flags on cmd.
func addRankFlags(cmd *cobra.Command) {
	// Ranking flags
	cmd.Flags().Float64P("damping", "d", config.DefaultDamping,
		"Probability of following a link instead of jumping to a random page")
	cmd.Flags().IntP("samples", "n", config.DefaultSamples,
		"Number of random surfer steps for the sampling estimate")
	cmd.Flags().Uint64P("seed", "s", 0,
		"Seed for the random surfer (0 picks a seed at run time)")
	cmd.Flags().Int("max-iterations", config.DefaultMaxIterations,
		"Maximum number of update rounds for the iterative estimate")
	cmd.Flags().Float64("tolerance", config.DefaultTolerance,
		"Per-page change below which the iterative estimate has converged")

	// Corpus flags
	cmd.Flags().StringP("extension", "e", config.DefaultExtension,
		"File name suffix of corpus pages")
	cmd.Flags().String("parser", config.DefaultParser,
		`Link extractor: "regexp" (double-quoted href only) or "html"`)

	// Logging
	cmd.Flags().String("log-format", config.DefaultLogFormat,
		`Log encoding on stderr: "text" or "json"`)

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .linkrank in current directory, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed); the text listing still goes to stdout")
}

// runRankCmd executes the ranking.
func runRankCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRank(ctx, cmd.OutOrStdout(), cfg, logger)
}

// newLogger creates the logger selected by cfg.LogFormat.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags. Flags set on the command line win over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("damping") {
		if cfg.Damping, err = flags.GetFloat64("damping"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("samples") {
		if cfg.Samples, err = flags.GetInt("samples"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-iterations") {
		if cfg.MaxIterations, err = flags.GetInt("max-iterations"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("tolerance") {
		if cfg.Tolerance, err = flags.GetFloat64("tolerance"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("extension") {
		if cfg.Extension, err = flags.GetString("extension"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("parser") {
		if cfg.Parser, err = flags.GetString("parser"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-format") {
		if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Corpus = args[0]

	return cfg, nil
}

// runRank executes the ranking pipeline and writes the report.
func runRank(ctx context.Context, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting ranking",
		"corpus", cfg.Corpus,
		"damping", cfg.Damping,
		"samples", cfg.Samples,
		"parser", cfg.Parser,
	)

	rankReport := model.NewRankReport(cfg.Corpus)
	p := pipeline.DefaultPipeline(cfg, logger)
	if err := p.Execute(ctx, rankReport); err != nil {
		return fmt.Errorf("ranking %s failed: %w", cfg.Corpus, err)
	}

	logger.Info("ranking completed",
		"corpus", cfg.Corpus,
		"iterations", rankReport.Iterations,
		"maxDeviation", rankReport.MaxDeviation,
		"elapsed", rankReport.Elapsed,
	)

	return outputReport(stdout, cfg, rankReport)
}

// outputReport outputs the rank report in the requested format.
// Without --output the report goes to stdout. With --output the requested
// format goes to the file and the text listing is still printed to stdout.
func outputReport(stdout io.Writer, cfg *config.Config, rankReport *model.RankReport) (err error) {
	if cfg.ReportFile == "" {
		_, err = formatWriter(stdout, cfg).Write(rankReport)
		return err
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer closeOutput(f, &err)

	writer := report.NewMultiWriter(
		formatWriter(f, cfg),
		report.NewSimpleWriter(stdout),
	)
	_, err = writer.Write(rankReport)
	return err
}

// closeOutput closes c and stores a close failure in *err unless an
// earlier error is already there.
func closeOutput(c io.Closer, err *error) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
}

// formatWriter returns the report writer for the format selected in cfg.
func formatWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/prompt508/prompt508/internal/advisor"
	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/extract"
	"github.com/prompt508/prompt508/internal/log"
	"github.com/prompt508/prompt508/internal/model"
	"github.com/prompt508/prompt508/internal/report"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]...",
		Short: "Score text files for Section 508 accessibility compliance",
		Long: `Analyze scores one or more text files against accessibility guidance.

Each file is measured for:
- Reading grade level (Flesch-Kincaid style)
- Jargon and unexplained acronym density
- Passive voice usage

The measurements combine into a compliance score from 0 to 100, with an
itemized list of every issue that cost points. With no file arguments,
analyze reads from standard input.

Examples:
  # Analyze a single file
  prompt508 analyze README.txt

  # Analyze several files concurrently
  prompt508 analyze docs/*.txt

  # Analyze text from a pipe
  echo "The system was configured." | prompt508 analyze

  # Extract and analyze the text of an HTML page
  prompt508 analyze --html page.html

  # Output JSON report
  prompt508 analyze --json README.txt

  # Use a custom configuration file
  prompt508 analyze -c myconfig.yaml README.txt

Configuration file (.prompt508) example:
  threshold: 75
  jargon:
    extraTerms:
      - "operationalize"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Scoring flags
	cmd.Flags().Float64P("threshold", "t", config.DefaultComplianceThreshold,
		"Minimum composite score required to pass")
	cmd.Flags().Float64P("target-grade", "g", config.DefaultTargetGradeLevel,
		"Reading grade level deductions start above")

	// Input flags
	cmd.Flags().Bool("html", false,
		"Treat inputs as HTML and extract readable text before scoring")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .prompt508 in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runAnalyze(ctx, cmd, cfg, logger)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
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

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the configuration file before applying flags so
	// that explicit flags win.
	// If the user explicitly specified a config file path, error if not
	// found. If no path specified, silently use defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("threshold") {
		cfg.ComplianceThreshold, err = cmd.Flags().GetFloat64("threshold")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("target-grade") {
		cfg.TargetGradeLevel, err = cmd.Flags().GetFloat64("target-grade")
		if err != nil {
			return nil, err
		}
	}

	cfg.HTMLInput, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are input files; empty means stdin
	cfg.Targets = args

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	texts, labels, err := readInputs(cmd.InOrStdin(), cfg)
	if err != nil {
		return err
	}

	logger.Info("starting analysis",
		"inputs", len(texts),
		"threshold", cfg.ComplianceThreshold,
		"batchSize", cfg.BatchSize,
	)

	output, closeFn, err := openReportOutput(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()
	writer := newReportWriter(output, cfg)

	a := advisor.New(cfg, advisor.WithLogger(logger))

	if len(texts) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalyze(ctx, cfg, a, writer, output, texts, labels, logger)
	}

	failed := false
	for i, text := range texts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		analysis := a.Analyze(text)
		if !analysis.PassesCompliance {
			failed = true
		}

		if len(labels) > 1 {
			fmt.Fprintf(output, "==> %s\n", labels[i])
		}
		if _, err := writer.WriteAnalysis(analysis); err != nil {
			return err
		}
	}

	if failed {
		return errors.New("one or more inputs failed accessibility compliance")
	}
	return nil
}

// runBatchAnalyze analyzes multiple inputs concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cfg *config.Config, a *advisor.Advisor, writer report.Writer, output io.Writer, texts, labels []string, logger *slog.Logger) error {
	startTime := time.Now()

	bp := advisor.NewBatchProcessor(a,
		advisor.WithConcurrency(cfg.BatchSize),
		advisor.WithBatchLogger(logger),
	)

	failed := false

	var mu sync.Mutex
	err := bp.AnalyzeBatchWithCallback(ctx, texts, func(analysis *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		if !analysis.PassesCompliance {
			failed = true
		}

		fmt.Fprintf(output, "==> [%d/%d] %s\n", index+1, len(texts), labels[index])
		if _, err := writer.WriteAnalysis(analysis); err != nil {
			logger.Error("report failed", "input", labels[index], "error", err)
		}
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	logger.Info("batch analysis completed", "elapsed", elapsed.Round(time.Millisecond))

	if failed {
		return errors.New("one or more inputs failed accessibility compliance")
	}
	return nil
}

// readInputs reads all input texts. File arguments are read from disk;
// without arguments, stdin is read to EOF. HTML inputs are reduced to their
// readable text first.
func readInputs(stdin io.Reader, cfg *config.Config) (texts, labels []string, err error) {
	if len(cfg.Targets) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text, err := prepareInput(string(data), cfg)
		if err != nil {
			return nil, nil, err
		}
		return []string{text}, []string{"(stdin)"}, nil
	}

	for _, target := range cfg.Targets {
		data, err := os.ReadFile(target) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", target, err)
		}
		text, err := prepareInput(string(data), cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to extract text from %s: %w", target, err)
		}
		texts = append(texts, text)
		labels = append(labels, target)
	}

	return texts, labels, nil
}

// prepareInput extracts readable text from HTML inputs and passes plain text
// through unchanged.
func prepareInput(raw string, cfg *config.Config) (string, error) {
	if cfg.HTMLInput || extract.IsHTML(raw) {
		return extract.TextFromString(raw)
	}
	return raw, nil
}

// newReportWriter picks the report writer for the configured format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// openReportOutput resolves the report destination. It returns the writer
// and a close function that is a no-op for stdout.
func openReportOutput(stdout io.Writer, cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

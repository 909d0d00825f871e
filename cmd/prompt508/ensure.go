package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prompt508/prompt508/internal/advisor"
	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/llm"
	"github.com/prompt508/prompt508/internal/log"
	"github.com/spf13/cobra"
)

// apiKeyEnvVar is the environment variable holding the OpenAI API key.
const apiKeyEnvVar = "OPENAI_API_KEY"

// NewEnsureCmd creates the ensure command.
func NewEnsureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure [prompt]",
		Short: "Generate accessibility-compliant text from a prompt",
		Long: `Ensure runs the two-stage compliance pipeline on a prompt.

Stage 1 augments the prompt with accessibility instructions and generates
text through the configured model. If the output already passes compliance,
the pipeline stops there.

Stage 2 runs only when the first output fails: the output and its specific
issues are folded into a repair prompt and the model rewrites it once. The
rewrite is rescored and returned either way, so callers always see the best
text the pipeline could produce along with its real score.

The OpenAI API key is read from the OPENAI_API_KEY environment variable.
A .env file in the current directory is loaded automatically if present.

Examples:
  # Generate compliant text from a prompt
  prompt508 ensure "Explain how photosynthesis works"

  # Read the prompt from stdin
  cat prompt.txt | prompt508 ensure

  # Use a different model
  prompt508 ensure --model gpt-4o "Describe the water cycle"

  # Output the full result as JSON
  prompt508 ensure --json "Explain DNS"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEnsureCmd,
	}

	// Generation flags
	cmd.Flags().String("model", "",
		"Generation model name (default from config, gpt-4o-mini otherwise)")
	cmd.Flags().String("base-url", "",
		"Override the API endpoint, for proxies and compatible providers")

	// Scoring flags
	cmd.Flags().Float64P("threshold", "t", config.DefaultComplianceThreshold,
		"Minimum composite score required to pass")
	cmd.Flags().Float64P("target-grade", "g", config.DefaultTargetGradeLevel,
		"Reading grade level deductions start above")

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

// runEnsureCmd executes the ensure command.
func runEnsureCmd(cmd *cobra.Command, args []string) error {
	// Load environment from .env if present. Absence is not an error; the
	// key may come from the real environment.
	_ = godotenv.Load()

	cfg, err := buildEnsureConfig(cmd, args)
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

	prompt, err := readPrompt(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	apiKey := os.Getenv(apiKeyEnvVar)
	baseURL, err := cmd.Flags().GetString("base-url")
	if err != nil {
		return err
	}

	gen, err := llm.NewOpenAIGenerator(llm.OpenAIConfig{
		Model:   cfg.Model,
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
	if err != nil {
		return err
	}

	a := advisor.New(cfg, advisor.WithLogger(logger), advisor.WithGenerator(gen))

	logger.Info("starting compliance pipeline",
		"model", cfg.Model,
		"threshold", cfg.ComplianceThreshold,
	)

	outcome, err := a.EnsureCompliance(ctx, prompt, gen)
	if err != nil {
		return err
	}

	output, closeFn, err := openReportOutput(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	analysis := a.Analyze(outcome.FinalOutput)
	writer := newReportWriter(output, cfg)
	if _, err := writer.WriteOutcome(&outcome, analysis); err != nil {
		return err
	}

	if !analysis.PassesCompliance {
		return errors.New("generated text failed accessibility compliance after repair")
	}
	return nil
}

// buildEnsureConfig creates a Config from the ensure command's flags.
func buildEnsureConfig(cmd *cobra.Command, _ []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

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

	model, err := cmd.Flags().GetString("model")
	if err != nil {
		return nil, err
	}
	if model != "" {
		cfg.Model = model
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

	return cfg, nil
}

// readPrompt returns the prompt from the positional argument or stdin.
func readPrompt(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		prompt := strings.TrimSpace(args[0])
		if prompt == "" {
			return "", errors.New("prompt is empty")
		}
		return prompt, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", errors.New("prompt is empty (pass it as an argument or via stdin)")
	}
	return prompt, nil
}

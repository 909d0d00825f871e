package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/prompt508.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".prompt508"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new prompt508 configuration file",
		Long: `Initialize creates a new .prompt508 configuration file in the current directory.

The generated file includes:
- Commented defaults for the compliance threshold and grade targets
- Examples for extending or replacing the jargon lexicon
- Model name and cost rate settings for the ensure command

Examples:
  # Create .prompt508 in current directory
  prompt508 init

  # Create config file at a specific path
  prompt508 init -o myconfig.yaml

  # Force overwrite existing file
  prompt508 init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/prompt508.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to tune settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Compliance threshold and grade targets")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Organization-specific jargon terms")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Generation model and cost rates")

	return nil
}

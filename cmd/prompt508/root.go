// Package main provides the entry point for the prompt508 CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for prompt508.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt508",
		Short: "Section 508 accessibility checker for prompts and generated text",
		Long: `prompt508 scores text against Section 508 accessibility guidance.

It measures reading grade level, jargon density, and passive voice, combines
them into a single compliance score, and explains every point lost.

The ensure command goes further: it augments a prompt with accessibility
instructions, generates text through an LLM, validates the result, and runs
one repair pass when the output fails compliance.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewEnsureCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

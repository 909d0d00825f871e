// Package main provides the entry point for the prompt508 CLI.
//
// prompt508 checks text against Section 508 accessibility guidance: reading
// grade level, jargon density, and passive voice. It can also drive an LLM
// pipeline that generates compliant text and repairs output that fails.
//
// Usage:
//
//	prompt508 analyze <file>...
//	prompt508 ensure "prompt text"
//
// See --help for all available options.
package main

// main is the entry point for prompt508.
func main() {
	Execute()
}

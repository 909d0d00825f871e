// Package log provides secure logging utilities built on log/slog.
//
// The pipeline handles two kinds of values that must never reach log output
// unfiltered: API credentials for the generation backend, and full prompt or
// generated text, which can be arbitrarily large and may contain user
// content. SecureHandler masks the former and truncates the latter before
// records reach the underlying handler.
package log

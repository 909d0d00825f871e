// Package report renders analysis reports and pipeline outcomes in three
// formats: a human-readable terminal layout, JSON for tool integration, and
// GitHub-flavored Markdown for documentation and sharing.
//
// Writers share a small interface so callers can swap destinations and
// formats, or fan out to several at once with MultiWriter.
package report

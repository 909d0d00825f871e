// Package extract converts HTML documents into plain text suitable for
// accessibility analysis. Web pages are a common input for compliance
// audits, and the scoring engine works on prose, so markup must be
// stripped without destroying sentence structure.
package extract

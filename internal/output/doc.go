// Package output formats detection reports for display or machine
// consumption.
//
// Four formats are supported:
//   - text: human-readable terminal output (default)
//   - json: full structured JSON report
//   - markdown: PR-comment-friendly with collapsible sections per category
//   - sarif: SARIF v2.1.0 for upload to code-scanning CI tools
//
// Use [GetWriter] to obtain a [Writer] for a format string, or [WriteReport]
// to handle destination selection (file path or stdout).
package output

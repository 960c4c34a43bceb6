// Slopcheck is a local-first CLI for detecting and cleaning slop (cliché
// phrases, buzzwords, meta-commentary, and boilerplate code patterns) in
// prose and source files.
//
// Usage:
//
//	slopcheck detect report.md             # score a document, grouped findings
//	slopcheck detect analysis.R --kind code
//	slopcheck clean draft.md               # print cleaned text
//	slopcheck clean draft.md --aggressive --write
//	slopcheck watch docs/                  # re-scan on every save
//	slopcheck rules                        # list the active catalog
//
// Detection never fails on content; the only runtime error is a missing
// input file. Exit code 1 signals a score at or above --fail-score, for CI
// gating.
package main

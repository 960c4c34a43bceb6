// Package detect scans documents against the slop rule catalog and produces
// scored reports.
//
// Analysis is a single in-memory pass per category: prose categories
// (high-risk phrases, buzzwords, meta-commentary, wordy constructions,
// transition words) run against every input, structural categories (generic
// identifiers, obvious comments, single-step chains) only against source
// code. Findings preserve first-to-last document order and carry line/column
// positions.
//
// The score is a weighted sum of severity times category weight, clamped to
// 100, with generic identifiers counted once per unique name. Scores below 20
// read "Low slop", 50 and above "High slop".
package detect

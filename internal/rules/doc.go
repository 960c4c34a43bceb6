// Package rules defines the slop rule catalog shared by the detector and the
// cleaner.
//
// A rule is a compiled regular expression tagged with a category, a severity
// weight, and an optional replacement template. Rules are grouped into a
// fixed category enumeration (high-risk phrases, buzzwords, meta-commentary,
// wordy constructions, aggressive-only transition words, and the structural
// code categories). The built-in catalog is immutable package data; new rules
// are additive table entries, not new control flow.
//
// Custom rules packs (pack.go) extend the catalog from a JSON file with extra
// patterns and per-category weight overrides.
package rules

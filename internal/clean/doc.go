// Package clean rewrites documents by applying the slop catalog's deletion
// and substitution rules in a fixed pass order: high-risk deletion, wordy
// simplification, buzzword substitution, meta-commentary deletion, and,
// in aggressive mode only, transition-word deletion.
//
// No grammar repair is attempted; the residual phrasing a deletion leaves
// behind is an accepted limitation, not something later passes try to fix.
package clean

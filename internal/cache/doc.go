// Package cache provides a file-based cache for detection reports.
//
// Entries are keyed by a SHA-256 hash of the document content, scan kind,
// rules pack path, and catalog version, so any input or rule change misses.
// Each entry stores the serialized report with a creation timestamp and TTL;
// expired entries are skipped on read.
//
// The cache is disabled by default and only used when enabled in config. The
// default directory is $XDG_CACHE_HOME/slopcheck (or the OS equivalent).
package cache

// Package config loads and merges slopcheck configuration from multiple
// sources via viper.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SLOPCHECK_FORMAT, SLOPCHECK_CACHE_ENABLED, etc.)
//  3. Config file ($XDG_CONFIG_HOME/slopcheck/config.yaml or ./config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to persist one, and
// [SetField] to update a single key for the `config set` command.
package config

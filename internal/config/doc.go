// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// The main entry point is [GetStructuredConfig], which collects all sources,
// merges them with earlier sources taking precedence, applies defaults for
// anything left unset, and validates the result.
package config

// Package config loads and validates the application configuration.
//
// Values are merged from three sources in priority order: environment
// variables, command-line flags, and an optional JSON file whose path is
// itself taken from the first two sources. A defaults layer fills whatever
// remains unset. The merged result is validated before use; startup fails
// fast on an invalid configuration.
package config

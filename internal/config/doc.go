// Package config loads application configuration from environment variables
// (prefix EDA) with an optional YAML file override, and resolves the output
// paths used by a report run.
package config

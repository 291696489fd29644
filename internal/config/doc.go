// Package config loads YAML run configuration for the synapse CLI.
package config

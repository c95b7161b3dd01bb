// Package config handles loading and validating application configuration.
package config

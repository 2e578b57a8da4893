// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings from YAML files and environment variables,
// validating them and making them accessible throughout the application.
package config

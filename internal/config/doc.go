// Package config provides configuration structures and utilities for linkrank.
// It defines the ranking parameters, corpus reading options and report
// output preferences, and loads overrides from a YAML configuration file.
package config

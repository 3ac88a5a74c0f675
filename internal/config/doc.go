// Package config provides configuration structures and utilities for vic-catparser.
// It defines the options for selecting records and rendering them, and loads
// optional per-user defaults from a YAML file.
package config

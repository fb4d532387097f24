// Package config loads and saves the saf settings file.
//
// Settings live in a small TOML file; a missing file yields defaults so
// the tools work without any setup:
//
//	settings, err := config.Load(config.DefaultPath())
package config

// Package config defines the application configuration model and loads it
// from environment variables and an optional config file. All settings can
// be provided through POTETO_-prefixed environment variables, which take
// precedence over file values. Loaded configuration is validated before use.
package config

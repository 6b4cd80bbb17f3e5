// Package logger configures the zap logger used by the raillock CLI.
// The algorithm packages stay log-free; only the front-end logs.
package logger

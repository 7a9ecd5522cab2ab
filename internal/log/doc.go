// Package log provides structured logging for linkrank, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Rewriting of absolute paths under the user's home directory to "~"
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Path Handling
//
// Corpus directories and configuration files are usually located under the
// user's home directory. The PathHandler rewrites those prefixes so that log
// output can be pasted into bug reports without exposing the local account
// name:
//
//	/home/alice/corpus0  ->  ~/corpus0
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Info("corpus built", "dir", "/home/alice/corpus0") // dir=~/corpus0
//	slog.SetDefault(logger)
package log

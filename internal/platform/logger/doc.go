// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Logs go to the writer handed to Setup (stderr for the
// command line tool) so they never mix with command output on stdout.
package logger

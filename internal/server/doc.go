// Package server runs the salon HTTP API.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server

// Package server runs the snapshot server's HTTP transport.
//
// It handles startup, signal handling, and graceful shutdown.
package server

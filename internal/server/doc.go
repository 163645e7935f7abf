// Package server wires and runs the stub API's transport server.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server

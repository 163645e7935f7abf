package server

// Server is the lifecycle of the stub API process.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then shuts down.
// Shutdown may also be called directly, for example from tests.
type Server interface {
	RunServer()
	Shutdown()
}

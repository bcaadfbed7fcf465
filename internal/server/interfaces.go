package server

// Server is the lifecycle of the HTTP listener.
type Server interface {
	// RunServer blocks until a stop signal arrives and open requests drain.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by the drain timeout.
	Shutdown()
}

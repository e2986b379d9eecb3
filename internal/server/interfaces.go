package server

// Server is the lifecycle contract shared by the transport servers this
// package manages.
//
// RunServer blocks until the server stops on its own or Shutdown is called
// from another goroutine; Shutdown drains in-flight requests and releases the
// listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

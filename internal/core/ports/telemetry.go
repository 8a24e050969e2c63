package ports

import "context"

// Telemetry records build progress as a tree of vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex named name.
	Record(ctx context.Context, name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of progress, such as one output target.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(msg string)

	// Cached marks the vertex as a cache hit.
	Cached()

	// Complete marks the vertex as finished, failed when err is not nil.
	Complete(err error)
}

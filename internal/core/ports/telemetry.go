package ports

import (
	"context"
	"io"

	"go.trai.ch/swatch/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records one vertex per stylesheet request.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex output stream.
	Stdout() io.Writer
	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished, successfully or with err.
	Complete(err error)
	// Cached marks the vertex as a cache hit.
	Cached()
}

package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex output stream. Compiler warnings land here.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log writes msg to the output stream, prefixed with its level.
// Errors go to the vertex stderr stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level == domain.LogLevelError {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "%-5s %s\n", level, msg)
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

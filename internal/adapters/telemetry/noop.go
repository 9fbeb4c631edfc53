// Package telemetry provides telemetry adapters that need no backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards everything written to it.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Log does nothing.
func (NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}

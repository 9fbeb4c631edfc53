package pipeline

import "time"

// SetNow replaces the clock used by the mtime fast path.
// This is exported for testing purposes only.
func (p *Pipeline) SetNow(now func() time.Time) {
	p.now = now
}

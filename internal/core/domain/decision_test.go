package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/swatch/internal/core/domain"
)

func TestShouldRecompile(t *testing.T) {
	a := domain.Fingerprint{Sum: domain.Digest{1}}
	b := domain.Fingerprint{Sum: domain.Digest{2}}
	partialA := domain.Fingerprint{Sum: domain.Digest{1}, Partial: true}

	tests := []struct {
		name    string
		stored  *domain.Fingerprint
		current domain.Fingerprint
		force   bool
		want    bool
	}{
		{name: "cold cache", stored: nil, current: a, want: true},
		{name: "unchanged", stored: &a, current: a, want: false},
		{name: "changed", stored: &a, current: b, want: true},
		{name: "forced", stored: &a, current: a, force: true, want: true},
		{name: "partial current", stored: &a, current: partialA, want: true},
		{name: "partial stored", stored: &partialA, current: a, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ShouldRecompile(tt.stored, tt.current, tt.force))
		})
	}
}

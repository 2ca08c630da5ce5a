package provider

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_BaseDecaysWithPosition(t *testing.T) {
	tests := []struct {
		position int
		want     float64
	}{
		{0, 0.95},
		{1, 0.90},
		{3, 0.80},
		{7, 0.60},
		{10, 0.60}, // floor
		{50, 0.60},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("position %d", tt.position), func(t *testing.T) {
			got := Score(tt.position, "unrelated title", "unrelated snippet", "https://example.org/x", "zzz")
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestScore_QueryMatchBoost(t *testing.T) {
	// Position 3 base is 0.80; verbatim query match adds 0.10
	got := Score(3, "All about Jane Roe", "", "https://example.org", "jane roe")
	assert.InDelta(t, 0.90, got, 0.001)

	// Match in snippet counts too, case-insensitive
	got = Score(3, "", "profile of JANE ROE online", "https://example.org", "Jane Roe")
	assert.InDelta(t, 0.90, got, 0.001)
}

func TestScore_TrustedHostBoost(t *testing.T) {
	got := Score(3, "x", "y", "https://www.linkedin.com/in/jane", "zzz")
	assert.InDelta(t, 0.85, got, 0.001)
}

func TestScore_CappedAtCeiling(t *testing.T) {
	// Top position with both boosts still caps at 0.95
	got := Score(0, "Jane Roe", "Jane Roe profile", "https://github.com/janeroe", "jane roe")
	assert.InDelta(t, 0.95, got, 0.001)
}

func TestScore_AlwaysInRange(t *testing.T) {
	for pos := 0; pos < 30; pos++ {
		got := Score(pos, "Jane Roe", "snippet with jane roe", "https://linkedin.com/in/j", "jane roe")
		assert.GreaterOrEqual(t, got, 0.60, "position %d", pos)
		assert.LessOrEqual(t, got, 0.95, "position %d", pos)
	}
}

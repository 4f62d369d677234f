package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		pct    float64
		filled int
		label  string
	}{
		{0, 0, "  0%"},
		{0.5, 5, " 50%"},
		{1, 10, "100%"},
		{1.7, 10, "100%"},
		{-1, 0, "  0%"},
	}
	for _, tt := range tests {
		out := stripANSI(RenderProgress(tt.pct, 10))
		assert.Equal(t, tt.filled, strings.Count(out, filledBlock), "pct %v", tt.pct)
		assert.Equal(t, 10-tt.filled, strings.Count(out, emptyBlock), "pct %v", tt.pct)
		assert.True(t, strings.HasSuffix(out, tt.label), "%q", out)
	}
}

func TestRenderProgress_MinimumWidth(t *testing.T) {
	out := stripANSI(RenderProgress(0.5, 0))
	assert.Equal(t, 2, strings.Count(out, filledBlock)+strings.Count(out, emptyBlock))
}

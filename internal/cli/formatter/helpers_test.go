package formatter

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"seconds", now.Add(-20 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"2 weeks", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "∞", Number(math.Inf(1)))
	assert.Equal(t, "-∞", Number(math.Inf(-1)))
	assert.Equal(t, "n/a", Number(math.NaN()))
	assert.Equal(t, "336", Number(336))
	assert.Equal(t, "6.67", Number(20.0/3))
	assert.Equal(t, "0.5", Number(0.5))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "7.0%", Percent(0.07))
	assert.Equal(t, "∞", Percent(math.Inf(1)))
}

func TestBullets(t *testing.T) {
	assert.Equal(t, "  - one\n  - two\n", Bullets([]string{"one", "two"}))
	assert.Empty(t, Bullets(nil))
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("verdict", "body"))
	assert.Contains(t, out, "VERDICT")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}

func TestRenderTable_AlignsNumbersRight(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{{"Stripe", "100"}, {"Xq", "7"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "NAME    SCORE", lines[0])
	assert.Equal(t, "Stripe    100", lines[2])
	assert.Equal(t, "Xq          7", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestNumeric(t *testing.T) {
	for _, s := range []string{"12", "-3.5", "45%", "∞", "1,200"} {
		assert.True(t, numeric(s), s)
	}
	for _, s := range []string{"", "abc", "3-4", "%5"} {
		assert.False(t, numeric(s), s)
	}
}

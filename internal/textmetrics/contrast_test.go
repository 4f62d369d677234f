package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastRatio_BlackWhite(t *testing.T) {
	r, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, r, 1e-9)
	assert.Greater(t, r, 20.0)
	assert.Greater(t, r, 4.5)
}

func TestContrastRatio_OrderIndependent(t *testing.T) {
	a, err := ContrastRatio("#1a73e8", "#ffffff")
	require.NoError(t, err)
	b, err := ContrastRatio("#ffffff", "#1a73e8")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestContrastRatio_Identical(t *testing.T) {
	r, err := ContrastRatio("#112233", "#112233")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestContrastRatio_Forms(t *testing.T) {
	long, err := ContrastRatio("#ffffff", "#000000")
	require.NoError(t, err)
	for _, pair := range [][2]string{
		{"ffffff", "000000"},
		{"#fff", "#000"},
		{"FFF", "000"},
		{" #FFFFFF ", "#000000"},
	} {
		r, err := ContrastRatio(pair[0], pair[1])
		require.NoError(t, err, pair)
		assert.InDelta(t, long, r, 1e-9, pair)
	}
}

func TestContrastRatio_Invalid(t *testing.T) {
	for _, bad := range []string{"", "#12345", "#1234567", "#gggggg", "red", "#ff00"} {
		_, err := ContrastRatio(bad, "#ffffff")
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestRelativeLuminance(t *testing.T) {
	black, err := RelativeLuminance("#000")
	require.NoError(t, err)
	white, err := RelativeLuminance("#fff")
	require.NoError(t, err)
	grey, err := RelativeLuminance("#777777")
	require.NoError(t, err)

	assert.Zero(t, black)
	assert.InDelta(t, 1.0, white, 1e-9)
	assert.InDelta(t, 0.184, grey, 0.001)
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		large bool
		want  Level
	}{
		{21, false, LevelAAA},
		{7, false, LevelAAA},
		{5, false, LevelAA},
		{3.5, false, LevelAALarge},
		{2, false, LevelFail},
		{5, true, LevelAAA},
		{3.5, true, LevelAA},
		{2.9, true, LevelFail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WCAGLevel(tt.ratio, tt.large), "ratio %.1f large %v", tt.ratio, tt.large)
	}
}

package xlsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
sheet: Report
axis: vertical
side: before
gap: 2
`))
	require.NoError(t, err)
	assert.Equal(t, "Report", cfg.Sheet)

	axis, err := cfg.SplitAxis()
	require.NoError(t, err)
	assert.Equal(t, Vertical, axis)
	side, err := cfg.SplitSide()
	require.NoError(t, err)
	assert.Equal(t, Before, side)

	o := defaultOptions()
	for _, opt := range cfg.Options() {
		opt(o)
	}
	assert.Equal(t, 2, o.gap)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Options())

	axis, _ := cfg.SplitAxis()
	side, _ := cfg.SplitSide()
	assert.Equal(t, Horizontal, axis)
	assert.Equal(t, After, side)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "axes: vertical\n",
		"bad axis":     "axis: diagonal\n",
		"bad side":     "side: middle\n",
		"negative gap": "gap: -1\n",
		"not yaml":     "axis: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

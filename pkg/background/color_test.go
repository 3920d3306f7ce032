package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/pkg/css"
)

func TestResolveFill(t *testing.T) {
	fill, err := ResolveFill("rgba(255, 0, 0, 0.5)")
	require.NoError(t, err)
	require.NotNil(t, fill)
	assert.Equal(t, Fill{R: 1, G: 0, B: 0, Opacity: 0.5}, *fill)

	fill, err = ResolveFill("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, Fill{G: 1, Opacity: 1}, *fill)
}

func TestResolveFill_Transparent(t *testing.T) {
	for _, value := range []string{"", "transparent", " Transparent "} {
		fill, err := ResolveFill(value)
		assert.NoError(t, err)
		assert.Nil(t, fill, "ResolveFill(%q)", value)
	}
}

func TestResolveFill_Invalid(t *testing.T) {
	fill, err := ResolveFill("not-a-color")
	assert.Nil(t, fill)
	assert.ErrorIs(t, err, css.ErrInvalidColor)
}

package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Small} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}
	assert.Greater(t, Bold.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

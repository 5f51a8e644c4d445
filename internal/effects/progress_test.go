package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/folio/internal/input"
)

func TestScrollProgressEasesToRawProgress(t *testing.T) {
	env := newEnv(input.Viewport{Width: 80, Height: 40, DocumentHeight: 240})
	bar, err := OpenScrollProgress(env, DefaultSettings().Progress)
	require.NoError(t, err)
	defer bar.Close()

	env.Events.Scroll(100)
	assert.InDelta(t, 0.5, bar.Raw(), 1e-12)
	assert.Zero(t, bar.ScaleX())

	ts := ticks(env, 0, 3)
	assert.Greater(t, bar.ScaleX(), 0.0)
	assert.Less(t, bar.ScaleX(), 0.5)

	settle(env, ts, 2000)
	assert.Equal(t, 0.5, bar.ScaleX())
}

func TestScrollProgressClampsOverscroll(t *testing.T) {
	env := newEnv(input.Viewport{Width: 80, Height: 40, DocumentHeight: 240})
	bar, err := OpenScrollProgress(env, DefaultSettings().Progress)
	require.NoError(t, err)
	defer bar.Close()

	ts := 0.0
	for _, offset := range []float64{-50, 260, 900, -5} {
		env.Events.Scroll(offset)
		ts = settle(env, ts, 2000)
		assert.GreaterOrEqual(t, bar.Raw(), 0.0)
		assert.LessOrEqual(t, bar.Raw(), 1.0)
		assert.GreaterOrEqual(t, bar.ScaleX(), 0.0)
		assert.LessOrEqual(t, bar.ScaleX(), 1.0)
	}
}

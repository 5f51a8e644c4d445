package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/folio/internal/input"
)

func TestMagneticTargetScenario(t *testing.T) {
	got := MagneticTarget(input.Point{X: 200, Y: 200}, input.Point{X: 400, Y: 300}, 0.3)
	assert.InDelta(t, 60.0, got.X, 1e-9)
	assert.InDelta(t, 30.0, got.Y, 1e-9)
}

func TestMagneticPullsAndSpringsBack(t *testing.T) {
	env := newEnv(input.Viewport{Width: 800, Height: 600})
	button := input.Rect{Left: 0, Top: 100, Width: 400, Height: 200}
	cfg := DefaultSettings().Magnetic
	cfg.Strength = 0.3
	mag, err := OpenMagnetic(env, "hire", func() input.Rect { return button }, cfg)
	require.NoError(t, err)
	defer mag.Close()

	env.Events.PointerMove(input.Point{X: 400, Y: 300})
	require.True(t, mag.Hovering())
	target := mag.Target()
	assert.InDelta(t, 60.0, target.X, 1e-9)
	assert.InDelta(t, 30.0, target.Y, 1e-9)
	assert.Equal(t, input.Point{}, mag.Offset(), "smoothing has not run yet")

	ts := settle(env, 0, 5000)
	assert.Equal(t, input.Point{X: 60, Y: 30}, mag.Offset())

	env.Events.PointerMove(input.Point{X: 700, Y: 500})
	assert.False(t, mag.Hovering())
	settle(env, ts, 5000)
	assert.Equal(t, input.Point{}, mag.Offset())
}

func TestMagneticCloseReleasesEverything(t *testing.T) {
	env := newEnv(input.Viewport{Width: 80, Height: 24})
	mag, err := OpenMagnetic(env, "cta", func() input.Rect { return input.Rect{Width: 10, Height: 3} }, DefaultSettings().Magnetic)
	require.NoError(t, err)
	env.Events.PointerMove(input.Point{X: 9, Y: 2})
	mag.Close()
	mag.Close()
	assert.Zero(t, env.Events.ListenerCount())
	assert.Zero(t, env.Loop.Pending())
}

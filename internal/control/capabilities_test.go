package control

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpringConfigConversion(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Sqrt(1200), DefaultSpring.AngularFrequency(), 1e-9)
	assert.InDelta(t, 20/(2*math.Sqrt(300)), DefaultSpring.DampingRatio(), 1e-9)
	assert.Equal(t, DefaultSpring.AngularFrequency(), SpringConfig{}.AngularFrequency())
}

func TestSpringAnimatorSettlesOnTarget(t *testing.T) {
	t.Parallel()

	a := NewSpringAnimator(60)
	require.True(t, a.Settled())
	assert.InDelta(t, 1.0, a.Scale(), 1e-9)

	a.AnimateTo(DefaultPressedScale, DefaultSpring)
	assert.False(t, a.Settled())

	settled := false
	for i := 0; i < 120 && !settled; i++ {
		var scale float64
		scale, settled = a.Step()
		assert.Greater(t, scale, 0.9)
	}
	require.True(t, settled)
	assert.Equal(t, DefaultPressedScale, a.Scale())

	a.AnimateTo(1, DefaultSpring)
	first, _ := a.Step()
	assert.Greater(t, first, DefaultPressedScale)
	for i := 0; i < 120; i++ {
		if _, done := a.Step(); done {
			break
		}
	}
	assert.Equal(t, 1.0, a.Scale())
}

func TestSpringAnimatorStepAtRest(t *testing.T) {
	t.Parallel()

	a := NewSpringAnimator(0)
	assert.Equal(t, 60, a.FPS())
	scale, settled := a.Step()
	assert.Equal(t, 1.0, scale)
	assert.True(t, settled)
}

func TestParseIntensity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, IntensityHeavy, ParseIntensity("HEAVY"))
	assert.Equal(t, IntensityMedium, ParseIntensity("medium"))
	assert.Equal(t, IntensityLight, ParseIntensity("rumble"))
}

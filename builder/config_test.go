// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderConfig_Defaults verifies identity placement without options.
func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, defaultScale, cfg.scale)
	assert.Equal(t, mgl64.Vec3{}, cfg.center)
	assert.Equal(t, mgl64.Vec3{1, -2, 3}, cfg.place(mgl64.Vec3{1, -2, 3}))
}

// TestBuilderConfig_Order verifies that later options override earlier ones,
// that nil options are ignored, and that scaling happens before translation.
func TestBuilderConfig_Order(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithScale(3),
		nil,
		WithScale(2),
		WithCenter(mgl64.Vec3{10, 0, 0}),
	)
	assert.Equal(t, 2.0, cfg.scale)
	assert.Equal(t, mgl64.Vec3{12, 2, 0}, cfg.place(mgl64.Vec3{1, 1, 0}))
}

// TestOptions_Panics verifies fast-fail validation in option constructors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithScale(0) })
	require.Panics(t, func() { WithScale(-1) })
	require.Panics(t, func() { WithScale(math.NaN()) })
	require.Panics(t, func() { WithScale(math.Inf(1)) })
	require.Panics(t, func() { WithCenter(mgl64.Vec3{0, math.NaN(), 0}) })
	require.Panics(t, func() { WithCenter(mgl64.Vec3{math.Inf(-1), 0, 0}) })
	require.NotPanics(t, func() { WithCenter(mgl64.Vec3{-5, 5, 0}) })
}

// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale  = 1.0
//   • center = origin

package builder

import "github.com/go-gl/mathgl/mgl64"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	scale  float64    // uniform scale applied before translation, > 0
	center mgl64.Vec3 // translation applied after scaling
}

const defaultScale = 1.0

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// place maps a canonical fixture position into the configured frame.
func (c builderConfig) place(p mgl64.Vec3) mgl64.Vec3 {
	return p.Mul(c.scale).Add(c.center)
}

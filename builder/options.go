// SPDX-License-Identifier: MIT
// Package: qemesh/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BuilderOption customizes a fixture constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithScale multiplies every canonical position by s.
// Panics unless s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale requires a finite s > 0")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithCenter translates the fixture so its canonical origin lands on p.
// Panics on NaN or infinite coordinates.
func WithCenter(p mgl64.Vec3) BuilderOption {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic("builder: WithCenter requires finite coordinates")
		}
	}
	return func(c *builderConfig) {
		c.center = p
	}
}

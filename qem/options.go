// SPDX-License-Identifier: MIT

package qem

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// DefaultDetEpsilon is the |det| threshold above which the constrained
// quadric system is solved directly.
const DefaultDetEpsilon = 1e-7

// Options configures a Simplifier.
//
// Logger     – receives debug records per round and an info record per run.
// Ctx        – checked before each round; its error aborts the run.
// DetEpsilon – |det(A)| must exceed it for the direct solve.
type Options struct {
	Logger     *zap.Logger
	Ctx        context.Context
	DetEpsilon float64
}

// Option represents a functional option for configuring a Simplifier.
type Option func(*Options)

// DefaultOptions returns silent, non-cancellable defaults.
//
// Defaults:
//   - Logger:     zap.NewNop()
//   - Ctx:        context.Background()
//   - DetEpsilon: DefaultDetEpsilon
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Ctx:        context.Background(),
		DetEpsilon: DefaultDetEpsilon,
	}
}

// WithLogger routes run diagnostics to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithContext makes RunSimplify stop with ctx.Err() once ctx is done.
// A nil ctx means context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.Ctx = ctx
	}
}

// WithDetEpsilon overrides the determinant threshold of the optimal-position
// solve. Panics unless eps is finite and > 0.
func WithDetEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("qem: WithDetEpsilon requires a finite eps > 0")
	}
	return func(o *Options) {
		o.DetEpsilon = eps
	}
}

// Package optimize is a minimal first-order optimizer driver for
// smoother.CostFunction-shaped objectives.
//
// The corpus this module was distilled from carries no numerical
// optimization library (no gonum, no ceres binding) anywhere in the
// retrieved pack, so this driver is plain math.Sqrt/backtracking
// gradient descent rather than an imported solver — see DESIGN.md for
// why nothing in the pack could serve this concern. It exists only to
// exercise smoother.CostFunction end to end for the CLI demo and
// tests; a production deployment is expected to swap in a real
// first-order optimizer (e.g. L-BFGS) against the same interface,
// which this package deliberately keeps narrow enough to drop in for.
package optimize

import (
	"context"
	"math"
)

// CostFunction is the consumer-side contract this driver requires.
// smoother.CostFunction satisfies it structurally; nothing here
// imports the smoother package, keeping the dependency direction
// pointed from cmd/planner inward rather than core-outward.
type CostFunction interface {
	NumParameters() int
	Evaluate(ctx context.Context, parameters []float64, gradient []float64) (float64, error)
}

// Options configures GradientDescent.
type Options struct {
	// MaxIterations caps the outer loop. Zero uses DefaultMaxIterations.
	MaxIterations int
	// GradientTolerance stops the loop once the gradient's Euclidean
	// norm falls below this value. Zero uses DefaultGradientTolerance.
	GradientTolerance float64
	// InitialStepSize seeds the backtracking line search. Zero uses
	// DefaultInitialStepSize.
	InitialStepSize float64
}

const (
	DefaultMaxIterations        = 100
	DefaultGradientTolerance    = 1e-6
	DefaultInitialStepSize      = 1.0
	backtrackShrink             = 0.5
	backtrackSufficientDecrease = 1e-4
	maxLineSearchSteps          = 30
)

func (o Options) maxIterations() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return DefaultMaxIterations
}

func (o Options) gradientTolerance() float64 {
	if o.GradientTolerance > 0 {
		return o.GradientTolerance
	}
	return DefaultGradientTolerance
}

func (o Options) initialStepSize() float64 {
	if o.InitialStepSize > 0 {
		return o.InitialStepSize
	}
	return DefaultInitialStepSize
}

// Result reports what GradientDescent found.
type Result struct {
	Parameters []float64
	Cost       float64
	Iterations int
	Converged  bool
}

// GradientDescent drives fn to a local minimum starting from initial
// (copied, never mutated in place), using backtracking line search
// (Armijo sufficient-decrease condition) on the steepest-descent
// direction. It stops on gradient-norm convergence, the iteration cap,
// a stalled line search, or ctx cancellation (checked once per outer
// iteration, mirroring search.Run's per-iteration check), and
// propagates any error fn.Evaluate returns (notably ErrCancelled or
// *smoother.ErrDiverged) without wrapping it.
func GradientDescent(ctx context.Context, fn CostFunction, initial []float64, opts Options) (Result, error) {
	n := fn.NumParameters()
	params := append([]float64(nil), initial...)
	gradient := make([]float64, n)

	cost, err := fn.Evaluate(ctx, params, gradient)
	if err != nil {
		return Result{}, err
	}

	for iter := 0; iter < opts.maxIterations(); iter++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		if gradientNorm(gradient) < opts.gradientTolerance() {
			return Result{Parameters: params, Cost: cost, Iterations: iter, Converged: true}, nil
		}

		step := opts.initialStepSize()
		candidate := make([]float64, n)
		candidateGradient := make([]float64, n)
		var candidateCost float64
		accepted := false

		for i := 0; i < maxLineSearchSteps; i++ {
			for j := range candidate {
				candidate[j] = params[j] - step*gradient[j]
			}
			candidateCost, err = fn.Evaluate(ctx, candidate, candidateGradient)
			if err != nil {
				return Result{}, err
			}
			if candidateCost <= cost-backtrackSufficientDecrease*step*gradientNormSquared(gradient) {
				accepted = true
				break
			}
			step *= backtrackShrink
		}

		if !accepted {
			return Result{Parameters: params, Cost: cost, Iterations: iter, Converged: false}, nil
		}

		params, gradient, cost = candidate, candidateGradient, candidateCost
	}

	return Result{Parameters: params, Cost: cost, Iterations: opts.maxIterations(), Converged: false}, nil
}

func gradientNormSquared(gradient []float64) float64 {
	var sum float64
	for _, g := range gradient {
		sum += g * g
	}
	return sum
}

func gradientNorm(gradient []float64) float64 {
	return math.Sqrt(gradientNormSquared(gradient))
}

package optimize

import (
	"context"
	"math"
	"testing"
)

// quadraticBowl is fn(x) = sum((x_i - target_i)^2), a trivial convex
// objective with a known minimum, used to exercise the driver without
// depending on the smoother package.
type quadraticBowl struct {
	target []float64
}

func (q quadraticBowl) NumParameters() int { return len(q.target) }

func (q quadraticBowl) Evaluate(ctx context.Context, parameters []float64, gradient []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var cost float64
	for i, p := range parameters {
		d := p - q.target[i]
		cost += d * d
		gradient[i] = 2 * d
	}
	return cost, nil
}

func TestGradientDescent_ConvergesToKnownMinimum(t *testing.T) {
	fn := quadraticBowl{target: []float64{3, -2}}
	result, err := GradientDescent(context.Background(), fn, []float64{0, 0}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Converged {
		t.Errorf("expected convergence, got %+v", result)
	}
	for i, want := range fn.target {
		if math.Abs(result.Parameters[i]-want) > 1e-3 {
			t.Errorf("parameter %d: got %f, want ~%f", i, result.Parameters[i], want)
		}
	}
}

type erroringCostFunction struct{ n int }

func (e erroringCostFunction) NumParameters() int { return e.n }

func (e erroringCostFunction) Evaluate(ctx context.Context, parameters, gradient []float64) (float64, error) {
	return 0, errDivergedStub{}
}

type errDivergedStub struct{}

func (errDivergedStub) Error() string { return "diverged" }

func TestGradientDescent_PropagatesEvaluateError(t *testing.T) {
	_, err := GradientDescent(context.Background(), erroringCostFunction{n: 2}, []float64{0, 0}, Options{})
	if err == nil {
		t.Fatal("expected the driver to propagate Evaluate's error")
	}
}

func TestGradientDescent_DoesNotMutateInitialSlice(t *testing.T) {
	fn := quadraticBowl{target: []float64{1, 1}}
	initial := []float64{0, 0}
	if _, err := GradientDescent(context.Background(), fn, initial, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if initial[0] != 0 || initial[1] != 0 {
		t.Errorf("expected the caller's initial slice untouched, got %v", initial)
	}
}

func TestGradientDescent_StopsWhenContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fn := quadraticBowl{target: []float64{3, -2}}
	_, err := GradientDescent(ctx, fn, []float64{0, 0}, Options{})
	if err == nil {
		t.Fatal("expected a cancellation error from an already-done context")
	}
}

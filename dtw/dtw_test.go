package dtw_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
)

// TestAlign_EmptyInput verifies that Align returns ErrEmptySequence
// when either input sequence is empty or nil.
func TestAlign_EmptyInput(t *testing.T) {
	_, err := dtw.AlignScalars([]float64{}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "empty first sequence should error")

	_, err = dtw.AlignScalars([]float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "empty second sequence should error")

	b, _ := frame.FromScalars([]float64{1})
	_, err = dtw.Align(nil, b)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "nil sequence should error")
	assert.ErrorIs(t, err, frame.ErrEmptySequence, "sentinel is shared with frame")

	_, err = dtw.Align(&frame.Sequence{}, b)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence, "zero Sequence should error")
}

// TestAlign_BadOption ensures a nil distance is reported as an option violation.
func TestAlign_BadOption(t *testing.T) {
	_, err := dtw.AlignScalars([]float64{1}, []float64{1}, dtw.WithDistance(nil))
	assert.ErrorIs(t, err, dtw.ErrOptionViolation)
}

// TestAlign_IdenticalScalars covers the 1,2,3 vs 1,2,3 scenario.
func TestAlign_IdenticalScalars(t *testing.T) {
	al, err := dtw.AlignScalars([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, al.Path.I)
	assert.Equal(t, []int{0, 1, 2}, al.Path.J)
	assert.Equal(t, 0.0, al.Cost)
}

// TestAlign_IdentityVectors checks that any sequence aligned with itself
// follows the diagonal with zero cost, including repeated frames.
func TestAlign_IdentityVectors(t *testing.T) {
	s, err := frame.FromVectors([][]float64{{0, 1}, {0, 1}, {2, -1}, {3, 3}, {3, 3}})
	require.NoError(t, err)

	al, err := dtw.Align(s, s)
	require.NoError(t, err)
	want := []int{0, 1, 2, 3, 4}
	assert.Equal(t, want, al.Path.I)
	assert.Equal(t, want, al.Path.J)
	assert.Equal(t, 0.0, al.Cost)
}

// TestAlign_BoundaryCompletion covers [0,0] vs [0,0,0]: every cell ties, the
// diagonal wins at (1,2) and the rest is a straight run along row 0.
func TestAlign_BoundaryCompletion(t *testing.T) {
	al, err := dtw.AlignScalars([]float64{0, 0}, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, al.Path.I)
	assert.Equal(t, []int{0, 1, 2}, al.Path.J)
	assert.Equal(t, 0.0, al.Cost)
	assert.NoError(t, al.Path.Validate(2, 3))
}

// TestCostMatrix_Recurrence checks every cell of a hand-computed table.
func TestCostMatrix_Recurrence(t *testing.T) {
	a, _ := frame.FromScalars([]float64{0, 1, 2})
	b, _ := frame.FromScalars([]float64{0, 2})

	cost, err := dtw.CostMatrix(a, b, nil)
	require.NoError(t, err)
	// d = [[0 4] [1 1] [4 0]]
	assert.Equal(t, "[0, 4]\n[1, 1]\n[5, 1]\n", cost.String())

	al, err := dtw.Align(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, al.Cost)
	// At (2,1) diagonal and row-predecessor tie at 1: diagonal wins.
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 0}, {2, 1}}, al.Pairs())
}

// TestAlign_CustomDistanceError ensures strategy errors come back untouched.
func TestAlign_CustomDistanceError(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	failing := func(a, b frame.Frame) (float64, error) {
		calls++
		if calls == 3 {
			return 0, errBoom
		}
		return 1, nil
	}

	al, err := dtw.AlignScalars([]float64{1, 2}, []float64{1, 2}, dtw.WithDistance(failing))
	assert.Nil(t, al, "no partial result on failure")
	assert.True(t, err == errBoom, "error must not be wrapped, got %v", err)
}

// TestAlign_NaNDistance ensures NaN costs are rejected.
func TestAlign_NaNDistance(t *testing.T) {
	nan := func(a, b frame.Frame) (float64, error) { return math.NaN(), nil }
	_, err := dtw.AlignScalars([]float64{1}, []float64{1}, dtw.WithDistance(nan))
	assert.ErrorIs(t, err, dtw.ErrInvalidCost)
}

// TestAlign_ShapeMismatch ensures the default distance refuses frames of different shape.
func TestAlign_ShapeMismatch(t *testing.T) {
	a, _ := frame.FromVectors([][]float64{{1, 2}, {3, 4}})
	b, _ := frame.FromVectors([][]float64{{1, 2, 3}})
	_, err := dtw.Align(a, b)
	assert.ErrorIs(t, err, dtw.ErrShapeMismatch)

	s, _ := frame.FromScalars([]float64{1, 2})
	_, err = dtw.Align(a, s)
	assert.ErrorIs(t, err, dtw.ErrShapeMismatch)
}

// TestAlign_CustomDistanceShapes shows that a custom strategy may compare
// frames of different shapes; the engine itself imposes no constraint.
func TestAlign_CustomDistanceShapes(t *testing.T) {
	a, _ := frame.FromVectors([][]float64{{1, 2}, {3, 4}})
	b, _ := frame.FromScalars([]float64{3, 7})
	sumVsScalar := func(x, y frame.Frame) (float64, error) {
		var sum float64
		for _, v := range x.AppendTo(nil) {
			sum += v
		}
		s, err := y.Scalar()
		if err != nil {
			return 0, err
		}
		return math.Abs(sum - s), nil
	}

	al, err := dtw.Align(a, b, dtw.WithDistance(sumVsScalar))
	require.NoError(t, err)
	assert.Equal(t, 0.0, al.Cost)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}}, al.Pairs())
}

// TestAlign_PathInvariants checks anchoring and monotonic unit steps on random inputs.
func TestAlign_PathInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n, m := 1+rng.Intn(12), 1+rng.Intn(12)
		a, b := randomSeries(rng, n), randomSeries(rng, m)

		al, err := dtw.AlignScalars(a, b)
		require.NoError(t, err)
		require.NoError(t, al.Path.Validate(n, m), "trial %d: %v vs %v", trial, a, b)
		assert.GreaterOrEqual(t, al.Path.Len(), max(n, m))
		assert.LessOrEqual(t, al.Path.Len(), n+m-1)
	}
}

// TestAlign_OptimalityBruteForce compares the DTW cost with an exhaustive
// search over every monotone path for small sequences.
func TestAlign_OptimalityBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		n, m := 1+rng.Intn(6), 1+rng.Intn(6)
		a, b := randomSeries(rng, n), randomSeries(rng, m)
		d := func(i, j int) float64 { return (a[i] - b[j]) * (a[i] - b[j]) }

		al, err := dtw.AlignScalars(a, b)
		require.NoError(t, err)

		want := bruteForce(n, m, d)
		assert.InDelta(t, want, al.Cost, 1e-9, "trial %d: %v vs %v", trial, a, b)

		// The traced path realizes the reported cost.
		var along float64
		for k := range al.Path.I {
			along += d(al.Path.I[k], al.Path.J[k])
		}
		assert.InDelta(t, al.Cost, along, 1e-9, "trial %d", trial)
	}
}

// TestAlign_Deterministic verifies repeated calls produce identical results.
func TestAlign_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, b := randomSeries(rng, 20), randomSeries(rng, 15)

	first, err := dtw.AlignScalars(a, b)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dtw.AlignScalars(a, b)
		require.NoError(t, err)
		if diff := cmp.Diff(first.Path, again.Path); diff != "" {
			t.Fatalf("path changed between runs (-first +again):\n%s", diff)
		}
		assert.Equal(t, first.Cost, again.Cost)
	}
}

// TestAlign_HigherRankFrames aligns sequences of 2x2 frames.
func TestAlign_HigherRankFrames(t *testing.T) {
	// shape [2,2,3]; frame t = {t, t, t, t}
	dataA := []float64{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}
	a, err := frame.New([]int{2, 2, 3}, dataA)
	require.NoError(t, err)
	// shape [2,2,2]; frames {0,0,0,0} and {2,2,2,2}
	dataB := []float64{0, 2, 0, 2, 0, 2, 0, 2}
	b, err := frame.New([]int{2, 2, 2}, dataB)
	require.NoError(t, err)

	al, err := dtw.Align(a, b)
	require.NoError(t, err)
	// Same table as the scalar 0,1,2 vs 0,2 case scaled by 4 elements.
	assert.Equal(t, 4.0, al.Cost)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 0}, {2, 1}}, al.Pairs())
}

func randomSeries(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.Intn(7) - 3)
	}
	return out
}

// bruteForce enumerates every monotone path from (0,0) to (n-1,m-1).
func bruteForce(n, m int, d func(i, j int) float64) float64 {
	best := math.Inf(1)
	var walk func(i, j int, acc float64)
	walk = func(i, j int, acc float64) {
		acc += d(i, j)
		if i == n-1 && j == m-1 {
			best = math.Min(best, acc)
			return
		}
		if i+1 < n {
			walk(i+1, j, acc)
		}
		if j+1 < m {
			walk(i, j+1, acc)
		}
		if i+1 < n && j+1 < m {
			walk(i+1, j+1, acc)
		}
	}
	walk(0, 0, 0)
	return best
}

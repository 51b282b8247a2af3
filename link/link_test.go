package link_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/link"
	"github.com/katalvlaran/warp/matrix"
)

var (
	seqA = []float64{0, 1, 2, 4, 5, 2, 3, 1, 0, 0}
	seqB = []float64{2, 4, 5, 6, 6, 5, 5, 4, 3, 1, 0, 0}
)

func scalars(t *testing.T, v []float64) *frame.Sequence {
	t.Helper()
	s, err := frame.FromScalars(v)
	require.NoError(t, err)
	return s
}

// rows dumps a Dense as [][]float64 for cmp.Diff.
func rows(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = append([]float64(nil), r...)
	}
	return out
}

// TestLink_FiveLinks reproduces the ten-versus-twelve sample scenario with 5 links.
func TestLink_FiveLinks(t *testing.T) {
	set, err := link.Link(scalars(t, seqA), scalars(t, seqB), link.WithSamplingRate(1), link.WithLinkCount(5))
	require.NoError(t, err)

	require.Equal(t, 5, set.Len())
	assert.Equal(t, 2, set.X.Rows())
	assert.Equal(t, 5, set.X.Cols())
	assert.Equal(t, []int{2, 5}, set.Y.Shape())

	// Alignment: K = 15, cost 9; step 15/5 = 3.
	assert.Equal(t, 15, set.Alignment.Path.Len())
	assert.Equal(t, 9.0, set.Alignment.Cost)
	assert.Equal(t, []int{0, 3, 6, 9, 14}, set.Indices)

	wantX := [][]float64{
		{0, 3, 4, 4, 9},
		{0, 1, 4, 7, 11},
	}
	if diff := cmp.Diff(wantX, rows(t, set.X)); diff != "" {
		t.Errorf("X mismatch (-want +got):\n%s", diff)
	}
	// Row 0 holds a-values, row 1 b-values.
	assert.Equal(t, []float64{0, 4, 5, 5, 0, 2, 4, 6, 4, 0}, set.Y.Values())

	// First and last links are the path endpoints.
	p := set.Alignment.Path
	x, y, err := set.Segment(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{float64(p.I[0]), float64(p.J[0])}, x)
	assert.Equal(t, [2]float64{seqA[0], seqB[0]}, y)

	x, y, err = set.Segment(4, 0)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{9, 11}, x)
	assert.Equal(t, [2]float64{seqA[9], seqB[11]}, y)
}

// TestLink_AllPairs emits exactly K links when the count is 0.
func TestLink_AllPairs(t *testing.T) {
	set, err := link.Link(scalars(t, seqA), scalars(t, seqB))
	require.NoError(t, err)

	p := set.Alignment.Path
	require.Equal(t, p.Len(), set.Len())
	for l := 0; l < set.Len(); l++ {
		x, y, err := set.Segment(l, 0)
		require.NoError(t, err)
		assert.Equal(t, float64(p.I[l]), x[0])
		assert.Equal(t, float64(p.J[l]), x[1])
		assert.Equal(t, seqA[p.I[l]], y[0])
		assert.Equal(t, seqB[p.J[l]], y[1])
	}
}

// TestLink_SamplingRate scales the time coordinates by 1/sr.
func TestLink_SamplingRate(t *testing.T) {
	set, err := link.Link(scalars(t, seqA), scalars(t, seqB), link.WithSamplingRate(2), link.WithLinkCount(5))
	require.NoError(t, err)

	wantX := [][]float64{
		{0, 1.5, 2, 2, 4.5},
		{0, 0.5, 2, 3.5, 5.5},
	}
	if diff := cmp.Diff(wantX, rows(t, set.X)); diff != "" {
		t.Errorf("X mismatch (-want +got):\n%s", diff)
	}
}

// TestLink_CountLargerThanPath keeps every pair.
func TestLink_CountLargerThanPath(t *testing.T) {
	set, err := link.Link(scalars(t, []float64{1, 2}), scalars(t, []float64{1, 2}), link.WithLinkCount(10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, set.Indices)
}

// TestLink_VectorFrames keeps the frame shape in Y's leading dimensions.
func TestLink_VectorFrames(t *testing.T) {
	a, err := frame.FromVectors([][]float64{{0, 10}, {1, 11}, {2, 12}})
	require.NoError(t, err)
	b, err := frame.FromVectors([][]float64{{0, 10}, {2, 12}})
	require.NoError(t, err)

	set, err := link.Link(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	assert.Equal(t, []int{2, 2, 3}, set.Y.Shape())

	// Link 1 pairs a[1] with b[0].
	f, err := set.Y.Frame(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, f.Shape())
	assert.Equal(t, []float64{1, 0, 11, 10}, f.AppendTo(nil))

	_, y, err := set.Segment(1, 1)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{11, 10}, y)

	_, _, err = set.Segment(1, 2)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)
	_, _, err = set.Segment(3, 0)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)
}

// TestLink_Errors covers option and input validation.
func TestLink_Errors(t *testing.T) {
	a, b := scalars(t, seqA), scalars(t, seqB)

	_, err := link.Link(a, b, link.WithSamplingRate(0))
	assert.ErrorIs(t, err, link.ErrBadSamplingRate)

	_, err = link.Link(a, b, link.WithLinkCount(-1))
	assert.ErrorIs(t, err, link.ErrBadLinkCount)

	_, err = link.Link(nil, b)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)

	v, _ := frame.FromVectors([][]float64{{1, 2}})
	_, err = link.Link(a, v)
	assert.ErrorIs(t, err, dtw.ErrShapeMismatch)

	_, err = link.Link(a, b, link.WithAlignOptions(dtw.WithDistance(nil)))
	assert.ErrorIs(t, err, dtw.ErrOptionViolation)
}

// TestFromAlignment reuses an existing alignment.
func TestFromAlignment(t *testing.T) {
	a, b := scalars(t, seqA), scalars(t, seqB)
	al, err := dtw.Align(a, b)
	require.NoError(t, err)

	set, err := link.FromAlignment(a, b, al, link.WithLinkCount(5))
	require.NoError(t, err)
	assert.Same(t, al, set.Alignment)
	assert.Equal(t, []int{0, 3, 6, 9, 14}, set.Indices)

	_, err = link.FromAlignment(a, b, nil)
	assert.ErrorIs(t, err, dtw.ErrInvalidPath)

	short, _ := dtw.AlignScalars([]float64{1}, []float64{1})
	_, err = link.FromAlignment(a, b, short)
	assert.ErrorIs(t, err, dtw.ErrInvalidPath)
}

// TestSelect pins the spacing rule on hand-checked cases.
func TestSelect(t *testing.T) {
	cases := []struct {
		k, n int
		want []int
	}{
		{0, 3, nil},
		{3, 0, []int{0, 1, 2}},
		{3, 3, []int{0, 1, 2}},
		{3, 10, []int{0, 1, 2}},
		{7, 1, []int{0}},
		{1, 1, []int{0}},
		{7, 2, []int{0, 3, 6}},
		{7, 3, []int{0, 2, 4, 6}},
		{7, 5, []int{0, 1, 2, 3, 4, 5, 6}},
		{10, 3, []int{0, 3, 6, 9}},
		{14, 5, []int{0, 2, 4, 6, 8, 10, 13}},
		{15, 5, []int{0, 3, 6, 9, 14}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, link.Select(tc.k, tc.n), "k=%d n=%d", tc.k, tc.n)
	}
}

// TestSelect_Spacing checks count, gaps and anchoring over a grid of sizes.
func TestSelect_Spacing(t *testing.T) {
	for k := 1; k <= 30; k++ {
		for n := 1; n <= k; n++ {
			step := k / n
			count := (k + step - 1) / step // ceil(k / (k/n))
			idx := link.Select(k, n)

			require.Len(t, idx, count, "k=%d n=%d", k, n)
			assert.Equal(t, 0, idx[0], "k=%d n=%d", k, n)
			if count == 1 {
				continue
			}
			assert.Equal(t, k-1, idx[count-1], "k=%d n=%d", k, n)
			for m := 1; m < count-1; m++ {
				assert.Equal(t, step, idx[m]-idx[m-1], "gap %d k=%d n=%d", m, k, n)
			}
			last := idx[count-1] - idx[count-2]
			assert.GreaterOrEqual(t, last, step, "k=%d n=%d", k, n)
			assert.Less(t, last, 2*step, "k=%d n=%d", k, n)
		}
	}
}

// TestTimeAxis builds t[k] = k/sr.
func TestTimeAxis(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, link.TimeAxis(4, 4))
}

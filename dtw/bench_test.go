package dtw_test

import (
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/signal"
)

// benchmarkAlign aligns a chirp of length n against the same chirp stretched
// by factor. Setup is excluded from the timing.
func benchmarkAlign(b *testing.B, n int, factor float64, opts ...dtw.Option) {
	x := signal.Chirp(n, 1)
	a, err := frame.FromScalars(x)
	if err != nil {
		b.Fatal(err)
	}
	s, err := frame.FromScalars(signal.Stretch(x, factor))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dtw.Align(a, s, opts...); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// benchmarkAlignVectors aligns d-dimensional frames built from shifted chirps.
func benchmarkAlignVectors(b *testing.B, n, d int) {
	rows := make([][]float64, n)
	for k := 0; k < d; k++ {
		x := signal.Chirp(n, int64(k+1))
		for t := range rows {
			if rows[t] == nil {
				rows[t] = make([]float64, d)
			}
			rows[t][k] = x[t]
		}
	}
	a, err := frame.FromVectors(rows)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dtw.Align(a, a); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small aligns 100 samples against 150.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 1.5) }

// BenchmarkAlign_Medium aligns 500 samples against 750.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 500, 1.5) }

// BenchmarkAlign_Manhattan uses the L1 strategy through floats.Distance.
func BenchmarkAlign_Manhattan(b *testing.B) {
	benchmarkAlign(b, 200, 1.25, dtw.WithDistance(dtw.Manhattan))
}

// BenchmarkAlign_Vectors8 aligns 200 frames of 8 components.
func BenchmarkAlign_Vectors8(b *testing.B) { benchmarkAlignVectors(b, 200, 8) }

// BenchmarkTraceback isolates the backward walk on a precomputed table.
func BenchmarkTraceback(b *testing.B) {
	x := signal.Pulse(300, 1)
	a, _ := frame.FromScalars(x)
	s, _ := frame.FromScalars(signal.Stretch(x, 0.8))
	cost, err := dtw.CostMatrix(a, s, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dtw.Traceback(cost); err != nil {
			b.Fatal(err)
		}
	}
}

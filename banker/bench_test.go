package banker_test

import (
	"testing"

	"github.com/veletrack/raillock/banker"
	"github.com/veletrack/raillock/core"
)

// BenchmarkIsSafe_32x64 measures the safety scan at full capacity:
// MaxTrains trains over MaxTracks tracks, all safe by construction
// (every train's need fits the free supply), which is the worst case for
// the restart-from-zero scan.
func BenchmarkIsSafe_32x64(b *testing.B) {
	s, err := core.New(core.MaxTrains, core.MaxTracks)
	if err != nil {
		b.Fatal(err)
	}

	// Each train holds one unit per track and may ask for one more; the
	// free supply covers exactly one request at a time.
	for j := 0; j < s.Tracks(); j++ {
		s.Available[j] = 1
	}
	for i := 0; i < s.Trains(); i++ {
		for j := 0; j < s.Tracks(); j++ {
			s.Allocation[i][j] = 1
			s.Maximum[i][j] = 2
		}
	}
	s.RecomputeNeed()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if safe, _ := banker.IsSafe(s); !safe {
			b.Fatal("expected safe state")
		}
	}
}

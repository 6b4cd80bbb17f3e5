package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veletrack/raillock/banker"
	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/scenario"
	"github.com/veletrack/raillock/wfg"
)

// assertInvariants checks the core state invariants any constructor must
// guarantee: derived Need, non-negative entries, Allocation ≤ Maximum.
func assertInvariants(t *testing.T, s *core.State) {
	t.Helper()

	for j := 0; j < s.Tracks(); j++ {
		assert.GreaterOrEqual(t, s.Available[j], 0)
	}
	for i := 0; i < s.Trains(); i++ {
		for j := 0; j < s.Tracks(); j++ {
			assert.GreaterOrEqual(t, s.Allocation[i][j], 0)
			assert.LessOrEqual(t, s.Allocation[i][j], s.Maximum[i][j])
			assert.Equal(t, s.Maximum[i][j]-s.Allocation[i][j], s.Need[i][j])
		}
	}
}

// TestSample_Layout pins the demonstration state's names and matrices.
func TestSample_Layout(t *testing.T) {
	s := scenario.Sample()

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, s.TrainNames)
	assert.Equal(t, []string{"T0", "T1", "T2", "T3", "T4"}, s.TrackNames)
	assert.Equal(t, []int{1, 1, 0, 1, 0}, s.Available)
	assertInvariants(t, s)

	// The sample starts without a deadlock cycle.
	found, _ := wfg.DetectCycle(wfg.Build(s))
	assert.False(t, found)
}

// TestRandom_SeededInvariants: a seeded generator yields invariant-true,
// reproducible states.
func TestRandom_SeededInvariants(t *testing.T) {
	s, err := scenario.Random(6, 6, 3, scenario.WithSeed(42))
	require.NoError(t, err)
	assertInvariants(t, s)

	again, err := scenario.Random(6, 6, 3, scenario.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, s.Equal(again), "same seed, same scenario")

	other, err := scenario.Random(6, 6, 3, scenario.WithSeed(43))
	require.NoError(t, err)
	assert.False(t, s.Equal(other), "different seed, different scenario")
}

// TestRandom_StatesAreUsable: generated states feed the algorithms without
// tripping their validation.
func TestRandom_StatesAreUsable(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s, err := scenario.Random(4, 5, 2, scenario.WithSeed(seed))
		require.NoError(t, err)

		// Both diagnostics must run cleanly over any generated state.
		_, _ = banker.IsSafe(s)
		_, _ = wfg.DetectCycle(wfg.Build(s))
		assertInvariants(t, s)
	}
}

// TestRandom_InvalidArguments covers bound validation.
func TestRandom_InvalidArguments(t *testing.T) {
	_, err := scenario.Random(4, 4, 0, scenario.WithSeed(1))
	assert.ErrorIs(t, err, scenario.ErrInvalidUnits)

	_, err = scenario.Random(0, 4, 2, scenario.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = scenario.Random(4, core.MaxTracks+1, 2, scenario.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

const validYAML = `
trains: [A, B]
tracks: [T0, T1]
available: [1, 0]
maximum:
  - [1, 1]
  - [0, 1]
allocation:
  - [0, 1]
  - [0, 0]
`

// TestParse_Valid builds a state with names, matrices, and derived Need.
func TestParse_Valid(t *testing.T) {
	s, err := scenario.Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, s.TrainNames)
	assert.Equal(t, []int{1, 0}, s.Available)
	assert.Equal(t, 1, s.Allocation[0][1])
	assert.Equal(t, 1, s.Need[0][0], "need must be derived, not read")
	assertInvariants(t, s)
}

// TestParse_Rejections: each invalid document trips its own sentinel.
func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "ragged maximum row",
			want: scenario.ErrBadShape,
			yaml: "trains: [A, B]\ntracks: [T0, T1]\navailable: [1, 0]\nmaximum: [[1, 1], [0]]\nallocation: [[0, 0], [0, 0]]",
		},
		{
			name: "available length mismatch",
			want: scenario.ErrBadShape,
			yaml: "trains: [A, B]\ntracks: [T0, T1]\navailable: [1]\nmaximum: [[1, 1], [0, 1]]\nallocation: [[0, 0], [0, 0]]",
		},
		{
			name: "negative allocation",
			want: scenario.ErrNegativeEntry,
			yaml: "trains: [A, B]\ntracks: [T0, T1]\navailable: [1, 0]\nmaximum: [[1, 1], [0, 1]]\nallocation: [[0, -1], [0, 0]]",
		},
		{
			name: "allocation above maximum",
			want: scenario.ErrAllocOverMax,
			yaml: "trains: [A, B]\ntracks: [T0, T1]\navailable: [1, 0]\nmaximum: [[1, 0], [0, 1]]\nallocation: [[0, 1], [0, 0]]",
		},
		{
			name: "no trains at all",
			want: core.ErrInvalidSize,
			yaml: "trains: []\ntracks: [T0]\navailable: [1]\nmaximum: []\nallocation: []",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scenario.Parse([]byte(tc.yaml))
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_Garbage: non-YAML input surfaces the decoder error.
func TestParse_Garbage(t *testing.T) {
	_, err := scenario.Parse([]byte("{not yaml"))
	assert.Error(t, err)
}

package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/internal/session"
	"github.com/veletrack/raillock/recovery"
	"github.com/veletrack/raillock/scenario"
)

// run scripts a full session: each line of script is one answer to one
// prompt. Returns the captured UI output and the session for state checks.
func run(t *testing.T, initial *core.State, script ...string) (string, *session.Session) {
	t.Helper()

	var out strings.Builder
	in := strings.NewReader(strings.Join(script, "\n") + "\n")

	ss, err := session.New(initial, in, &out, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, ss.Run())

	return out.String(), ss
}

// TestRun_QuitImmediately: the menu prints and "q" ends the loop.
func TestRun_QuitImmediately(t *testing.T) {
	out, _ := run(t, scenario.Sample(), "q")

	assert.Contains(t, out, "RAILWAY DEADLOCK SIMULATOR")
	assert.Contains(t, out, "Enter choice:")
	assert.Contains(t, out, "Goodbye.")
}

// TestRun_ShowState renders the allocation table.
func TestRun_ShowState(t *testing.T) {
	out, _ := run(t, scenario.Sample(), "4", "q")

	assert.Contains(t, out, "Trains:")
	assert.Contains(t, out, "Available:")
	assert.Contains(t, out, "A") // sample train name
}

// TestRun_RequestDeniedKeepsState: an over-need request is denied and the
// state stays untouched.
func TestRun_RequestDeniedKeepsState(t *testing.T) {
	initial := scenario.Sample()
	want := initial.Clone()

	// Menu 5, train 0, then a request far beyond its declared need.
	out, ss := run(t, initial, "5", "0", "9 9 9 9 9", "q")

	assert.Contains(t, out, "Request denied")
	assert.True(t, ss.State().Equal(want))
}

// TestRun_RequestGranted: train 1 takes its one outstanding unit.
func TestRun_RequestGranted(t *testing.T) {
	initial := scenario.Sample()
	// A unit of track 4 makes the sample state truly safe, so the grant
	// survives the safety check.
	initial.Available[4] = 1

	out, ss := run(t, initial, "5", "1", "0 0 0 1 0", "q")

	assert.Contains(t, out, "Request granted safely.")
	assert.Equal(t, 1, ss.State().Allocation[1][3])
	assert.Equal(t, 0, ss.State().Need[1][3])
}

// TestRun_TerminateThenRestore: the auto-checkpoint taken before a
// termination undoes it exactly.
func TestRun_TerminateThenRestore(t *testing.T) {
	initial := scenario.Sample()
	want := initial.Clone()

	// 7: terminate train 1 (auto-checkpoint slot 0), then 10: restore 0.
	out, ss := run(t, initial, "7", "1", "10", "0", "q")

	assert.Contains(t, out, "Train 1 terminated")
	assert.Contains(t, out, "pre-terminate")
	assert.Contains(t, out, "Restored checkpoint 0.")
	assert.True(t, ss.State().Equal(want))
}

// TestRun_Terminate renames the victim and frees its tracks.
func TestRun_Terminate(t *testing.T) {
	out, ss := run(t, scenario.Sample(), "7", "4", "q")

	assert.Contains(t, out, "Train 4 terminated")
	assert.Equal(t, recovery.RemovedName, ss.State().TrainNames[4])
	assert.Equal(t, 2, ss.State().Available[0], "train 4's unit of T0 returned")
}

// TestRun_Preempt takes back held units.
func TestRun_Preempt(t *testing.T) {
	out, ss := run(t, scenario.Sample(), "8", "2", "0 0 1 0 0", "q")

	assert.Contains(t, out, "Preemption done from train 2.")
	assert.Equal(t, 0, ss.State().Allocation[2][2])
	assert.Equal(t, 1, ss.State().Available[2])
}

// TestRun_DetectOnSample reports no cycle and the sample's unsafe verdict.
func TestRun_DetectOnSample(t *testing.T) {
	out, _ := run(t, scenario.Sample(), "6", "q")

	assert.Contains(t, out, "Wait-for graph")
	assert.Contains(t, out, "No deadlock cycle")
	assert.Contains(t, out, "UNSAFE state")
}

// TestRun_DetectDeadlock reports the cycle on a circular-wait state.
func TestRun_DetectDeadlock(t *testing.T) {
	s, err := core.New(2, 2)
	require.NoError(t, err)
	s.Maximum = [][]int{{1, 1}, {1, 1}}
	s.Allocation = [][]int{{1, 0}, {0, 1}}
	s.RecomputeNeed()

	out, _ := run(t, s, "6", "q")

	assert.Contains(t, out, "Deadlock detected! Cycle:")
	assert.Contains(t, out, "UNSAFE state")
}

// TestRun_ExportDOT writes the diagram to the prompted file.
func TestRun_ExportDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rag.dot")

	out, _ := run(t, scenario.Sample(), "11", path, "q")
	assert.Contains(t, out, "DOT exported to "+path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "digraph raillock {")
}

// TestRun_LoadScenarioFile swaps the live state for the file's.
func TestRun_LoadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"trains: [Solo]\ntracks: [T0]\navailable: [1]\nmaximum: [[1]]\nallocation: [[0]]\n",
	), 0o600))

	out, ss := run(t, scenario.Sample(), "3", path, "q")

	assert.Contains(t, out, "Scenario loaded.")
	assert.Equal(t, 1, ss.State().Trains())
	assert.Equal(t, "Solo", ss.State().TrainNames[0])
}

// TestRun_BadInputDoesNotCrash: junk menu choices and non-numeric answers
// cancel the action and keep the loop alive.
func TestRun_BadInputDoesNotCrash(t *testing.T) {
	out, ss := run(t, scenario.Sample(), "zzz", "5", "not-a-number", "4", "q")

	assert.Contains(t, out, "Unknown choice.")
	assert.Contains(t, out, "Not a number: not-a-number")
	assert.Contains(t, out, "Available:") // the later menu action still ran
	assert.NotNil(t, ss.State())
}

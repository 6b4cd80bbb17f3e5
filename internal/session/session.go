// Package session drives the interactive raillock front-end: it owns the
// live state and the checkpoint store, reads menu choices and prompts from
// its input stream, and dispatches to the core operations. All input and
// output flow through injected streams, so the whole loop is scriptable in
// tests.
//
// The session brackets every mutating action (request, terminate, preempt)
// with an automatic checkpoint so the user can undo it; a full store
// degrades to a warning rather than blocking the action.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/veletrack/raillock/banker"
	"github.com/veletrack/raillock/checkpoint"
	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/dot"
	"github.com/veletrack/raillock/internal/render"
	"github.com/veletrack/raillock/recovery"
	"github.com/veletrack/raillock/scenario"
	"github.com/veletrack/raillock/wfg"
)

// Auto-checkpoint labels for mutating menu actions.
const (
	labelPreRequest   = "pre-request"
	labelPreTerminate = "pre-terminate"
	labelPrePreempt   = "pre-preempt"
)

// Session holds the live state, the checkpoint store, and the I/O streams
// of one interactive run.
type Session struct {
	state *core.State
	store *checkpoint.Store
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.SugaredLogger
}

// New builds a session around an initial state. The store capacity follows
// checkpoint.MaxSlots, matching the original simulator's slot table.
func New(initial *core.State, in io.Reader, out io.Writer, log *zap.SugaredLogger) (*Session, error) {
	store, err := checkpoint.NewStore(checkpoint.MaxSlots)
	if err != nil {
		return nil, err
	}

	return &Session{
		state: initial,
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}, nil
}

// State exposes the live state (read-only use intended; primarily tests).
func (ss *Session) State() *core.State {
	return ss.state
}

// Run prints the menu, reads choices, and dispatches until the input ends
// or the user quits.
func (ss *Session) Run() error {
	fmt.Fprintln(ss.out, render.Title())

	for {
		fmt.Fprint(ss.out, render.Menu())

		choice, ok := ss.readLine()
		if !ok {
			return nil // input exhausted
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ss.state = scenario.Sample()
			ss.say(render.Good("Sample scenario loaded."))
		case "2":
			ss.handleRandom()
		case "3":
			ss.handleLoadFile()
		case "4":
			fmt.Fprint(ss.out, render.StateTable(ss.state))
		case "5":
			ss.handleRequest()
		case "6":
			ss.handleDetect()
		case "7":
			ss.handleTerminate()
		case "8":
			ss.handlePreempt()
		case "9":
			ss.handleSave()
		case "10":
			ss.handleRestore()
		case "11":
			ss.handleExport()
		case "q", "Q":
			fmt.Fprintln(ss.out, "Goodbye.")

			return nil
		default:
			ss.say(render.Bad("Unknown choice."))
		}
	}
}

// handleRandom reads sizes and regenerates the live state.
func (ss *Session) handleRandom() {
	trains, ok := ss.promptInt("Number of trains")
	if !ok {
		return
	}
	tracks, ok := ss.promptInt("Number of track sections")
	if !ok {
		return
	}
	units, ok := ss.promptInt("Max units per track")
	if !ok {
		return
	}

	s, err := scenario.Random(trains, tracks, units)
	if err != nil {
		ss.fail("random scenario", err)

		return
	}

	ss.state = s
	ss.log.Infow("random scenario generated", "trains", trains, "tracks", tracks, "max_units", units)
	ss.say(render.Good("Random scenario created."))
}

// handleLoadFile loads a YAML scenario from a prompted path.
func (ss *Session) handleLoadFile() {
	path, ok := ss.prompt("Scenario file path")
	if !ok {
		return
	}

	s, err := scenario.Load(path)
	if err != nil {
		ss.fail("load scenario", err)

		return
	}

	ss.state = s
	ss.log.Infow("scenario loaded", "path", path, "trains", s.Trains(), "tracks", s.Tracks())
	ss.say(render.Good("Scenario loaded."))
}

// handleRequest runs the Banker's request protocol for a prompted train.
func (ss *Session) handleRequest() {
	train, ok := ss.promptInt("Requesting train id")
	if !ok {
		return
	}
	req, ok := ss.promptVector("Requested units per track")
	if !ok {
		return
	}

	ss.autoCheckpoint(labelPreRequest)

	if err := banker.Request(ss.state, train, req); err != nil {
		ss.log.Warnw("request denied", "train", train, "error", err)
		ss.say(render.Bad("Request denied: " + err.Error()))

		return
	}

	ss.log.Infow("request granted", "train", train, "request", req)
	ss.say(render.Good("Request granted safely."))
}

// handleDetect runs both diagnostics: the wait-for cycle search and the
// independent (stronger) safety check.
func (ss *Session) handleDetect() {
	g := wfg.Build(ss.state)
	fmt.Fprint(ss.out, render.WaitFor(ss.state, g))

	if found, cycle := wfg.DetectCycle(g); found {
		ss.log.Warnw("deadlock cycle found", "cycle", cycle)
		ss.say(render.Cycle(ss.state, cycle))
	} else {
		ss.say(render.Good("No deadlock cycle in the wait-for graph."))
	}

	if safe, seq := banker.IsSafe(ss.state); safe {
		ss.say(render.Good("System is in a SAFE state (Banker's check)."))
		ss.say(render.SafeSequence(ss.state, seq))
	} else {
		ss.say(render.Bad("System is in an UNSAFE state (Banker's check)."))
	}
}

// handleTerminate releases everything a prompted train holds.
func (ss *Session) handleTerminate() {
	train, ok := ss.promptInt("Train id to terminate")
	if !ok {
		return
	}

	ss.autoCheckpoint(labelPreTerminate)

	if err := recovery.Terminate(ss.state, train); err != nil {
		ss.fail("terminate", err)

		return
	}

	ss.log.Infow("train terminated", "train", train)
	ss.say(render.Warn(fmt.Sprintf("Train %d terminated; its tracks were released.", train)))
}

// handlePreempt takes back a prompted per-track vector from a train.
func (ss *Session) handlePreempt() {
	train, ok := ss.promptInt("Victim train id")
	if !ok {
		return
	}
	take, ok := ss.promptVector("Units to preempt per track")
	if !ok {
		return
	}

	ss.autoCheckpoint(labelPrePreempt)

	if err := recovery.Preempt(ss.state, train, take); err != nil {
		ss.fail("preempt", err)

		return
	}

	ss.log.Infow("train preempted", "train", train, "take", take)
	ss.say(render.Warn(fmt.Sprintf("Preemption done from train %d.", train)))
}

// handleSave stores a labeled snapshot.
func (ss *Session) handleSave() {
	label, ok := ss.prompt("Checkpoint label")
	if !ok {
		return
	}

	id, err := ss.store.Save(ss.state, label)
	if err != nil {
		ss.fail("save checkpoint", err)

		return
	}

	ss.log.Infow("checkpoint saved", "slot", id, "label", label)
	ss.say(render.Good(fmt.Sprintf("Saved checkpoint %d.", id)))
}

// handleRestore lists slots and restores a prompted one.
func (ss *Session) handleRestore() {
	fmt.Fprint(ss.out, render.Checkpoints(ss.store.Slots()))

	id, ok := ss.promptInt("Checkpoint slot to restore")
	if !ok {
		return
	}

	if err := ss.store.Restore(id, ss.state); err != nil {
		ss.fail("restore checkpoint", err)

		return
	}

	ss.log.Infow("checkpoint restored", "slot", id)
	ss.say(render.Good(fmt.Sprintf("Restored checkpoint %d.", id)))
}

// handleExport writes the DOT document to a prompted file.
func (ss *Session) handleExport() {
	path, ok := ss.prompt("DOT output path")
	if !ok {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		ss.fail("export", err)

		return
	}
	defer f.Close()

	if err = dot.Export(f, ss.state, wfg.Build(ss.state)); err != nil {
		ss.fail("export", err)

		return
	}

	ss.log.Infow("dot exported", "path", path)
	ss.say(render.Good("DOT exported to " + path + ". Render with: dot -Tpng " + path))
}

// autoCheckpoint snapshots the live state before a mutating action. A full
// store is reported but never blocks the action itself.
func (ss *Session) autoCheckpoint(label string) {
	if _, err := ss.store.Save(ss.state, label); err != nil {
		if errors.Is(err, checkpoint.ErrNoFreeSlot) {
			ss.say(render.Warn("Checkpoint store is full; this action will not be undoable."))
		}
		ss.log.Warnw("auto-checkpoint failed", "label", label, "error", err)
	}
}

// say prints one styled line to the UI stream.
func (ss *Session) say(line string) {
	fmt.Fprintln(ss.out, line)
}

// fail reports an operation error to both the UI and the log.
func (ss *Session) fail(op string, err error) {
	ss.log.Errorw(op+" failed", "error", err)
	ss.say(render.Bad(strings.ToUpper(op[:1]) + op[1:] + " failed: " + err.Error()))
}

// readLine fetches the next input line; ok is false once input ends.
func (ss *Session) readLine() (string, bool) {
	if !ss.in.Scan() {
		return "", false
	}

	return ss.in.Text(), true
}

// prompt prints a prompt and reads one trimmed line.
func (ss *Session) prompt(label string) (string, bool) {
	fmt.Fprintf(ss.out, "%s: ", label)
	line, ok := ss.readLine()

	return strings.TrimSpace(line), ok
}

// promptInt prompts for a single integer; a malformed answer cancels the
// current action rather than crashing the loop.
func (ss *Session) promptInt(label string) (int, bool) {
	line, ok := ss.prompt(label)
	if !ok {
		return 0, false
	}

	v, err := strconv.Atoi(line)
	if err != nil {
		ss.say(render.Bad("Not a number: " + line))

		return 0, false
	}

	return v, true
}

// promptVector prompts for space-separated units, one per track.
func (ss *Session) promptVector(label string) ([]int, bool) {
	line, ok := ss.prompt(fmt.Sprintf("%s (%d values)", label, ss.state.Tracks()))
	if !ok {
		return nil, false
	}

	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			ss.say(render.Bad("Not a number: " + field))

			return nil, false
		}
		out = append(out, v)
	}

	return out, true
}

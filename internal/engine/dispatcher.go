// Package engine implements the keyboard remap state machine: the toggle
// key, suppression of the engine's own injected events, table lookup and
// modifier compensation. It has no OS dependencies; the hook, key-state
// query and input submission are supplied by the caller.
package engine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"keyshift/internal/keys"
	"keyshift/internal/log"
	"keyshift/internal/remap"
)

// Verdict tells the hook what to do with an event.
type Verdict int

const (
	// Forward passes the event to the next hook in the chain.
	Forward Verdict = iota
	// Consume swallows the event.
	Consume
)

func (v Verdict) String() string {
	if v == Consume {
		return "consume"
	}
	return "forward"
}

// Config selects the keys the Dispatcher is built around.
type Config struct {
	// Toggle is the physical key that drives the remap modifier.
	Toggle keys.Code
	// Modifier is an otherwise unused key whose held state gates remapping.
	Modifier keys.Code
	// Table is the remap table.
	Table *remap.Table
}

// DefaultConfig drives F22 from Caps Lock over the built-in table.
func DefaultConfig() Config {
	return Config{
		Toggle:   keys.Capital,
		Modifier: keys.F22,
		Table:    remap.Default(),
	}
}

// Dispatcher decides the fate of every keyboard event. Handle must return
// quickly: the OS drops hooks that stall.
type Dispatcher struct {
	cfg     Config
	guard   *Guard
	state   KeyState
	emitter *Emitter
	logger  *slog.Logger
	enabled atomic.Bool
}

// NewDispatcher wires a Dispatcher. The guard is owned by the caller and
// lives as long as the process.
func NewDispatcher(cfg Config, guard *Guard, state KeyState, emitter *Emitter, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		guard:   guard,
		state:   state,
		emitter: emitter,
		logger:  logger,
	}
	d.enabled.Store(true)
	return d
}

// Handle classifies ev. Rules are evaluated in order and the first match
// decides.
func (d *Dispatcher) Handle(ev keys.Event) Verdict {
	v := d.handle(ev)
	if d.logger.Enabled(context.Background(), log.LevelTrace) {
		d.logger.Log(context.Background(), log.LevelTrace, "Key event", "event", ev.String(), "verdict", v.String())
	}
	return v
}

func (d *Dispatcher) handle(ev keys.Event) Verdict {
	if !d.enabled.Load() {
		// Tickets are still spent while paused so none outlive the pause.
		d.guard.Take(ev.Code)
		return Forward
	}

	// Only the physical toggle key drives the modifier; an injected Caps
	// Lock from the table must reach the OS.
	if ev.Code == d.cfg.Toggle && !ev.Injected {
		d.toggle(ev.Release)
		return Consume
	}

	if d.guard.Take(ev.Code) {
		return Forward
	}

	if !d.state.IsHeld(d.cfg.Modifier) {
		return Forward
	}
	actions, ok := d.cfg.Table.Lookup(ev.Code)
	if !ok {
		return Forward
	}

	if len(actions) > 1 {
		// Chords fire on the press edge only; the trigger's release is
		// swallowed without output.
		if !ev.Release {
			d.fireChord(actions)
		}
		return Consume
	}

	d.emitter.Emit(actions[0].Code, ev.Release)
	return Consume
}

func (d *Dispatcher) toggle(release bool) {
	if !release {
		d.emitter.Emit(d.cfg.Modifier, false)
		return
	}

	strokes := []keys.Stroke{{Code: d.cfg.Modifier, Release: true}}
	for _, m := range keys.Modifiers {
		if d.state.IsHeld(m) {
			strokes = append(strokes, keys.Stroke{Code: m, Release: true})
		}
	}
	if len(strokes) > 1 {
		d.logger.Debug("Releasing held modifiers with remap modifier", "count", len(strokes)-1)
	}
	d.emitter.EmitStrokes(strokes)
}

func (d *Dispatcher) fireChord(actions []remap.Action) {
	seq := Compensate(actions, d.state)
	codes := make([]keys.Code, len(seq))
	for i, a := range seq {
		codes[i] = a.Code
	}

	// Tickets must exist before the injected events loop back.
	d.guard.Add(codes...)
	n := d.emitter.EmitActions(seq, false)
	if n < len(codes) {
		d.guard.Cancel(codes[max(n, 0):]...)
	}
}

// SetEnabled pauses or resumes remapping. While paused every event is
// forwarded. Pausing with the remap modifier held releases it.
func (d *Dispatcher) SetEnabled(on bool) {
	if d.enabled.Swap(on) == on {
		return
	}
	d.logger.Info("Remapping toggled", "enabled", on)
	if !on && d.state.IsHeld(d.cfg.Modifier) {
		d.emitter.Emit(d.cfg.Modifier, true)
	}
}

// Enabled reports whether remapping is active.
func (d *Dispatcher) Enabled() bool {
	return d.enabled.Load()
}

package engine

import (
	"errors"
	"slices"

	"keyshift/internal/keys"
	"keyshift/internal/log"
	"keyshift/internal/remap"
)

var errBlocked = errors.New("input blocked")

// fakeOS stands in for the keyboard hook, GetAsyncKeyState and SendInput.
// With loopback set, submitted strokes are delivered back into the
// dispatcher as injected events before Submit returns, the way the real
// hook sees them.
type fakeOS struct {
	d        *Dispatcher
	held     map[keys.Code]bool
	batches  [][]keys.Stroke
	loopback bool
	limit    int // max strokes accepted per Submit, -1 for no limit

	forwarded []keys.Event
	consumed  []keys.Event
}

func newFakeOS(table *remap.Table, loopback bool) *fakeOS {
	o := &fakeOS{held: map[keys.Code]bool{}, loopback: loopback, limit: -1}
	cfg := Config{Toggle: keys.Capital, Modifier: keys.F22, Table: table}
	o.d = NewDispatcher(cfg, NewGuard(), o, NewEmitter(o, log.Discard()), log.Discard())
	return o
}

func (o *fakeOS) IsHeld(code keys.Code) bool {
	return o.held[code]
}

func (o *fakeOS) Submit(strokes []keys.Stroke) (int, error) {
	o.batches = append(o.batches, slices.Clone(strokes))
	n := len(strokes)
	if o.limit >= 0 && n > o.limit {
		n = o.limit
	}
	if o.loopback {
		for _, s := range strokes[:n] {
			o.deliver(keys.Event{Code: s.Code, Release: s.Release, Injected: true})
		}
	}
	if n < len(strokes) {
		return n, errBlocked
	}
	return n, nil
}

// deliver runs ev through the dispatcher; forwarded events update the
// key state as the OS would.
func (o *fakeOS) deliver(ev keys.Event) Verdict {
	v := o.d.Handle(ev)
	if v == Forward {
		o.forwarded = append(o.forwarded, ev)
		o.held[ev.Code] = !ev.Release
	} else {
		o.consumed = append(o.consumed, ev)
	}
	return v
}

func (o *fakeOS) press(c keys.Code) Verdict {
	return o.deliver(keys.Event{Code: c})
}

func (o *fakeOS) release(c keys.Code) Verdict {
	return o.deliver(keys.Event{Code: c, Release: true})
}

// activate presses the toggle key and clears the recorded output.
func (o *fakeOS) activate() {
	o.press(keys.Capital)
	o.held[keys.F22] = true
	o.reset()
}

func (o *fakeOS) reset() {
	o.batches = nil
	o.forwarded = nil
	o.consumed = nil
}

func down(c keys.Code) keys.Stroke { return keys.Stroke{Code: c} }
func up(c keys.Code) keys.Stroke   { return keys.Stroke{Code: c, Release: true} }

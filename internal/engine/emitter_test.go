package engine

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"keyshift/internal/keys"
	"keyshift/internal/log"
	"keyshift/internal/remap"
)

func TestEmitActionsResolvesAgainstTrigger(t *testing.T) {
	o := newFakeOS(testTable(), false)
	e := NewEmitter(o, log.Discard())

	actions := []remap.Action{remap.Press(keys.LShift), remap.Follow(keys.F10), remap.Release(keys.LShift)}
	assert.Equal(t, 3, e.EmitActions(actions, true))
	assert.Equal(t, [][]keys.Stroke{{down(keys.LShift), up(keys.F10), up(keys.LShift)}}, o.batches)
}

func TestEmitEmptyBatch(t *testing.T) {
	o := newFakeOS(testTable(), false)
	e := NewEmitter(o, log.Discard())

	assert.Equal(t, 0, e.EmitStrokes(nil))
	assert.Empty(t, o.batches)
}

func TestEmitRejectsWideCodeBeforeSubmitting(t *testing.T) {
	o := newFakeOS(testTable(), false)
	e := NewEmitter(o, log.Discard())

	assert.Panics(t, func() {
		e.EmitStrokes([]keys.Stroke{down(keys.LControl), down(0x1_0000)})
	})
	assert.Empty(t, o.batches, "nothing of the batch may be injected")
}

func TestEmitLogsPartialSubmission(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	o := newFakeOS(testTable(), false)
	o.limit = 1
	e := NewEmitter(o, logger)

	assert.Equal(t, 1, e.EmitStrokes([]keys.Stroke{down(keys.LControl), up(keys.LControl)}))
	assert.Contains(t, buf.String(), "Partial input submission")
	assert.Contains(t, buf.String(), "requested=2")
	assert.Contains(t, buf.String(), "submitted=1")
}

package remap

import (
	"errors"
	"fmt"
	"slices"

	"keyshift/internal/keys"
)

// ErrEmptyEntry is returned for a trigger mapped to no actions.
var ErrEmptyEntry = errors.New("remap entry has no actions")

// Table maps trigger codes to ordered, non-empty action sequences. A Table
// is immutable once built and safe for concurrent use.
type Table struct {
	entries map[keys.Code][]Action
}

// NewTable validates and copies entries.
func NewTable(entries map[keys.Code][]Action) (*Table, error) {
	t := &Table{entries: make(map[keys.Code][]Action, len(entries))}
	for trigger, actions := range entries {
		if err := trigger.Check(); err != nil {
			return nil, fmt.Errorf("trigger %s: %w", trigger, err)
		}
		if len(actions) == 0 {
			return nil, fmt.Errorf("trigger %s: %w", trigger, ErrEmptyEntry)
		}
		for i, a := range actions {
			if err := a.Code.Check(); err != nil {
				return nil, fmt.Errorf("trigger %s action %d: %w", trigger, i, err)
			}
		}
		t.entries[trigger] = slices.Clone(actions)
	}
	return t, nil
}

// MustTable is NewTable for compiled-in tables; an invalid table is a
// build defect and panics.
func MustTable(entries map[keys.Code][]Action) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the actions for trigger. The returned slice is shared and
// must not be modified.
func (t *Table) Lookup(trigger keys.Code) ([]Action, bool) {
	actions, ok := t.entries[trigger]
	return actions, ok
}

// Len returns the number of triggers.
func (t *Table) Len() int {
	return len(t.entries)
}

// Triggers returns all trigger codes in ascending order.
func (t *Table) Triggers() []keys.Code {
	out := make([]keys.Code, 0, len(t.entries))
	for c := range t.entries {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

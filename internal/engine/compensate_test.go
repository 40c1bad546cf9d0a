package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keyshift/internal/keys"
	"keyshift/internal/remap"
)

type heldKeys map[keys.Code]bool

func (h heldKeys) IsHeld(c keys.Code) bool { return h[c] }

func TestCompensate(t *testing.T) {
	find := []remap.Action{
		remap.Press(keys.LControl), remap.Press(keys.F), remap.Release(keys.F), remap.Release(keys.LControl),
	}

	cases := []struct {
		name string
		held heldKeys
		want []remap.Action
	}{
		{
			name: "nothing held",
			held: heldKeys{},
			want: find,
		},
		{
			name: "left shift held",
			held: heldKeys{keys.LShift: true},
			want: append([]remap.Action{remap.Press(keys.LShift), remap.Release(keys.LShift)}, find...),
		},
		{
			name: "later modifier ends up first",
			held: heldKeys{keys.LShift: true, keys.RControl: true},
			want: append([]remap.Action{
				remap.Press(keys.RControl), remap.Release(keys.RControl),
				remap.Press(keys.LShift), remap.Release(keys.LShift),
			}, find...),
		},
		{
			name: "non modifiers ignored",
			held: heldKeys{keys.LWin: true, keys.F22: true},
			want: find,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compensate(find, tc.held))
		})
	}
}

func TestCompensateLeavesInputAlone(t *testing.T) {
	in := []remap.Action{remap.Press(keys.LControl), remap.Release(keys.LControl)}
	all := heldKeys{}
	for _, m := range keys.Modifiers {
		all[m] = true
	}

	out := Compensate(in, all)
	assert.Len(t, out, len(in)+2*len(keys.Modifiers))
	assert.Equal(t, []remap.Action{remap.Press(keys.LControl), remap.Release(keys.LControl)}, in)
	assert.Equal(t, remap.Press(keys.RMenu), out[0])
	assert.Equal(t, in, out[len(out)-2:])
}

package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"keyshift/internal/keys"
)

func TestGuardSingleUseTickets(t *testing.T) {
	g := NewGuard()
	g.Add(keys.LControl, keys.X, keys.X, keys.LControl)
	assert.Equal(t, 4, g.Len())

	assert.True(t, g.Take(keys.X))
	assert.True(t, g.Take(keys.X))
	assert.False(t, g.Take(keys.X), "two tickets, two takes")

	assert.False(t, g.Take(keys.C))
	assert.Equal(t, 2, g.Len())
}

func TestGuardCancel(t *testing.T) {
	g := NewGuard()
	g.Add(keys.F, keys.F, keys.LShift)

	g.Cancel(keys.F, keys.LShift, keys.Z)
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Take(keys.F))
	assert.Equal(t, 0, g.Len())
}

func TestGuardConcurrent(t *testing.T) {
	g := NewGuard()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Add(keys.V)
		}()
	}
	wg.Wait()
	assert.Equal(t, n, g.Len())

	var taken sync.WaitGroup
	var mu sync.Mutex
	hits := 0
	for i := 0; i < n+10; i++ {
		taken.Add(1)
		go func() {
			defer taken.Done()
			if g.Take(keys.V) {
				mu.Lock()
				hits++
				mu.Unlock()
			}
		}()
	}
	taken.Wait()
	assert.Equal(t, n, hits)
	assert.Equal(t, 0, g.Len())
}

package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SlotsAreStable(t *testing.T) {
	r := NewRegistry()
	assert.Same(t, r.Int(KeyBounces), r.Int(KeyBounces))
	assert.Same(t, r.Float(KeyFPS), r.Float(KeyFPS))
	assert.NotSame(t, r.Int(KeyBounces), r.Int(KeyRuns))
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Int(KeyBounces).Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), r.Int(KeyBounces).Load())
}

func TestAtomicFloat_Smooth(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 60.0, f.Smooth(60, 0.1))
	assert.InDelta(t, 58.0, f.Smooth(40, 0.1), 1e-9)

	f.Set(10)
	assert.Equal(t, 10.0, f.Get())
}

func TestKeyNames(t *testing.T) {
	seen := make(map[string]bool)
	for k := Key(0); k < keyCount; k++ {
		name := k.String()
		require.NotEmpty(t, name, "key %d has no name", k)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", keyCount.String())
	assert.Equal(t, "unknown", Key(-1).String())
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Int(KeyStars).Store(3)
	r.Int(KeyEnemies).Store(7)
	r.Float(KeyFPS).Set(59.94)

	snap := r.Snapshot()
	require.Len(t, snap, int(keyCount))
	assert.Equal(t, Metric{Key: "fps", Value: "59.9"}, snap[KeyFPS])
	assert.Equal(t, Metric{Key: "entities.enemies", Value: "7"}, snap[KeyEnemies])
	assert.Equal(t, Metric{Key: "entities.stars", Value: "3"}, snap[KeyStars])
	assert.Equal(t, Metric{Key: "runs", Value: "0"}, snap[KeyRuns])
}

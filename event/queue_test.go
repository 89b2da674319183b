package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/parameter"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventStarCollected, Frame: 1})
	q.Push(GameEvent{Type: EventScoreChanged, Frame: 2})
	q.Push(GameEvent{Type: EventGameOver, Frame: 3})
	assert.Equal(t, 3, q.Len())

	events := q.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventStarCollected, events[0].Type)
	assert.Equal(t, EventScoreChanged, events[1].Type)
	assert.Equal(t, EventGameOver, events[2].Type)

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueue_OverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(10), events[0].Frame)
	assert.Equal(t, int64(total-1), events[len(events)-1].Frame)
	assert.Equal(t, uint64(10), q.Dropped())

	// Wrapped ring is reset by Consume
	q.Push(GameEvent{Type: EventGameOver, Frame: 99})
	events = q.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, int64(99), events[0].Frame)
}

func TestEventQueue_ConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventSoundRequest})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), producers*perProducer)
}

func TestEventTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		name := et.String()
		assert.NotEqual(t, "Unknown", name)

		back, ok := GetEventType(name)
		require.True(t, ok, name)
		assert.Equal(t, et, back)
	}
	assert.Equal(t, "Unknown", EventType(999).String())
}

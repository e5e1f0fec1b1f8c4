package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { order = append(order, "b") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "other") }))

	d.Dispatch(Event{Type: WaveEnded, Data: WaveInfo{Index: 2}})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first, second := &recorder{}, &recorder{}
	d.SubscribeAll(first, TowerPlaced, TowerSold)
	d.Subscribe(TowerPlaced, second)

	d.Unsubscribe(TowerPlaced, first)
	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: TowerSold})

	assert.Len(t, first.got, 1)
	assert.Equal(t, TowerSold, first.got[0].Type)
	assert.Len(t, second.got, 1)
}

func TestDispatchWithoutListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDispatcher().Dispatch(Event{Type: GameOver})
	})
}

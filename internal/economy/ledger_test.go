package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/event"
)

func TestLedgerDebit(t *testing.T) {
	l := NewLedger(40)
	assert.False(t, l.CanAfford(50))
	err := l.Debit(50)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 40.0, l.Balance())

	assert.True(t, l.CanAfford(40))
	require.NoError(t, l.Debit(40))
	assert.Equal(t, 0.0, l.Balance())

	l.Credit(15)
	assert.Equal(t, 15.0, l.Balance())
}

func TestSellRefund(t *testing.T) {
	tests := []struct {
		name    string
		build   float64
		level   int
		upgrade float64
		want    float64
	}{
		{"fresh basic", 50, 1, 75, 35},
		{"basic level 3", 50, 3, 75, 140},
		{"sniper level 2", 80, 2, 110, 133},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SellRefund(tt.build, tt.level, tt.upgrade), 1e-9)
		})
	}
}

func TestLedgerCreditsBounty(t *testing.T) {
	l := NewLedger(100)
	d := event.NewDispatcher()
	d.SubscribeAll(l, event.EnemyKilled, event.EnemyReachedBase)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyResolved{
		Outcome: component.EnemyOutcome{Kind: component.OutcomeDead, Bounty: 25},
	}})
	d.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyResolved{
		Outcome: component.EnemyOutcome{Kind: component.OutcomeReachedBase, Damage: 3},
	}})

	assert.Equal(t, 125.0, l.Balance())
}

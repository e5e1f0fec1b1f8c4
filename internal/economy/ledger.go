// Package economy holds the player's currency.
package economy

import (
	"errors"
	"fmt"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/event"
)

var ErrInsufficientFunds = errors.New("economy: insufficient funds")

// Ledger is the player's balance. It credits bounties from EnemyKilled events.
type Ledger struct {
	balance float64
}

func NewLedger(balance float64) *Ledger {
	return &Ledger{balance: balance}
}

func (l *Ledger) Balance() float64 {
	return l.balance
}

func (l *Ledger) CanAfford(cost float64) bool {
	return l.balance >= cost
}

// Debit takes cost from the balance, or fails leaving it unchanged.
func (l *Ledger) Debit(cost float64) error {
	if !l.CanAfford(cost) {
		return fmt.Errorf("%w: need %.0f, have %.0f", ErrInsufficientFunds, cost, l.balance)
	}
	l.balance -= cost
	return nil
}

func (l *Ledger) Credit(amount float64) {
	l.balance += amount
}

func (l *Ledger) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if r, ok := e.Data.(event.EnemyResolved); ok {
		l.Credit(r.Outcome.Bounty)
	}
}

// SellRefund is the money returned for a tower: its cumulative investment
// times the refund factor.
func SellRefund(buildCost float64, level int, upgradeCost float64) float64 {
	return (buildCost + float64(level-1)*upgradeCost) * config.RefundFactor
}

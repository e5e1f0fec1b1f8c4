package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/defs"
)

func TestStrategies(t *testing.T) {
	a := enemyAt(1, 50, 0, 30)
	b := enemyAt(2, 10, 0, 90)
	c := enemyAt(3, -10, 0, 90)
	d := enemyAt(4, 0, 40, 10)
	candidates := []*Enemy{a, b, c, d}

	tests := []struct {
		strategy defs.Strategy
		want     *Enemy
	}{
		{defs.StrategyFirst, a},
		{defs.StrategyClosest, c},   // b and c tie on distance, later wins
		{defs.StrategyStrongest, c}, // b and c tie on health, later wins
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			s, err := StrategyFor(tt.strategy)
			require.NoError(t, err)
			assert.Same(t, tt.want, s.Select(Position{}, candidates))
			assert.Nil(t, s.Select(Position{}, nil))
		})
	}
}

func TestInRange(t *testing.T) {
	near := enemyAt(1, 30, 40, 10) // distance 50
	far := enemyAt(2, 60, 80, 10)  // distance 100
	dead := enemyAt(3, 1, 1, 10)
	dead.Remove()

	got := InRange(Position{}, 50, []*Enemy{far, dead, near})
	assert.Equal(t, []*Enemy{near}, got)
	assert.Len(t, InRange(Position{}, 100, []*Enemy{far, dead, near}), 2)
}

func TestTowerTargetUsesStrategy(t *testing.T) {
	tower := newTestTower(t, defs.TowerSniper, Position{})
	weak := enemyAt(1, 10, 0, 10)
	strong := enemyAt(2, 150, 0, 500)
	outOfRange := enemyAt(3, 400, 0, 9000)

	assert.Same(t, strong, tower.Target([]*Enemy{weak, strong, outOfRange}))
}

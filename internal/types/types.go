// internal/types/types.go
package types

// EntityID identifies an enemy, tower or projectile for the lifetime of a game.
// Zero is never allocated.
type EntityID uint64

package entity

import (
	"math"

	"github.com/samdwyer/backrooms/internal/world"
)

const (
	// EnemySpeed is how far an enemy moves per axis per reference frame.
	EnemySpeed = 0.75
	// ContactRadius is the distance in pixels at which an enemy hurts.
	ContactRadius = 12.0
	// Knockback is how far a hit pushes the player on each axis.
	Knockback = 16.0
)

// Enemy is a hostile wanderer. Its ID is stable and keys its save file.
type Enemy struct {
	ID    int
	Chunk world.ChunkCoord
	Pos   world.Vec2
}

// NewEnemy creates an enemy at pos in chunk.
func NewEnemy(id int, chunk world.ChunkCoord, pos world.Vec2) *Enemy {
	return &Enemy{
		ID:    id,
		Chunk: chunk,
		Pos:   pos,
	}
}

// Active reports whether the enemy shares the resident chunk. Enemies
// elsewhere are inert.
func (e *Enemy) Active(current world.ChunkCoord) bool {
	return e.Chunk == current
}

// ChasePlayer steps toward the player on each axis. Returns false when the
// enemy is inert.
func (e *Enemy) ChasePlayer(p *Player, current world.ChunkCoord, frameScale float64) bool {
	if !e.Active(current) {
		return false
	}
	step := EnemySpeed * frameScale
	e.Pos.X += step * sign(p.Pos.X-e.Pos.X)
	e.Pos.Y += step * sign(p.Pos.Y-e.Pos.Y)
	return true
}

// DamagePlayer hurts the player by one and knocks them back when they are
// in contact. There is no cooldown: every call in contact costs health.
func (e *Enemy) DamagePlayer(p *Player, current world.ChunkCoord) bool {
	if !e.Active(current) {
		return false
	}
	dx := p.Pos.X - e.Pos.X
	dy := p.Pos.Y - e.Pos.Y
	if math.Hypot(dx, dy) >= ContactRadius {
		return false
	}
	p.TakeDamage(1)
	p.Move(Knockback*sign(dx), Knockback*sign(dy))
	return true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Package entity provides the player and the enemies that hunt them.
package entity

import "github.com/samdwyer/backrooms/internal/world"

const (
	// MaxHealth is the health of a fresh player.
	MaxHealth = 10
	// MaxStamina is the stamina of a fresh player.
	MaxStamina = 100.0

	// WalkSpeed and SprintSpeed are pixels per reference frame.
	WalkSpeed   = 1.0
	SprintSpeed = 2.5

	staminaDrain = 1.0
	staminaRegen = 0.5
)

// Camera follow band, in screen pixels. The camera scrolls while the
// player's sprite is outside it.
const (
	cameraLeft   = 64
	cameraRight  = 192
	cameraTop    = 64
	cameraBottom = 144
)

// spriteOffset is where the player's sprite is drawn relative to its feet.
var spriteOffset = world.Vec2{X: -8, Y: -24}

// Player is the explorer trying to leave the maze.
type Player struct {
	Chunk   world.ChunkCoord // Resident chunk
	Pos     world.Vec2       // Chunk-local position in pixels
	Camera  world.Vec2       // Scroll offset of the view
	Stamina float64
	Health  int
}

// NewPlayer creates a rested player at pos in chunk, with the camera
// centred on them.
func NewPlayer(chunk world.ChunkCoord, pos world.Vec2) *Player {
	return &Player{
		Chunk:   chunk,
		Pos:     pos,
		Camera:  world.Vec2{X: pos.X - 128, Y: pos.Y - 112},
		Stamina: MaxStamina,
		Health:  MaxHealth,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy float64) {
	p.Pos.X += dx
	p.Pos.Y += dy
}

// IsAlive returns true if the player has health left.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// TakeDamage removes health, never going below zero. Returns the damage dealt.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Speed returns this frame's step in pixels and updates stamina. Sprinting
// drains stamina and falls back to walking once it runs out.
func (p *Player) Speed(sprint bool, frameScale float64) float64 {
	if sprint && p.Stamina > 0 {
		p.Stamina -= staminaDrain * frameScale
		if p.Stamina < 0 {
			p.Stamina = 0
		}
		return SprintSpeed * frameScale
	}
	p.Stamina += staminaRegen * frameScale
	if p.Stamina > MaxStamina {
		p.Stamina = MaxStamina
	}
	return WalkSpeed * frameScale
}

// FollowCamera scrolls the camera by step toward the player whenever their
// sprite leaves the follow band.
func (p *Player) FollowCamera(step float64) {
	sx := p.Pos.X + spriteOffset.X - p.Camera.X
	sy := p.Pos.Y + spriteOffset.Y - p.Camera.Y

	if sx > cameraRight {
		p.Camera.X += step
	}
	if sx < cameraLeft {
		p.Camera.X -= step
	}
	if sy > cameraBottom {
		p.Camera.Y += step
	}
	if sy < cameraTop {
		p.Camera.Y -= step
	}
}

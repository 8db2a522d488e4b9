package entity

import (
	"testing"

	"github.com/samdwyer/backrooms/internal/world"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(world.ChunkCoord{X: 3, Y: 3}, world.Vec2{X: 520, Y: 520})
	if p.Health != MaxHealth {
		t.Errorf("Health = %d, want %d", p.Health, MaxHealth)
	}
	if p.Stamina != MaxStamina {
		t.Errorf("Stamina = %v, want %v", p.Stamina, MaxStamina)
	}

	// A fresh camera must not scroll.
	cam := p.Camera
	p.FollowCamera(1)
	if p.Camera != cam {
		t.Errorf("camera scrolled from %+v to %+v on a fresh player", cam, p.Camera)
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p := NewPlayer(world.ChunkCoord{}, world.Vec2{})
	p.Health = 2

	if got := p.TakeDamage(5); got != 2 {
		t.Errorf("TakeDamage(5) = %d, want 2", got)
	}
	if p.IsAlive() {
		t.Error("IsAlive() = true at 0 health")
	}
	if got := p.TakeDamage(-1); got != 0 {
		t.Errorf("TakeDamage(-1) = %d, want 0", got)
	}
}

func TestPlayerSpeed(t *testing.T) {
	p := NewPlayer(world.ChunkCoord{}, world.Vec2{})

	if got := p.Speed(false, 1); got != WalkSpeed {
		t.Errorf("Speed(walk) = %v, want %v", got, WalkSpeed)
	}
	if got := p.Speed(true, 2); got != SprintSpeed*2 {
		t.Errorf("Speed(sprint, 2) = %v, want %v", got, SprintSpeed*2)
	}
	if p.Stamina != MaxStamina-2 {
		t.Errorf("Stamina = %v, want %v", p.Stamina, MaxStamina-2)
	}

	p.Stamina = 0
	if got := p.Speed(true, 1); got != WalkSpeed {
		t.Errorf("Speed(sprint) without stamina = %v, want %v", got, WalkSpeed)
	}
	if p.Stamina != staminaRegen {
		t.Errorf("Stamina = %v, want %v after walking", p.Stamina, staminaRegen)
	}
}

func TestFollowCamera(t *testing.T) {
	tests := []struct {
		name string
		pos  world.Vec2
		want world.Vec2
	}{
		{"inside band", world.Vec2{X: 128, Y: 112}, world.Vec2{}},
		{"right edge", world.Vec2{X: 210, Y: 112}, world.Vec2{X: 2}},
		{"left edge", world.Vec2{X: 60, Y: 112}, world.Vec2{X: -2}},
		{"bottom edge", world.Vec2{X: 128, Y: 180}, world.Vec2{Y: 2}},
		{"top edge", world.Vec2{X: 128, Y: 80}, world.Vec2{Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Pos: tt.pos}
			p.FollowCamera(2)
			if p.Camera != tt.want {
				t.Errorf("Camera = %+v, want %+v", p.Camera, tt.want)
			}
		})
	}
}

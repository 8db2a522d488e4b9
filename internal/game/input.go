package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// holdWindow is how long a key counts as held after its last press or
// repeat. Terminals report no key releases.
const holdWindow = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	numDirections
)

// heldKeys approximates held movement keys from press and repeat events.
type heldKeys struct {
	last   [numDirections]time.Time
	sprint time.Time
}

func (h *heldKeys) press(d direction, sprint bool, now time.Time) {
	h.last[d] = now
	if sprint {
		h.sprint = now
	}
}

func (h *heldKeys) held(t, now time.Time) bool {
	return !t.IsZero() && now.Sub(t) < holdWindow
}

// input returns the movement request for a tick at now.
func (h *heldKeys) input(now time.Time) Input {
	var in Input
	if h.held(h.last[dirUp], now) {
		in.Intent.Y--
	}
	if h.held(h.last[dirDown], now) {
		in.Intent.Y++
	}
	if h.held(h.last[dirLeft], now) {
		in.Intent.X--
	}
	if h.held(h.last[dirRight], now) {
		in.Intent.X++
	}
	in.Sprint = h.held(h.sprint, now)
	return in
}

// keyDirection maps arrow keys and WASD to a direction. Shift or an
// upper-case letter requests a sprint.
func keyDirection(ev *tcell.EventKey) (d direction, sprint, ok bool) {
	sprint = ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, sprint, true
	case tcell.KeyDown:
		return dirDown, sprint, true
	case tcell.KeyLeft:
		return dirLeft, sprint, true
	case tcell.KeyRight:
		return dirRight, sprint, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'w', 'W':
			d = dirUp
		case 's', 'S':
			d = dirDown
		case 'a', 'A':
			d = dirLeft
		case 'd', 'D':
			d = dirRight
		default:
			return 0, false, false
		}
		return d, sprint || (r >= 'A' && r <= 'Z'), true
	}
	return 0, false, false
}


package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/backrooms/internal/storage"
	"github.com/samdwyer/backrooms/internal/telemetry"
	"github.com/samdwyer/backrooms/internal/ui"
)

const tickRate = time.Second / 60

// Game holds the entire game state.
type Game struct {
	cfg      Config
	store    storage.Store
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	clock    FrameClock
	keys     heldKeys
	running  bool
}

// New creates a new game instance backed by store.
func New(cfg Config, store storage.Store) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		store:    store,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go g.forwardEvents(events, done)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for g.running {
		select {
		case ev := <-events:
			g.handleEvent(ev)
		case now := <-ticker.C:
			if err := g.tick(ctx, now); err != nil {
				return err
			}
		}
	}

	return g.finish(ctx)
}

// init loads the saved world, generating one first if there is none.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	saved, err := storage.HasSavedMap(ctx, g.store)
	if err != nil {
		return err
	}
	if g.cfg.NewMap || !saved {
		p, err := ParamsFromConfig(g.cfg)
		if err != nil {
			return err
		}
		var rng *rand.Rand
		if g.cfg.Seed != 0 {
			rng = rand.New(rand.NewSource(g.cfg.Seed))
		}
		g.renderer.RenderMessage("Generating map...", 0)
		stats, err := GenerateWorld(ctx, g.store, p, rng, func(ph Phase) {
			g.renderer.RenderMessage(fmt.Sprintf("Generating map: %s", ph), 0)
		})
		if err != nil {
			return fmt.Errorf("failed to generate map: %w", err)
		}
		span.SetAttributes(
			attribute.Int("world.map_size", stats.MapSize),
			attribute.Int("world.enemies", stats.Enemies),
		)
	}

	g.session, err = NewSession(ctx, g.store)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("session.id", g.session.ID))
	return nil
}

// forwardEvents polls the terminal on its own goroutine. All game state is
// touched only by the loop in Run.
func (g *Game) forwardEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	if g.session.State.Over() {
		g.running = false
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		}
	}

	if d, sprint, ok := keyDirection(ev); ok {
		g.keys.press(d, sprint, ev.When())
	}
}

// tick advances the session and redraws.
func (g *Game) tick(ctx context.Context, now time.Time) error {
	scale := g.clock.Tick(now)
	if !g.session.State.Over() {
		if _, err := g.session.Step(ctx, g.keys.input(now), scale); err != nil {
			return err
		}
	}

	p := g.session.Player
	nav := g.session.Navigator()
	g.renderer.Render(ui.Frame{
		Tiles:   nav.Viewport(p.Camera.X, p.Camera.Y, ui.ViewCols, ui.ViewRows),
		Shade:   nav.ShadeViewport(p.Camera.X, p.Camera.Y, ui.ViewCols, ui.ViewRows),
		Camera:  p.Camera,
		Player:  p,
		Enemies: g.session.Enemies,
		Status:  statusLine(g.session.State),
	})
	return nil
}

func statusLine(s State) string {
	switch s {
	case StateWon:
		return "You found the way out. Press any key."
	case StateDead:
		return "You did not make it. Press any key."
	default:
		return ""
	}
}

// finish saves an unfinished run, or clears the store once the run has
// ended so the next start generates a new map.
func (g *Game) finish(ctx context.Context) error {
	if g.session.State.Over() {
		return g.store.Reset(ctx)
	}
	if err := g.session.Save(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

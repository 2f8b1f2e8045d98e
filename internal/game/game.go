package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snake/internal/audio"
	"github.com/samdwyer/snake/internal/board"
	"github.com/samdwyer/snake/internal/canvas"
	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/grid"
	"github.com/samdwyer/snake/internal/snake"
	"github.com/samdwyer/snake/internal/telemetry"
	"github.com/samdwyer/snake/internal/ui"
)

// ErrTerminalTooSmall is returned when the board and status line do not fit the terminal.
var ErrTerminalTooSmall = errors.New("terminal too small")

// inputSource yields the keys pressed since the previous poll.
type inputSource interface {
	Poll() ui.Keys
}

// statusRenderer draws the line of text under the board.
type statusRenderer interface {
	RenderStatus(length int, over bool)
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	board    *board.Board
	snake    *snake.Snake
	palette  gamedata.Palette
	surface  canvas.Surface
	renderer statusRenderer
	input    inputSource
	sound    *audio.Sound
	screen   *ui.Screen // nil when running headless
	state    State
	ticks    int
	eaten    int
}

// New creates a game drawing to the terminal.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	// Before the screen takes over the terminal, so the warning stays readable
	sound := audio.NewSound()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Not fatal - play without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		sound.Close()
		return nil, err
	}

	renderer := ui.NewRenderer(screen, palette.Status)
	keyboard := ui.NewKeyboard(screen.Events(), screen.Sync)

	g, err := newGame(cfg, palette, newRandom(cfg.Seed), screen, renderer, keyboard)
	if err != nil {
		sound.Close()
		screen.Close()
		return nil, err
	}
	g.screen = screen
	g.sound = sound

	screen.Configure(ui.Projection{
		WidthPx:   g.board.Width(),
		HeightPx:  g.board.Height(),
		PixelSize: g.board.PixelSize(),
	})
	if !renderer.FitsBoard() {
		g.Close()
		return nil, fmt.Errorf("%w: need %d columns and %d rows",
			ErrTerminalTooSmall, screen.Projection().Columns(), screen.Projection().Rows()+1)
	}

	return g, nil
}

// newGame wires the game state to the given collaborators without touching the terminal.
func newGame(cfg Config, palette gamedata.Palette, rng snake.Random, surface canvas.Surface,
	renderer statusRenderer, input inputSource) (*Game, error) {
	b, err := board.New(cfg.Width, cfg.Height, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s, err := snake.New(b.Rows(), grid.Cell{X: cfg.StartX, Y: cfg.StartY}, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Game{
		cfg:      cfg,
		board:    b,
		snake:    s,
		palette:  palette,
		surface:  surface,
		renderer: renderer,
		input:    input,
		sound:    audio.NewSound(),
		state:    StateRunning,
	}, nil
}

// newRandom returns a food placement source. Seed 0 picks a time-based seed.
func newRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Run executes the main game loop until the snake collides with itself,
// the player quits or ctx is cancelled. The terminal is released on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(
		attribute.Int("board.rows", g.board.Rows()),
		attribute.Int("board.pixel_size", g.board.PixelSize()),
		attribute.Int("game.tick_rate", g.cfg.TickRate),
		attribute.Int64("game.seed", g.cfg.Seed),
	)
	defer span.End()

	g.render()

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	for g.state == StateRunning {
		select {
		case <-ctx.Done():
			g.state = StateQuit
		case <-ticker.C:
			keys := g.input.Poll()
			if keys.Quit {
				g.state = StateQuit
				continue
			}
			g.applyKeys(keys)
			g.step(ctx)
		}
	}

	span.SetAttributes(
		attribute.String("game.outcome", g.state.String()),
		attribute.Int("game.ticks", g.ticks),
		attribute.Int("snake.length", g.snake.Length()),
	)

	if g.state == StateCollided {
		g.gameOver(ctx)
	}
	return nil
}

// applyKeys turns pressed keys into direction changes. Every request is checked
// against the heading of the last tick, so two quick presses cannot reverse the snake.
func (g *Game) applyKeys(keys ui.Keys) {
	if keys.Left {
		g.snake.SetDirection(snake.Left)
	}
	if keys.Right {
		g.snake.SetDirection(snake.Right)
	}
	if keys.Up {
		g.snake.SetDirection(snake.Up)
	}
	if keys.Down {
		g.snake.SetDirection(snake.Down)
	}
}

// step advances the snake once, draws the frame and checks for a collision.
func (g *Game) step(ctx context.Context) {
	if g.snake.Tick() {
		g.eaten++
		g.sound.PlayEat()
		trace.SpanFromContext(ctx).AddEvent("snake.eat", trace.WithAttributes(
			attribute.Int("snake.length", g.snake.Length()),
			attribute.Int("food.x", g.snake.Food().X),
			attribute.Int("food.y", g.snake.Food().Y),
		))
	}
	g.ticks++

	if g.snake.CheckCollision() {
		g.state = StateCollided
	}
	g.render()
}

// render draws the board, the snake and the status line, then presents the frame.
func (g *Game) render() {
	g.board.Render(g.surface, g.palette.Background, g.palette.GridLine)
	g.snake.Render(g.surface, g.board.PixelSize(), g.palette)
	g.renderer.RenderStatus(g.snake.Length(), g.state == StateCollided)
	g.surface.Present()
}

// gameOver records the final result and holds the last frame on screen.
func (g *Game) gameOver(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.Int("snake.length", g.snake.Length()),
		attribute.Int("snake.food_eaten", g.eaten),
		attribute.Int("game.ticks", g.ticks),
	)
	span.End()

	g.sound.PlayGameOver()

	if g.cfg.GameOverHold <= 0 {
		return
	}
	timer := time.NewTimer(g.cfg.GameOverHold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return g.snake.Length()
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	g.sound.Close()
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}

package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/snake/internal/board"
	"github.com/samdwyer/snake/internal/grid"
	"github.com/samdwyer/snake/internal/snake"
)

// ErrInvalidConfig is returned when configuration values cannot produce a playable game.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by LoadConfig.
const (
	envWidth        = "SNAKE_WIDTH"
	envHeight       = "SNAKE_HEIGHT"
	envRows         = "SNAKE_ROWS"
	envStartX       = "SNAKE_START_X"
	envStartY       = "SNAKE_START_Y"
	envTickRate     = "SNAKE_TICK_RATE"
	envSeed         = "SNAKE_SEED"
	envSound        = "SNAKE_SOUND"
	envGameOverHold = "SNAKE_GAME_OVER_HOLD"
)

// Config holds game configuration options.
type Config struct {
	Width  int // Board width in pixels
	Height int // Board height in pixels
	Rows   int // Cells along each side

	StartX, StartY int // Initial head cell

	// TickRate is the number of simulation steps per second.
	TickRate int

	// Seed for food placement. A seed of 0 means a random seed will be generated.
	Seed int64

	Sound bool

	// GameOverHold is how long the final frame stays up after a collision.
	GameOverHold time.Duration
}

// DefaultConfig returns the classic 500x500 board with 20 rows at 8 ticks per second.
func DefaultConfig() Config {
	return Config{
		Width:        board.DefaultWidth,
		Height:       board.DefaultHeight,
		Rows:         board.DefaultRows,
		StartX:       snake.DefaultStartX,
		StartY:       snake.DefaultStartY,
		TickRate:     8,
		GameOverHold: 2 * time.Second,
	}
}

// LoadConfig starts from DefaultConfig and applies any SNAKE_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{envWidth, &cfg.Width},
		{envHeight, &cfg.Height},
		{envRows, &cfg.Rows},
		{envStartX, &cfg.StartX},
		{envStartY, &cfg.StartY},
		{envTickRate, &cfg.TickRate},
	}
	for _, v := range ints {
		if err := lookupInt(v.key, v.dst); err != nil {
			return cfg, err
		}
	}

	if s, ok := os.LookupEnv(envSeed); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envSeed, s, err)
		}
		cfg.Seed = seed
	}

	if s, ok := os.LookupEnv(envSound); ok && s != "" {
		sound, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envSound, s, err)
		}
		cfg.Sound = sound
	}

	if s, ok := os.LookupEnv(envGameOverHold); ok && s != "" {
		hold, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envGameOverHold, s, err)
		}
		cfg.GameOverHold = hold
	}

	return cfg, cfg.Validate()
}

func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, s, err)
	}
	*dst = v
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if _, err := board.New(c.Width, c.Height, c.Rows); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !(grid.Cell{X: c.StartX, Y: c.StartY}).Within(c.Rows) {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.StartX, c.StartY, c.Rows, c.Rows)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.TickInterval() <= 0 {
		return fmt.Errorf("%w: tick rate %d is faster than the clock resolution", ErrInvalidConfig, c.TickRate)
	}
	if c.GameOverHold < 0 {
		return fmt.Errorf("%w: game over hold must not be negative, got %v", ErrInvalidConfig, c.GameOverHold)
	}
	return nil
}

// TickInterval returns the time between simulation steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/averycrespi/calcpad/internal/calculator"
	"github.com/averycrespi/calcpad/pkg/types"
)

var ErrNoKeys = errors.New("no keys to press")

// Step records the display after one key press
type Step struct {
	Key     rune
	Display string
}

// PressOutcome is the result of pressing a sequence of keys
type PressOutcome struct {
	Steps   []Step
	Display string
}

// Session serializes access to one calculator engine
type Session struct {
	name   string
	engine types.Calculator
	logger *slog.Logger
	mu     sync.Mutex
}

func newSession(name string, logger *slog.Logger) *Session {
	s := &Session{
		name:   name,
		logger: logger.With("calculator", name),
	}
	s.engine = s.newEngine()
	return s
}

func (s *Session) newEngine() types.Calculator {
	return calculator.New(calculator.WithLogger(s.logger))
}

// Name returns the calculator name
func (s *Session) Name() string {
	return s.name
}

// PressKeys presses every key in order and records the display after each
func (s *Session) PressKeys(keys string) (PressOutcome, error) {
	if keys == "" {
		return PressOutcome{}, ErrNoKeys
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var outcome PressOutcome
	for _, key := range keys {
		s.engine.Press(key)
		// Reading the display rewrites it, which would change how the
		// next digit is appended. Normalize a copy instead.
		outcome.Steps = append(outcome.Steps, Step{
			Key:     key,
			Display: calculator.NormalizeDisplay(s.engine.Snapshot().Display),
		})
	}
	outcome.Display = s.engine.Display()

	s.logger.Debug("Pressed keys", "keys", keys, "display", outcome.Display)
	return outcome, nil
}

// Display returns the current display text
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Display()
}

// Snapshot returns a copy of the calculator registers
func (s *Session) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Snapshot()
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine = s.newEngine()
}

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"
)

// DefaultName is used when a caller does not name a calculator
const DefaultName = "default"

var (
	ErrInvalidName     = errors.New("invalid calculator name")
	ErrTooManySessions = errors.New("too many calculators")

	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
)

// Manager manages the lifecycle of named calculators
type Manager struct {
	sessions map[string]*Session
	limit    int
	logger   *slog.Logger
	mu       sync.RWMutex
}

// NewManager creates a manager holding at most limit calculators
func NewManager(limit int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		limit:    limit,
		logger:   logger,
	}
}

// Get returns the named calculator, creating it on first use
func (m *Manager) Get(name string) (*Session, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	s, ok := m.sessions[name]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := m.sessions[name]; ok {
		return s, nil
	}
	if len(m.sessions) >= m.limit {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, m.limit)
	}

	m.logger.Debug("Creating calculator", "calculator", name)
	s = newSession(name, m.logger)
	m.sessions[name] = s
	return s, nil
}

// Reset replaces the named calculator's engine with a new one, clearing
// memory as well as every other register
func (m *Manager) Reset(name string) (*Session, error) {
	s, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	s.reset()
	m.logger.Info("Calculator reset", "calculator", s.Name())
	return s, nil
}

// Names returns the names of all calculators in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.sessions))
	for name := range m.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Limit returns the maximum number of calculators
func (m *Manager) Limit() int {
	return m.limit
}

func normalizeName(name string) (string, error) {
	if name == "" {
		return DefaultName, nil
	}
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

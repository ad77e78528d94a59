package session

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(limit int) *Manager {
	return NewManager(limit, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestManager_Get(t *testing.T) {
	m := newTestManager(4)

	s, err := m.Get("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, s.Name())

	again, err := m.Get(DefaultName)
	require.NoError(t, err)
	assert.Same(t, s, again)

	other, err := m.Get("scratch_2")
	require.NoError(t, err)
	assert.NotSame(t, s, other)

	assert.Equal(t, []string{DefaultName, "scratch_2"}, m.Names())
}

func TestManager_GetInvalidName(t *testing.T) {
	m := newTestManager(4)

	for _, name := range []string{"has space", "slash/name", strings.Repeat("a", 33), "dot.name"} {
		_, err := m.Get(name)
		assert.True(t, errors.Is(err, ErrInvalidName), "name %q", name)
	}
	assert.Empty(t, m.Names())
}

func TestManager_Limit(t *testing.T) {
	m := newTestManager(2)

	_, err := m.Get("a")
	require.NoError(t, err)
	_, err = m.Get("b")
	require.NoError(t, err)

	_, err = m.Get("c")
	assert.True(t, errors.Is(err, ErrTooManySessions))

	// Existing calculators are still reachable at the limit.
	_, err = m.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Limit())
}

func TestManager_ResetClearsMemory(t *testing.T) {
	m := newTestManager(4)

	s, err := m.Get("mem")
	require.NoError(t, err)
	_, err = s.PressKeys("7POG")
	require.NoError(t, err)
	require.Equal(t, "7", s.Snapshot().Memory)

	reset, err := m.Reset("mem")
	require.NoError(t, err)
	assert.Same(t, s, reset)
	assert.Equal(t, "", s.Snapshot().Memory)

	outcome, err := s.PressKeys("G")
	require.NoError(t, err)
	assert.Equal(t, "0", outcome.Display)
}

func TestSession_PressKeys(t *testing.T) {
	m := newTestManager(1)
	s, err := m.Get("")
	require.NoError(t, err)

	outcome, err := s.PressKeys("5+3=")
	require.NoError(t, err)

	assert.Equal(t, "8", outcome.Display)
	assert.Equal(t, []Step{
		{Key: '5', Display: "5"},
		{Key: '+', Display: "5"},
		{Key: '3', Display: "53"},
		{Key: '=', Display: "8"},
	}, outcome.Steps)
	assert.Equal(t, "8", s.Display())
}

func TestSession_PressKeysInvalid(t *testing.T) {
	m := newTestManager(1)
	s, err := m.Get("")
	require.NoError(t, err)

	outcome, err := s.PressKeys("1x")
	require.NoError(t, err)
	assert.Equal(t, "-E-", outcome.Display)
	assert.Equal(t, Step{Key: 'x', Display: "-E-"}, outcome.Steps[1])

	_, err = s.PressKeys("")
	assert.True(t, errors.Is(err, ErrNoKeys))
}

func TestSession_TraceDoesNotChangeEntry(t *testing.T) {
	// The trace must not normalize the live display, otherwise "7,0" would
	// turn into "7" before the next digit arrives.
	m := newTestManager(1)
	s, err := m.Get("")
	require.NoError(t, err)

	outcome, err := s.PressKeys("7,01")
	require.NoError(t, err)
	assert.Equal(t, "7", outcome.Steps[2].Display)
	assert.Equal(t, "7,01", outcome.Display)
}

func TestSession_ConcurrentPresses(t *testing.T) {
	m := newTestManager(1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := m.Get("shared")
			if assert.NoError(t, err) {
				_, err = s.PressKeys("1")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	s, err := m.Get("shared")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("1", 20), s.Snapshot().FirstOperand)
	assert.Equal(t, strings.Repeat("1", 20), s.Display())
}

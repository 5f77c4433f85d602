package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"minichess/internal/minichess"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps the games of one process in memory.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame registers a game from the simplified start position.
func (m *Manager) NewGame() *GameState {
	return m.NewGameFrom(minichess.NewInitialBoard(), minichess.Light)
}

// NewGameFrom registers a game starting from b; the manager takes ownership of b.
func (m *Manager) NewGameFrom(b *minichess.Board, toMove minichess.Side) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		ToMove:    toMove,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Update runs fn on the game under the manager lock.
func (m *Manager) Update(id string, fn func(g *GameState)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	fn(g)
	g.UpdatedAt = time.Now()
	return nil
}

// List returns all games, oldest first.
func (m *Manager) List() []*GameState {
	m.mu.RLock()
	out := make([]*GameState, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

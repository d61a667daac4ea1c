package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"minichess/internal/chess"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 用摆子段开新局，placement 为空时用标准开局。白先。
func (m *Manager) NewGame(placement string) GameState {
	pos := chess.NewPosition()
	if placement != "" {
		pos = chess.FromPlacement(placement)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       pos,
		ToMove:    chess.White,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.snapshot()
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.snapshot(), nil
}

// Play 只接受当前走子方的伪合法走法（不检查将军）。
func (m *Manager) Play(id string, mv chess.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	legal := false
	for _, lm := range g.Pos.Moves(g.ToMove) {
		if lm == mv {
			legal = true
			break
		}
	}
	if !legal {
		return GameState{}, fmt.Errorf("%w: %s", ErrIllegalMove, mv)
	}

	next, err := g.Pos.ApplyMove(mv)
	if err != nil {
		return GameState{}, err
	}
	g.Pos = next
	g.ToMove = g.ToMove.Opposite()
	g.History = append(g.History, mv)
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

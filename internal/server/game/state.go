package game

import (
	"time"

	"minichess/internal/chess"
)

// GameState 对局快照。Position 只会被整体替换，不会原地修改。
type GameState struct {
	ID        string
	Pos       *chess.Position
	ToMove    chess.Color
	History   []chess.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) snapshot() GameState {
	cp := *g
	cp.History = append([]chess.Move(nil), g.History...)
	return cp
}

package httpserver

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"minichess/internal/chess"
	"minichess/internal/server/game"
)

// NewGameRequest 可选摆子段，空则标准开局
type NewGameRequest struct {
	Placement string `json:"placement"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

// GameResponse 用于 new_game / state / play
type GameResponse struct {
	GameID  string   `json:"game_id"`
	FEN     string   `json:"fen"`
	ToMove  string   `json:"to_move"`
	Moves   []string `json:"moves"` // 走子方所有伪合法走法，"e2e4" 形式
	History []string `json:"history"`
	Board   string   `json:"board"`
}

type DestinationsRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type Destinations struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

// DestinationsResponse square 为空时列出走子方所有有走法的棋子
type DestinationsResponse struct {
	Origins []Destinations `json:"origins"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type SearchRequest struct {
	GameID   string `json:"game_id"`
	Depth    int    `json:"depth"`
	Parallel bool   `json:"parallel"`
	TimeMs   int64  `json:"time_ms"`
}

type SearchResponse struct {
	Score    int    `json:"score"`
	BestMove string `json:"best_move,omitempty"`
	Depth    int    `json:"depth"`
	Leaves   int64  `json:"leaves"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func gameToResponse(g game.GameState) GameResponse {
	return GameResponse{
		GameID:  g.ID,
		FEN:     g.Pos.FEN(),
		ToMove:  g.ToMove.String(),
		Moves:   movesToStrings(g.Pos.Moves(g.ToMove)),
		History: movesToStrings(g.History),
		Board:   g.Pos.String(),
	}
}

func movesToStrings(ms []chess.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func squaresToStrings(ss []chess.Square) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}

// 按起点排序后展开，保证输出稳定
func destinationsToDTO(all map[chess.Square][]chess.Square) []Destinations {
	keys := maps.Keys(all)
	slices.Sort(keys)
	out := make([]Destinations, 0, len(keys))
	for _, from := range keys {
		out = append(out, Destinations{
			Square:       from.String(),
			Destinations: squaresToStrings(all[from]),
		})
	}
	return out
}

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"minichess/internal/chess"
	"minichess/internal/engine"
	"minichess/internal/server/game"
)

const (
	defaultSearchDepth = 2
	// 不剪枝的全树搜索，深度稍大就会跑很久
	defaultMaxDepth = 4
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games    *game.Manager
	MaxDepth int
}

func NewHandler(games *game.Manager) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games, MaxDepth: defaultMaxDepth}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/board.svg" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleBoardSVG(w, r)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/destinations":
		h.handleDestinations(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/search":
		h.handleSearch(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 允许空 body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	g := h.games.NewGame(req.Placement)
	log.Printf("new game %s: %s", g.ID, g.Pos.Placement())
	writeJSON(w, gameToResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, gameToResponse(g))
}

func (h *Handler) handleDestinations(w http.ResponseWriter, r *http.Request) {
	var req DestinationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	if req.Square == "" {
		writeJSON(w, DestinationsResponse{Origins: destinationsToDTO(g.Pos.AllDestinations(g.ToMove))})
		return
	}
	sq, err := chess.ParseSquare(req.Square)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dst, err := g.Pos.Destinations(sq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, DestinationsResponse{Origins: []Destinations{{
		Square:       sq.String(),
		Destinations: squaresToStrings(dst),
	}}})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	mv, err := chess.ParseMove(req.Move)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g, err := h.games.Play(req.GameID, mv)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, gameToResponse(g))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	depth := req.Depth
	if depth <= 0 {
		depth = defaultSearchDepth
	}
	if h.MaxDepth > 0 && depth > h.MaxDepth {
		writeError(w, http.StatusBadRequest, "depth too large")
		return
	}
	cfg := engine.SearchConfig{
		Depth:      depth,
		Maximizing: g.ToMove == chess.White,
		Parallel:   req.Parallel,
	}
	if req.TimeMs > 0 {
		cfg.TimeLimit = time.Duration(req.TimeMs) * time.Millisecond
	}

	// 每个请求一个 Engine，计数互不干扰
	res, err := engine.NewEngine().SearchRoot(r.Context(), g.Pos, cfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusGatewayTimeout, "search timed out")
			return
		}
		log.Printf("search %s: %v", g.ID, err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	resp := SearchResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Leaves: res.Leaves,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
	}
	if res.HasMove {
		resp.BestMove = res.BestMove.String()
	}
	writeJSON(w, resp)
}

func (h *Handler) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	g.Pos.RenderSVG(w)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		log.Println("writeError error:", err)
	}
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrIllegalMove):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("game error:", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

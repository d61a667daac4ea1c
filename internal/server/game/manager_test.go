package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"minichess/internal/chess"
)

func TestNewGameAndPlay(t *testing.T) {
	m := NewManager()
	g := m.NewGame("")
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("game id %q is not a uuid: %v", g.ID, err)
	}
	if g.Pos.Placement() != chess.StartPlacement || g.ToMove != chess.White {
		t.Fatalf("new game: placement=%q to_move=%s", g.Pos.Placement(), g.ToMove)
	}

	mv, _ := chess.ParseMove("e2e4")
	after, err := m.Play(g.ID, mv)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if after.ToMove != chess.Black || len(after.History) != 1 {
		t.Fatalf("after play: to_move=%s history=%d", after.ToMove, len(after.History))
	}
	// 旧快照不受影响
	if g.Pos.Placement() != chess.StartPlacement {
		t.Fatalf("old snapshot changed: %q", g.Pos.Placement())
	}

	// 白方的走法轮到黑方时不合法
	mv2, _ := chess.ParseMove("d2d4")
	if _, err := m.Play(g.ID, mv2); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("wrong side: got err=%v", err)
	}
	mv3, _ := chess.ParseMove("e7e5")
	if _, err := m.Play(g.ID, mv3); err != nil {
		t.Fatalf("black reply: %v", err)
	}
	got, err := m.Get(g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"; got.Pos.Placement() != want {
		t.Fatalf("placement: got=%q want=%q", got.Pos.Placement(), want)
	}
}

func TestNewGameFromPlacement(t *testing.T) {
	m := NewManager()
	g := m.NewGame("8/8/8/8/3R4/8/8/8")
	if got := len(g.Pos.Moves(chess.White)); got != 14 {
		t.Fatalf("moves: got=%d want=14", got)
	}
}

func TestUnknownGame(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("get: got err=%v", err)
	}
	mv, _ := chess.ParseMove("e2e4")
	if _, err := m.Play("nope", mv); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("play: got err=%v", err)
	}
	g := m.NewGame("")
	m.Delete(g.ID)
	if m.Len() != 0 {
		t.Fatalf("len after delete: got=%d", m.Len())
	}
}

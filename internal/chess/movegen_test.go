package chess

import (
	"errors"
	"testing"
)

func sq(t *testing.T, s string) Square {
	t.Helper()
	v, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func squaresString(ss []Square) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += " "
		}
		out += s.String()
	}
	return out
}

func TestDestinations(t *testing.T) {
	cases := []struct {
		name      string
		placement string
		from      string
		want      string // 空格分隔，按生成顺序
	}{
		{"lone rook d4", "8/8/8/8/3R4/8/8/8", "d4", "d5 d6 d7 d8 d3 d2 d1 e4 f4 g4 h4 c4 b4 a4"},
		{"lone knight a1", "8/8/8/8/8/8/8/N7", "a1", "b3 c2"},
		{"knight center", "8/8/8/8/3N4/8/8/8", "d4", "e6 f5 f3 e2 c2 b3 b5 c6"},
		{"knight own pieces excluded", "8/8/8/8/8/1P6/2p5/N7", "a1", "c2"},
		{"pawn home rank with captures", "8/8/8/8/8/3p1p2/4P3/8", "e2", "e3 e4 d3 f3"},
		{"pawn blocked", "8/8/8/8/8/4p3/4P3/8", "e2", ""},
		{"pawn double blocked", "8/8/8/8/4p3/8/4P3/8", "e2", "e3"},
		{"pawn off home rank", "8/8/8/8/8/4P3/8/8", "e3", "e4"},
		{"pawn a file capture", "8/8/8/8/8/1p6/P7/8", "a2", "a3 a4 b3"},
		{"pawn does not capture own", "8/8/8/8/8/3P1P2/4P3/8", "e2", "e3 e4"},
		{"pawn last rank", "4P3/8/8/8/8/8/8/8", "e8", ""},
		{"black pawn home rank", "8/3p4/8/8/8/8/8/8", "d7", "d6 d5"},
		{"black pawn capture", "8/8/8/8/8/8/3p4/2P1P3", "d2", "d1 c1 e1"},
		{"bishop blocked and capture", "8/8/8/8/8/8/1p1P4/2B5", "c1", "b2"},
		{"rook stops at own and captures", "8/8/8/8/8/P7/8/R1r5", "a1", "a2 b1 c1"},
		{"king corner", "8/8/8/8/8/8/8/K7", "a1", "a2 b1 b2"},
		{"king own neighbours", "8/8/8/8/8/8/Pp6/K7", "a1", "b1 b2"},
		{"empty square", "8/8/8/8/8/8/8/8", "e4", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := FromPlacement(tc.placement)
			got, err := pos.Destinations(sq(t, tc.from))
			if err != nil {
				t.Fatalf("destinations: %v", err)
			}
			if squaresString(got) != tc.want {
				t.Fatalf("got=%q want=%q", squaresString(got), tc.want)
			}
		})
	}
}

func TestDestinationCounts(t *testing.T) {
	cases := []struct {
		placement string
		from      string
		want      int
	}{
		{"8/8/8/8/3R4/8/8/8", "d4", 14},
		{"8/8/8/8/8/8/8/N7", "a1", 2},
		{"8/8/8/8/3Q4/8/8/8", "d4", 27},
		{"8/8/8/8/3B4/8/8/8", "d4", 13},
		{"8/8/8/8/3K4/8/8/8", "d4", 8},
		{"8/8/8/8/8/8/8/R7", "a1", 14},
	}
	for _, tc := range cases {
		pos := FromPlacement(tc.placement)
		got, err := pos.Destinations(sq(t, tc.from))
		if err != nil {
			t.Fatalf("destinations: %v", err)
		}
		if len(got) != tc.want {
			t.Errorf("%s at %s: got=%d want=%d", tc.placement, tc.from, len(got), tc.want)
		}
	}
}

func TestIsCapturable(t *testing.T) {
	pos := FromPlacement("7r/8/8/8/8/3pp3/1N2P3/R2p4")
	cases := []struct {
		from, to string
		want     bool
	}{
		{"b2", "e2", false}, // 同色
		{"a1", "b2", false}, // 同色
		{"a1", "a5", false}, // 目标为空
		{"e2", "e4", false}, // 目标为空
		{"e2", "e3", false}, // 兵不能直吃
		{"e2", "d3", true},
		{"e2", "d1", false}, // 兵不能向后吃
		{"a1", "h8", true},  // 非兵不管几何
		{"b2", "d1", true},
		{"d3", "e2", true}, // 黑兵向下斜吃
		{"d3", "e3", false},
		{"c5", "d3", false}, // 空格不能吃
	}
	for _, tc := range cases {
		got, err := pos.IsCapturable(sq(t, tc.from), sq(t, tc.to))
		if err != nil {
			t.Fatalf("%s->%s: %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Errorf("%s->%s: got=%v want=%v", tc.from, tc.to, got, tc.want)
		}
	}
	if _, err := pos.IsCapturable(NewSquare(9, 0), sq(t, "a1")); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("invalid square: got err=%v", err)
	}
}

func TestAllDestinationsStartPosition(t *testing.T) {
	pos := NewPosition()
	for _, c := range []Color{White, Black} {
		all := pos.AllDestinations(c)
		if len(all) != 10 {
			t.Fatalf("%s origins: got=%d want=10", c, len(all))
		}
		total := 0
		for from, dst := range all {
			if len(dst) == 0 {
				t.Fatalf("%s: empty entry for %s", c, from)
			}
			total += len(dst)
		}
		if total != 20 {
			t.Fatalf("%s destinations: got=%d want=20", c, total)
		}
		if got := len(pos.Moves(c)); got != 20 {
			t.Fatalf("%s moves: got=%d want=20", c, got)
		}
		if got := pos.CountMoves(c); got != 20 {
			t.Fatalf("%s count: got=%d want=20", c, got)
		}
	}
	if got := pos.AllDestinations(NoColor); len(got) != 0 {
		t.Fatalf("no color: got=%d entries", len(got))
	}
}

func TestMovesFollowPieceListOrder(t *testing.T) {
	pos := FromPlacement("8/8/8/8/8/8/8/N6N")
	moves := pos.Moves(White)
	// 列表顺序 = 导入顺序：a1 先于 h1
	want := "a1b3 a1c2 h1f2 h1g3"
	got := ""
	for i, m := range moves {
		if i > 0 {
			got += " "
		}
		got += m.String()
	}
	if got != want {
		t.Fatalf("moves: got=%q want=%q", got, want)
	}
}

package chess

type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type Kind int8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{Empty: '-', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "empty"
}

// Piece 记录种类、颜色以及最后一次被放置的格子。
// 空格的 Color 固定为 NoColor。
type Piece struct {
	Kind   Kind
	Color  Color
	Square Square
}

func NewPiece(color Color, kind Kind) Piece {
	if kind == Empty || color == NoColor {
		return Piece{}
	}
	return Piece{Kind: kind, Color: color}
}

func (p Piece) IsEmpty() bool { return p.Kind == Empty }

// Letter 返回 FEN 字母：白方大写，黑方小写，空格为 0。
func (p Piece) Letter() byte {
	if p.Kind == Empty {
		return 0
	}
	c := kindLetters[p.Kind]
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

func pieceFromLetter(ch byte) (Piece, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == ch {
			return NewPiece(color, k), true
		}
	}
	return Piece{}, false
}

// Move 只有起止格，不带升变/易位信息。
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove 解析 "e2e4" 形式的坐标招法。
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, ErrInvalidMove
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, ErrInvalidMove
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, ErrInvalidMove
	}
	return Move{From: from, To: to}, nil
}

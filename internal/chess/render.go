package chess

import (
	"io"
	"strings"
)

var glyphs = [3][7]string{
	White: {Pawn: "♙", Knight: "♘", Bishop: "♗", Rook: "♖", Queen: "♕", King: "♔"},
	Black: {Pawn: "♟", Knight: "♞", Bishop: "♝", Rook: "♜", Queen: "♛", King: "♚"},
}

// Glyph 返回棋子的 Unicode 符号，空格返回 "-"。
func (p Piece) Glyph() string {
	if p.Kind == Empty || p.Color == NoColor {
		return "-"
	}
	return glyphs[p.Color][p.Kind]
}

// Render 从第 8 行到第 1 行打印棋盘，最后一行是列标。
func (p *Position) Render(w io.Writer) error {
	_, err := io.WriteString(w, p.String())
	return err
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < Files; file++ {
			sb.WriteByte(' ')
			sb.WriteString(p.squares[NewSquare(file, rank)].Glyph())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

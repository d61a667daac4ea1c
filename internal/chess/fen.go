package chess

import "strings"

const (
	StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

	// FENSuffix 是固定后缀。局面不记录走子方、易位权和计数，
	// 所以输出的 FEN 永远是 "w KQkq - 0 1"，与真实状态无关。
	FENSuffix = " w KQkq - 0 1"
)

// FromPlacement 只读 FEN 的第一段（摆子段）。
// 从第 8 行到第 1 行、a 列到 h 列逐字符扫描：数字表示连续空格，
// 字母放子（大写白、小写黑），'/' 换到下一行并把列归零。
// 不认识的字符直接跳过，不报错；遇到空格或结尾停止。
// 超出棋盘范围的字符同样被忽略。
func FromPlacement(text string) *Position {
	p := NewEmptyPosition()
	rank, file := Ranks-1, 0
scan:
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == ' ':
			break scan
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			n := int(ch - '0')
			for j := 0; j < n; j++ {
				if onBoard(file, rank) {
					p.put(NewSquare(file, rank), Piece{})
				}
				file++
			}
		default:
			pc, ok := pieceFromLetter(ch)
			if !ok {
				continue
			}
			if onBoard(file, rank) {
				p.put(NewSquare(file, rank), pc)
			}
			file++
		}
	}
	p.refreshPlacement()
	return p
}

// Placement 返回缓存的摆子段。
func (p *Position) Placement() string {
	return p.placement
}

// FEN 返回摆子段加固定后缀。
func (p *Position) FEN() string {
	return p.placement + FENSuffix
}

func (p *Position) refreshPlacement() {
	var sb strings.Builder
	sb.Grow(72)
	for rank := Ranks - 1; rank >= 0; rank-- {
		if rank < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < Files; file++ {
			pc := p.squares[NewSquare(file, rank)]
			if pc.Kind == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	p.placement = sb.String()
}

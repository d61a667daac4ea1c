package engine

import "minichess/internal/chess"

// 子力分值，王不计分
var pieceValues = [...]int{
	chess.Empty:  0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

func PieceValue(k chess.Kind) int {
	if k < 0 || int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

// Evaluate 白方子力减黑方子力。正数白好，负数黑好。
// 没有位置分、机动性或王安全项。
func Evaluate(pos *chess.Position) int {
	score := 0
	for _, pc := range pos.WhitePieces() {
		score += PieceValue(pc.Kind)
	}
	for _, pc := range pos.BlackPieces() {
		score -= PieceValue(pc.Kind)
	}
	return score
}

package chess

// 方向用 (列增量, 行增量) 表示
var (
	orthogonalDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	queenDirs      = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// 兵的前进方向：白向上 (+1)，黑向下 (-1)
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnHomeRank(c Color) int {
	if c == White {
		return 1
	}
	return Ranks - 2
}

// Destinations 返回 sq 上棋子的伪合法目标格，顺序即生成顺序。
// 不检查走后是否被将军。空格返回空结果。
func (p *Position) Destinations(sq Square) ([]Square, error) {
	if err := checkSquare(sq); err != nil {
		return nil, err
	}
	return p.destinations(sq, nil), nil
}

func (p *Position) destinations(from Square, out []Square) []Square {
	pc := p.at(from)
	switch pc.Kind {
	case Pawn:
		out = p.genPawn(from, pc.Color, out)
	case Knight:
		out = p.genSteps(from, knightOffsets[:], out)
	case Bishop:
		out = p.genRays(from, diagonalDirs[:], out)
	case Rook:
		out = p.genRays(from, orthogonalDirs[:], out)
	case Queen:
		out = p.genRays(from, queenDirs[:], out)
	case King:
		out = p.genSteps(from, queenDirs[:], out)
	}
	return out
}

func (p *Position) genPawn(from Square, c Color, out []Square) []Square {
	file, rank := from.File(), from.Rank()
	dir := pawnDir(c)

	// 直走一格；起始行且两格都空时可走两格
	r1 := rank + dir
	if onBoard(file, r1) && p.at(NewSquare(file, r1)).Kind == Empty {
		out = append(out, NewSquare(file, r1))
		r2 := rank + 2*dir
		if rank == pawnHomeRank(c) && onBoard(file, r2) && p.at(NewSquare(file, r2)).Kind == Empty {
			out = append(out, NewSquare(file, r2))
		}
	}

	// 斜吃，左右边界由 a/h 列限制
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if !onBoard(f, r1) {
			continue
		}
		to := NewSquare(f, r1)
		if p.capturable(from, to) {
			out = append(out, to)
		}
	}
	return out
}

// 马和王：固定偏移，目标格为空或可吃
func (p *Position) genSteps(from Square, offsets [][2]int, out []Square) []Square {
	file, rank := from.File(), from.Rank()
	for _, d := range offsets {
		f, r := file+d[0], rank+d[1]
		if !onBoard(f, r) {
			continue
		}
		to := NewSquare(f, r)
		if p.at(to).Kind == Empty || p.capturable(from, to) {
			out = append(out, to)
		}
	}
	return out
}

// 象、车、后：沿射线逐格前进，遇到第一个非空格停止；
// 该格是对方棋子时计入（吃子），射线不越过它。
func (p *Position) genRays(from Square, dirs [][2]int, out []Square) []Square {
	file, rank := from.File(), from.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for onBoard(f, r) {
			to := NewSquare(f, r)
			if p.at(to).Kind != Empty {
				if p.capturable(from, to) {
					out = append(out, to)
				}
				break
			}
			out = append(out, to)
			f += d[0]
			r += d[1]
		}
	}
	return out
}

// IsCapturable 判断 from 上的棋子能否吃 to 上的棋子。
// 同色或目标为空返回 false；兵只能吃前方两个斜格；
// 其他棋子的几何约束由调用方的射线/偏移保证，这里直接返回 true。
func (p *Position) IsCapturable(from, to Square) (bool, error) {
	if err := checkSquare(from); err != nil {
		return false, err
	}
	if err := checkSquare(to); err != nil {
		return false, err
	}
	return p.capturable(from, to), nil
}

func (p *Position) capturable(from, to Square) bool {
	mover, target := p.at(from), p.at(to)
	if mover.Kind == Empty || target.Kind == Empty {
		return false
	}
	if mover.Color == target.Color {
		return false
	}
	if mover.Kind == Pawn {
		dr := to.Rank() - from.Rank()
		df := to.File() - from.File()
		return dr == pawnDir(mover.Color) && (df == 1 || df == -1)
	}
	return true
}

// AllDestinations 遍历 color 一方的棋子列表，返回 起点 -> 目标格列表，
// 只保留有目标格的起点。
func (p *Position) AllDestinations(color Color) map[Square][]Square {
	if color != White && color != Black {
		return map[Square][]Square{}
	}
	pieces := p.list(color)
	out := make(map[Square][]Square, len(pieces))
	for _, pc := range pieces {
		if dst := p.destinations(pc.Square, nil); len(dst) > 0 {
			out[pc.Square] = dst
		}
	}
	return out
}

// Moves 与 AllDestinations 相同的走法集合，展开成 Move 列表，
// 顺序为棋子列表顺序再按生成顺序，结果是确定的。
func (p *Position) Moves(color Color) []Move {
	if color != White && color != Black {
		return nil
	}
	var (
		moves []Move
		buf   []Square
	)
	for _, pc := range p.list(color) {
		buf = p.destinations(pc.Square, buf[:0])
		for _, to := range buf {
			moves = append(moves, Move{From: pc.Square, To: to})
		}
	}
	return moves
}

// CountMoves 只计数，不分配 Move 切片。
func (p *Position) CountMoves(color Color) int {
	if color != White && color != Black {
		return 0
	}
	n := 0
	var buf []Square
	for _, pc := range p.list(color) {
		buf = p.destinations(pc.Square, buf[:0])
		n += len(buf)
	}
	return n
}

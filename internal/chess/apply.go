package chess

import "fmt"

// Apply 返回走完 from->to 之后的新局面，输入局面不会被修改。
// 这里不校验走法是否合法（合法目标格由 Destinations 给出），
// 只要求两个格子都在棋盘内且起点有子。
func Apply(pos *Position, from, to Square) (*Position, error) {
	if err := checkSquare(from); err != nil {
		return nil, err
	}
	if err := checkSquare(to); err != nil {
		return nil, err
	}
	mover := pos.at(from)
	if mover.Kind == Empty {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	np := pos.Clone()
	if from == to {
		return np, nil
	}

	// 被吃的子：过滤出新列表，不在遍历中删除
	if captured := np.at(to); captured.Kind != Empty {
		np.setList(captured.Color, removeAt(np.list(captured.Color), to))
	}

	// 走动的子在自己列表里原位更新，保持列表顺序
	own := np.list(mover.Color)
	for i := range own {
		if own[i].Square == from {
			own[i].Square = to
			break
		}
	}

	mover.Square = to
	np.squares[from] = Piece{Square: from}
	np.squares[to] = mover
	np.refreshPlacement()
	return np, nil
}

// Apply 是 Apply(p, from, to) 的方法形式。
func (p *Position) Apply(from, to Square) (*Position, error) {
	return Apply(p, from, to)
}

// ApplyMove 同 Apply，参数为 Move。
func (p *Position) ApplyMove(m Move) (*Position, error) {
	return Apply(p, m.From, m.To)
}

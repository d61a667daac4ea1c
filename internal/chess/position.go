package chess

// Position 是权威局面：128 格数组、白黑两方的棋子列表以及摆子串缓存。
// 任何修改路径返回前都要保证：
//   - 标记为白的格子恰好等于 white 列表，黑方同理；
//   - placement 与当前格子内容一致。
type Position struct {
	squares   [BoardSize]Piece
	white     []Piece
	black     []Piece
	placement string
}

// NewEmptyPosition 返回空棋盘。
func NewEmptyPosition() *Position {
	p := &Position{}
	for sq := range p.squares {
		p.squares[sq].Square = Square(sq)
	}
	p.refreshPlacement()
	return p
}

// NewPosition 返回标准开局局面。
func NewPosition() *Position {
	return FromPlacement(StartPlacement)
}

// PieceAt 返回格子上的棋子；越界格子返回 ErrInvalidSquare。
func (p *Position) PieceAt(sq Square) (Piece, error) {
	if err := checkSquare(sq); err != nil {
		return Piece{}, err
	}
	return p.squares[sq], nil
}

// 内部用：调用方已保证 sq 合法
func (p *Position) at(sq Square) Piece {
	return p.squares[sq]
}

// Place 把 pc 放到 sq：先更新棋子的 Square，再更新颜色列表，最后刷新摆子串。
// 放 Empty 等于清空该格。
func (p *Position) Place(sq Square, pc Piece) error {
	if err := checkSquare(sq); err != nil {
		return err
	}
	p.put(sq, pc)
	p.refreshPlacement()
	return nil
}

// put 不刷新 placement，批量修改时由调用方最后统一刷新。
func (p *Position) put(sq Square, pc Piece) {
	if pc.Kind == Empty {
		pc = Piece{}
	}
	pc.Square = sq
	if old := p.squares[sq]; old.Kind != Empty {
		p.setList(old.Color, removeAt(p.list(old.Color), sq))
	}
	p.squares[sq] = pc
	if pc.Kind != Empty {
		p.setList(pc.Color, append(p.list(pc.Color), pc))
	}
}

func (p *Position) list(c Color) []Piece {
	if c == White {
		return p.white
	}
	return p.black
}

func (p *Position) setList(c Color, pieces []Piece) {
	if c == White {
		p.white = pieces
	} else {
		p.black = pieces
	}
}

// removeAt 过滤出不在 sq 上的棋子，生成新列表。
// 不在遍历中按下标删除，避免跳过相邻元素。
func removeAt(pieces []Piece, sq Square) []Piece {
	out := make([]Piece, 0, len(pieces))
	for _, pc := range pieces {
		if pc.Square != sq {
			out = append(out, pc)
		}
	}
	return out
}

// WhitePieces 返回白方棋子快照，修改它不影响局面。
func (p *Position) WhitePieces() []Piece { return p.Pieces(White) }

// BlackPieces 返回黑方棋子快照。
func (p *Position) BlackPieces() []Piece { return p.Pieces(Black) }

func (p *Position) Pieces(c Color) []Piece {
	if c != White && c != Black {
		return nil
	}
	src := p.list(c)
	out := make([]Piece, len(src))
	copy(out, src)
	return out
}

// Clone 深拷贝，结果与原局面不共享任何可变状态。
func (p *Position) Clone() *Position {
	np := &Position{
		squares:   p.squares,
		placement: p.placement,
	}
	np.white = append(make([]Piece, 0, len(p.white)), p.white...)
	np.black = append(make([]Piece, 0, len(p.black)), p.black...)
	return np
}

// Equal 只比较格子内容，不比较列表顺序。
func (p *Position) Equal(o *Position) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.squares == o.squares
}

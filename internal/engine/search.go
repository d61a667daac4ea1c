package engine

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"minichess/internal/chess"
)

// 搜索配置
type SearchConfig struct {
	Depth      int           // 固定搜索深度（ply），负数按 0 处理
	Maximizing bool          // true 表示白方先走（极大层）
	Parallel   bool          // 根节点子树并行搜索
	TimeLimit  time.Duration // 0 表示不限制；超时返回 context.DeadlineExceeded
}

// 搜索结果
type SearchResult struct {
	BestMove chess.Move
	HasMove  bool // 根节点无招或 Depth 为 0 时为 false
	Score    int  // 正：白方好，负：黑方好
	Depth    int
	Leaves   int64
	Nodes    int64
	TimeUsed time.Duration
}

func sideToMove(maximizing bool) chess.Color {
	if maximizing {
		return chess.White
	}
	return chess.Black
}

func initialScore(maximizing bool) int {
	if maximizing {
		return math.MinInt
	}
	return math.MaxInt
}

// 取极大/极小。以后要加剪枝，从这里接入即可，不改变对外接口。
func fold(best, score int, maximizing bool) int {
	if maximizing {
		if score > best {
			return score
		}
		return best
	}
	if score < best {
		return score
	}
	return best
}

// Search 固定深度极小极大搜索，不剪枝、不置换表、不排序。
// 深度 0 直接返回 Evaluate。走子方没有任何伪合法走法时也退回静态评估，
// 而不是返回初始的极值。
func (e *Engine) Search(ctx context.Context, pos *chess.Position, depth int, maximizing bool) (int, error) {
	if depth < 0 {
		depth = 0
	}
	return e.minimax(ctx, pos, depth, maximizing)
}

func (e *Engine) minimax(ctx context.Context, pos *chess.Position, depth int, maximizing bool) (int, error) {
	e.addNode()
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth == 0 {
		e.countLeaf()
		return Evaluate(pos), nil
	}

	moves := pos.Moves(sideToMove(maximizing))
	if len(moves) == 0 {
		// 无招：将死/逼和都不区分，直接静态评估
		e.countLeaf()
		return Evaluate(pos), nil
	}

	best := initialScore(maximizing)
	for _, mv := range moves {
		child, err := pos.ApplyMove(mv)
		if err != nil {
			return 0, err
		}
		score, err := e.minimax(ctx, child, depth-1, !maximizing)
		if err != nil {
			return 0, err
		}
		best = fold(best, score, maximizing)
	}
	return best, nil
}

// SearchRoot 与 Search 语义相同，另外给出根节点最佳着法和统计信息。
// 分数相同时取生成顺序靠前的着法。
func (e *Engine) SearchRoot(ctx context.Context, pos *chess.Position, cfg SearchConfig) (SearchResult, error) {
	start := time.Now()
	e.Reset()
	if cfg.Depth < 0 {
		cfg.Depth = 0
	}
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	res := SearchResult{Depth: cfg.Depth}
	finish := func() SearchResult {
		res.Leaves = e.Leaves()
		res.Nodes = e.Nodes()
		res.TimeUsed = time.Since(start)
		return res
	}

	var moves []chess.Move
	if cfg.Depth > 0 {
		moves = pos.Moves(sideToMove(cfg.Maximizing))
	}
	if len(moves) == 0 {
		score, err := e.minimax(ctx, pos, 0, cfg.Maximizing)
		if err != nil {
			return finish(), err
		}
		res.Score = score
		return finish(), nil
	}
	e.addNode()

	// 先同步生成所有子局面，子树之间不共享任何可变状态
	children := make([]*chess.Position, len(moves))
	for i, mv := range moves {
		child, err := pos.ApplyMove(mv)
		if err != nil {
			return finish(), err
		}
		children[i] = child
	}

	scores := make([]int, len(children))
	if cfg.Parallel && len(children) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, child := range children {
			g.Go(func() error {
				score, err := e.minimax(gctx, child, cfg.Depth-1, !cfg.Maximizing)
				scores[i] = score
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return finish(), err
		}
	} else {
		for i, child := range children {
			score, err := e.minimax(ctx, child, cfg.Depth-1, !cfg.Maximizing)
			if err != nil {
				return finish(), err
			}
			scores[i] = score
		}
	}

	best := initialScore(cfg.Maximizing)
	for i, score := range scores {
		if next := fold(best, score, cfg.Maximizing); next != best || !res.HasMove {
			best = next
			res.BestMove = moves[i]
			res.HasMove = true
		}
	}
	res.Score = best
	return finish(), nil
}

// Perft 统计完整伪合法搜索树的叶子数，用来校验无剪枝的全树遍历。
// 无招的节点贡献 0。
func Perft(pos *chess.Position, side chess.Color, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.Moves(side)
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, mv := range moves {
		child, err := pos.ApplyMove(mv)
		if err != nil {
			continue
		}
		n += Perft(child, side.Opposite(), depth-1)
	}
	return n
}

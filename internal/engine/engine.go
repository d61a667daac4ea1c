package engine

import "sync/atomic"

// Engine 只保存计数器，搜索本身不持有局面状态，
// 每个分支都拿自己的 Position 副本。
type Engine struct {
	leaves int64
	nodes  int64

	// OnLeaf 在每次叶子评估后调用，参数是当前累计叶子数。
	// 并行搜索时会被多个 goroutine 同时调用。
	OnLeaf func(n int64)
}

func NewEngine() *Engine {
	return &Engine{}
}

// Leaves 返回累计的叶子评估次数。
func (e *Engine) Leaves() int64 { return atomic.LoadInt64(&e.leaves) }

// Nodes 返回累计访问的节点数（含内部节点）。
func (e *Engine) Nodes() int64 { return atomic.LoadInt64(&e.nodes) }

func (e *Engine) Reset() {
	atomic.StoreInt64(&e.leaves, 0)
	atomic.StoreInt64(&e.nodes, 0)
}

func (e *Engine) countLeaf() {
	n := atomic.AddInt64(&e.leaves, 1)
	if e.OnLeaf != nil {
		e.OnLeaf(n)
	}
}

func (e *Engine) addNode() {
	atomic.AddInt64(&e.nodes, 1)
}

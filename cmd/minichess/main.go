package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"minichess/internal/chess"
	"minichess/internal/engine"
)

func main() {
	placement := flag.String("fen", chess.StartPlacement, "placement field to search from")
	parallel := flag.Bool("parallel", false, "search root subtrees in parallel")
	quiet := flag.Bool("quiet", false, "do not print the running leaf counter")
	black := flag.Bool("black", false, "black to move (minimizing side)")
	flag.Parse()

	pos := chess.FromPlacement(*placement)
	fmt.Print(pos)
	fmt.Println(pos.FEN())

	fmt.Print("depth: ")
	depth := readDepth(os.Stdin)

	e := engine.NewEngine()
	if !*quiet {
		e.OnLeaf = func(n int64) { fmt.Println(n) }
	}

	start := time.Now()
	res, err := e.SearchRoot(context.Background(), pos, engine.SearchConfig{
		Depth:      depth,
		Maximizing: !*black,
		Parallel:   *parallel,
	})
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	elapsed := time.Since(start)

	if res.HasMove {
		fmt.Printf("best move: %s\n", res.BestMove)
	}
	fmt.Printf("score: %d\n", res.Score)
	fmt.Printf("leaves: %d, nodes: %d\n", res.Leaves, res.Nodes)
	fmt.Printf("elapsed: %v\n", elapsed)
}

// readDepth 读一行整数；读失败、非数字或负数都当作 0。
func readDepth(r io.Reader) int {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return 0
	}
	depth, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || depth < 0 {
		return 0
	}
	return depth
}

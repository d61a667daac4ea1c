package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"minichess/internal/chess"
	"minichess/internal/engine"
)

func main() {
	depth := flag.Int("depth", 2, "search depth")
	maxMoves := flag.Int("maxmoves", 20, "max plies to play")
	parallel := flag.Bool("parallel", true, "search root subtrees in parallel")
	flag.Parse()

	e := engine.NewEngine()
	pos := chess.NewPosition()
	side := chess.White

	for i := 0; i < *maxMoves; i++ {
		start := time.Now()
		res, err := e.SearchRoot(context.Background(), pos, engine.SearchConfig{
			Depth:      *depth,
			Maximizing: side == chess.White,
			Parallel:   *parallel,
		})
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		duration := time.Since(start)

		if !res.HasMove {
			log.Printf("Game over: %s has no moves.", side)
			break
		}

		fmt.Printf("%d. %s %s  score: %d  leaves: %d  time: %v\n",
			i+1, side, res.BestMove, res.Score, res.Leaves, duration)

		next, err := pos.ApplyMove(res.BestMove)
		if err != nil {
			log.Fatalf("Failed to apply move %s: %v", res.BestMove, err)
		}
		pos = next
		side = side.Opposite()

		if !hasKing(pos, chess.White) || !hasKing(pos, chess.Black) {
			log.Printf("Game over: king captured.")
			break
		}
	}
	fmt.Print(pos)
	fmt.Println(pos.FEN())
}

// 没有将死判定，王被吃掉就算结束
func hasKing(pos *chess.Position, c chess.Color) bool {
	for _, pc := range pos.Pieces(c) {
		if pc.Kind == chess.King {
			return true
		}
	}
	return false
}

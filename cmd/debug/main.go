package main

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"minichess/internal/chess"
)

func main() {
	pos := chess.NewPosition()
	fmt.Print(pos)
	fmt.Println("FEN:", pos.FEN())
	for _, side := range []chess.Color{chess.White, chess.Black} {
		all := pos.AllDestinations(side)
		origins := maps.Keys(all)
		slices.Sort(origins)
		fmt.Printf("%s: %d pseudo legal moves\n", side, pos.CountMoves(side))
		for _, from := range origins {
			dst := make([]string, len(all[from]))
			for i, to := range all[from] {
				dst[i] = to.String()
			}
			fmt.Printf("  %s -> %s\n", from, strings.Join(dst, " "))
		}
	}
}

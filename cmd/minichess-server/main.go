package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"minichess/internal/server/game"
	httpserver "minichess/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	maxDepth := flag.Int("max-depth", 4, "largest search depth accepted by /api/search")
	flag.Parse()

	h := httpserver.NewHandler(game.NewManager())
	h.MaxDepth = *maxDepth

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewMux(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on %s (max search depth %d)", *addr, *maxDepth)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

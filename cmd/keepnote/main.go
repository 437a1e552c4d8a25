package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keepnote/keepnote/pkg/keepnote"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := keepnote.Main(ctx, os.Args[1:]); err != nil {
		log.Fatalf("keepnote: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	ocypus "github.com/fatkhur1960/ocypus-digital"
)

func main() {
	rt, err := ocypus.Conf("../../config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rt.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("runtime exited: %v", err)
	}
}

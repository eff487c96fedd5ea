package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	ocypus "github.com/fatkhur1960/ocypus-digital"
)

// Routes reports to stdout instead of real hardware, useful for checking the
// digit encoding without a display plugged in.
func main() {
	stdout := ocypus.NewCallbackDisplay("stdout", func(r ocypus.Report) error {
		fmt.Printf("report id=%#02x digits=%03d\n", r[0], r.Digits())
		return nil
	})

	rt, err := ocypus.Conf("../../config.yaml", ocypus.WithDisplay(stdout))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rt.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("runtime exited: %v", err)
	}
}

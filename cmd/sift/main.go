// cmd/sift/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/waozixyz/sift/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, app.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "sift: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

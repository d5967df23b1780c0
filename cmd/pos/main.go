// Command pos is the staff client of the POS server: browse the menu, build
// a cart, check it out and follow the order board.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"pos/internal/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()

	if err != nil {
		if errors.Is(err, client.ErrUnreachable) {
			fmt.Fprintln(os.Stderr, client.ErrUnreachable.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

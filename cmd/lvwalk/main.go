// SPDX-License-Identifier: MIT
// Command lvwalk builds or imports a weighted directed graph and runs
// weighted random walks, stationary analysis and layout checks over it.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

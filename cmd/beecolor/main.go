// Command beecolor colors graphs with an artificial bee colony and prints
// the number of colors found.
//
//	beecolor color --mtx johnson8-2-4.mtx --employed 28 --onlookers 42 --verbose
//	beecolor color --generate cycle:9 --trials 16 --parallel 4 --json
//	beecolor color --config beecolor.yaml --mtx g.mtx --metrics-out beecolor.prom --watch
//	beecolor version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

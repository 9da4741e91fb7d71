/*
Command splinefit fits cubic B-splines through points.

	splinefit --svg --samples points.txt
	splinefit --points "(0, 0) (0, 2) (2, 2) (2, 0) (4, 0)" -o out

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splinefit/cmd/splinefit/app"
)

func main() {
	tracing.SetTraceSelector(app.NewTraceSelector(gologadapter.New))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.NewSplineFitCommand(ctx).Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/modelpanel/pkg/paneltools"
)

// runMCP serves the panel tools over stdin/stdout until the client
// disconnects or the process is interrupted.
func runMCP(o options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := setup(o)
	if err != nil {
		return err
	}
	defer a.close()

	srv := paneltools.NewServer(a.panel, version, a.log)

	err = srv.Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

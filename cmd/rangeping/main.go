package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rangeping/internal/runner"
)

func main() {
	options := runner.ParseOptions()
	rangepingRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go closeHandler(c, cancel)

	err = rangepingRunner.Run(ctx)
	rangepingRunner.Close()
	if err != nil {
		gologger.Fatal().Msgf("Could not run rangeping: %s\n", err)
	}
}

// closeHandler cancels the run on the first signal. The notice goes to the
// log stream so stdout carries only the table.
func closeHandler(c <-chan os.Signal, cancel context.CancelFunc) {
	<-c
	gologger.Info().Msgf("Ctrl+C pressed in Terminal, Exiting...")
	cancel()
}

package main

import (
	"context"
	"io"
	"os"
	"testing"
	"time"
)

func TestCloseHandlerCancelsWithoutStdout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = stdout
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		closeHandler(c, cancel)
		close(done)
	}()
	c <- os.Interrupt

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("closeHandler did not return after a signal")
	}
	if ctx.Err() == nil {
		t.Error("context was not cancelled")
	}

	os.Stdout = stdout
	_ = w.Close()
	written, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 0 {
		t.Errorf("closeHandler wrote %q to stdout", written)
	}
}

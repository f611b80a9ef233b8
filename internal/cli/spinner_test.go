package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWritesAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), "scanning")
	s.out = &buf

	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "scanning") {
		t.Errorf("spinner output %q does not contain its message", out)
	}
	// Stop leaves the cursor on a cleared line.
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner output %q does not end with a line clear", out)
	}
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "scanning")
	s.out = io.Discard

	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop on context cancellation")
	}
}

func TestSpinnerRepeatedStop(t *testing.T) {
	s := newSpinner(context.Background(), "scanning")
	s.out = io.Discard

	// Stopping before the first frame and stopping twice must both be safe.
	s.Start()
	s.Stop()
	s.Stop()
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerShowsStages(t *testing.T) {
	var out syncBuffer
	s := startSpinnerTo(context.Background(), &out, "Computing layout...")
	time.Sleep(200 * time.Millisecond)
	s.Update("Rendering svg...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := out.String()
	for _, want := range []string{"Computing layout...", "Rendering svg..."} {
		if !strings.Contains(got, want) {
			t.Errorf("spinner output missing %q", want)
		}
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := startSpinnerTo(ctx, &syncBuffer{}, "Testing with context...")
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := startSpinnerTo(ctx, &syncBuffer{}, "Testing with timeout...")
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinnerTo(context.Background(), &syncBuffer{}, "Testing idempotent stop...")
	s.Stop()
	s.Stop()
	s.Fail("Failed!")
}

func TestSpinnerClearLineFitsWideRunes(t *testing.T) {
	var out syncBuffer
	s := &Spinner{w: &out, message: "配置"}
	s.clearLine()

	// Two double-width runes plus the frame column.
	if got := strings.Count(out.String(), " "); got != 6 {
		t.Errorf("clearLine wrote %d spaces, want 6", got)
	}
}

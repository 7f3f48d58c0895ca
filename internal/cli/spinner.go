package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows the current pipeline stage and the elapsed time on stderr.
// It stops on its own when the parent context is cancelled.
type Spinner struct {
	w     io.Writer
	ctx   context.Context
	start time.Time

	mu      sync.Mutex
	message string
	width   int // widest line drawn so far, in terminal cells

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// startSpinner draws message until Stop or Fail is called or ctx is done.
func startSpinner(ctx context.Context, message string) *Spinner {
	return startSpinnerTo(ctx, os.Stderr, message)
}

func startSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		ctx:     ctx,
		start:   time.Now(),
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	text := fmt.Sprintf("%s (%s)", s.message, elapsed)
	s.width = max(s.width, runewidth.StringWidth(text)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
}

// Update replaces the stage message shown next to the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop stops the spinner and clears its line. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.stopped
		s.clearLine()
	})
}

// Fail stops the spinner and prints message as an error.
func (s *Spinner) Fail(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the parent context ended before Stop.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	width := max(s.width, runewidth.StringWidth(s.message)+2)
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
}

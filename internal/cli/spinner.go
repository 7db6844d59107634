package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a status line on w, normally stderr, until it is stopped
// or its context ends.
type spinner struct {
	w     io.Writer
	label string
	ctx   context.Context

	halt   chan struct{}
	exited chan struct{}
	once   sync.Once
	mu     sync.Mutex // serializes writes to w
}

// startSpinner draws label with an animated frame until stop is called.
func startSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	s := &spinner{
		w:      w,
		label:  label,
		ctx:    ctx,
		halt:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *spinner) loop() {
	defer close(s.exited)
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.halt:
			return
		case <-s.ctx.Done():
			s.clear()
			return
		case <-t.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
}

// stop ends the animation and erases the line. Later calls do nothing.
func (s *spinner) stop() {
	s.once.Do(func() {
		close(s.halt)
		<-s.exited
		s.clear()
	})
}

func (s *spinner) succeed(msg string) {
	s.stop()
	printSuccess("%s", msg)
}

func (s *spinner) fail(msg string) {
	s.stop()
	printFailure("%s", msg)
}

// interrupted reports whether the spinner's context ended.
func (s *spinner) interrupted() bool {
	return s.ctx.Err() != nil
}

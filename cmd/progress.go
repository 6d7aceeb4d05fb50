package cmd

import (
	"fmt"
	"io"
	"sync"

	"sevdesk-export/internal/export"
)

// consoleProgress prints one status line per finished step.
type consoleProgress struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsoleProgress(out io.Writer) *consoleProgress {
	return &consoleProgress{out: out}
}

func (p *consoleProgress) Begin(message string) export.Step {
	return &consoleStep{p: p, message: message}
}

type consoleStep struct {
	p       *consoleProgress
	message string
}

func (s *consoleStep) print(symbol, message string) {
	if message == "" {
		message = s.message
	}
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	fmt.Fprintf(s.p.out, "%s %s\n", symbol, message)
}

func (s *consoleStep) Succeed(message string) { s.print("✅", message) }
func (s *consoleStep) Info(message string)    { s.print("ℹ️ ", message) }
func (s *consoleStep) Warn(message string)    { s.print("⚠️ ", message) }
func (s *consoleStep) Fail(message string)    { s.print("❌", message) }

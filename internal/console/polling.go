package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"Omikuji/internal/logger"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(command string) string

// Console reads commands line by line and writes replies.
type Console struct {
	In  io.Reader
	Out io.Writer
	Log *logger.Logger

	mu     sync.Mutex
	prompt string
}

func New(in io.Reader, out io.Writer, log *logger.Logger) *Console {
	if log == nil {
		log = logger.Nop()
	}
	return &Console{In: in, Out: out, Log: log.With("component", "console"), prompt: "> "}
}

// ShowClock redraws the prompt line with the current time.
func (c *Console) ShowClock(now string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompt = fmt.Sprintf("[%s] > ", now)
	fmt.Fprintf(c.Out, "\r%s", c.prompt)
}

// Print writes text followed by the prompt.
func (c *Console) Print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, "\r%s\n%s", strings.TrimRight(text, "\n"), c.prompt)
}

// Run reads commands until EOF or ctx is cancelled.
func (c *Console) Run(ctx context.Context, handler CommandHandler) error {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			c.Log.Info("console stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errs; err != nil {
					return fmt.Errorf("read console input: %w", err)
				}
				return nil
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			c.Log.Debug("received command", "command", text)
			if reply := handler(text); reply != "" {
				c.Print(reply)
			}
		}
	}
}

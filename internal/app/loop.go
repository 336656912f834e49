package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/corey/rankbot/internal/domain/query"
	"github.com/corey/rankbot/internal/domain/text"
)

// Run is the interactive read loop. It reads one question per line from in
// and writes one rendered result per line to out.
//
// The loop ends when a question terminates the conversation, when in is
// exhausted, or when ctx is cancelled. The farewell is written exactly once
// in every case. Only a read error is returned.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	// Cancelled on every return so the reader below never outlives Run.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	// Reading stdin blocks; doing it here lets the loop also watch ctx.
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		fmt.Fprint(out, a.cfg.Prompt)

		select {
		case <-ctx.Done():
			a.end(out, "interrupted", true)
			return nil

		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				a.end(out, "end of input", true)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}

			tokens := text.Normalize(line)
			if len(tokens) == 0 {
				continue
			}
			res := a.search(tokens)
			if res.Outcome == query.Terminate {
				a.end(out, "bye", false)
				return nil
			}
			fmt.Fprintln(out, Render(res, a.cfg.Color))
		}
	}
}

// end writes the farewell. After EOF or an interrupt the cursor still sits
// on the prompt line, so a newline goes first.
func (a *App) end(out io.Writer, reason string, newline bool) {
	if newline && a.cfg.Prompt != "" {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, a.cfg.Farewell)
	a.log.Printf("session %s: ended (%s)", a.SessionID, reason)
}

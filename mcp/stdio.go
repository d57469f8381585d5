package mcp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// maxMessageSize bounds one newline-delimited message.
const maxMessageSize = 16 << 20

// ServeStdio reads newline-delimited JSON-RPC messages from in and writes
// responses to out, one per line, in request order. It returns nil when in
// reaches EOF and ctx.Err() when ctx is cancelled.
//
// Reads cannot be interrupted, so after cancellation the reader goroutine
// stays blocked until in returns from its pending Read. Callers that keep
// running should close in (or pass an io.ReadCloser they close) to release
// it.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), maxMessageSize)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			select {
			case lines <- append([]byte(nil), line...):
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	w := bufio.NewWriter(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
				default:
				}
				return nil
			}

			resp := s.HandleMessage(ctx, line)
			if resp == nil {
				continue
			}
			if err := writeMessage(w, resp); err != nil {
				return err
			}
		}
	}
}

func writeMessage(w *bufio.Writer, resp *JSONRPCResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return w.Flush()
}

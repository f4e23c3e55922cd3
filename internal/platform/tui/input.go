package tui

import (
	"io"
	"sync"
)

// sessionInput owns the only read loop on a session's input. The menu,
// the results board and the game each attach a reader in turn; closing a
// reader releases its blocked Read without consuming anything, so the
// next reader sees every byte the client typed.
type sessionInput struct {
	mu   sync.Mutex
	cond *sync.Cond
	buf  []byte
	err  error
}

func newSessionInput(r io.Reader) *sessionInput {
	in := &sessionInput{}
	in.cond = sync.NewCond(&in.mu)
	go in.pump(r)
	return in
}

func (in *sessionInput) pump(r io.Reader) {
	chunk := make([]byte, 1024)
	for {
		n, err := r.Read(chunk)

		in.mu.Lock()
		in.buf = append(in.buf, chunk[:n]...)
		if err != nil {
			in.err = err
		}
		in.cond.Broadcast()
		in.mu.Unlock()

		if err != nil {
			return
		}
	}
}

// attach returns a reader that shares the session input until closed.
func (in *sessionInput) attach() *inputReader {
	return &inputReader{in: in}
}

type inputReader struct {
	in     *sessionInput
	closed bool // guarded by in.mu
}

func (r *inputReader) Read(p []byte) (int, error) {
	in := r.in
	in.mu.Lock()
	defer in.mu.Unlock()

	for len(in.buf) == 0 && in.err == nil && !r.closed {
		in.cond.Wait()
	}
	if r.closed {
		return 0, io.EOF
	}
	if len(in.buf) == 0 {
		return 0, in.err
	}
	n := copy(p, in.buf)
	in.buf = in.buf[n:]
	return n, nil
}

// Close detaches the reader. A Read blocked on it returns io.EOF.
func (r *inputReader) Close() error {
	r.in.mu.Lock()
	r.closed = true
	r.in.cond.Broadcast()
	r.in.mu.Unlock()
	return nil
}

// sessionTerminal is what term.NewTerminal needs: attached input, session
// output.
type sessionTerminal struct {
	io.Reader
	io.Writer
}

// SPDX-License-Identifier: EPL-2.0

package keyboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

// Pump feeds bytes from r to c until the user quits, r ends or ctx is done.
// The read goroutine exits after its next read once Pump has returned.
func Pump(ctx context.Context, r io.Reader, c *Controller) error {
	keys := make(chan byte, 1)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go readKeys(r, keys, errc, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading keys: %w", err)
		case k := <-keys:
			if !c.HandleKey(k) {
				return nil
			}
		}
	}
}

// readKeys forwards single bytes from r until r fails or done is closed.
func readKeys(r io.Reader, keys chan<- byte, errc chan<- error, done <-chan struct{}) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case keys <- buf[0]:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case errc <- err:
			case <-done:
			}
			return
		}
	}
}

// Host puts a terminal into raw mode so single key presses arrive unbuffered.
type Host struct {
	in *os.File
}

func NewHost(in *os.File) *Host {
	return &Host{in: in}
}

// Run pumps keys from the terminal into c, restoring the terminal on return.
func (h *Host) Run(ctx context.Context, c *Controller) error {
	fd := int(h.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "keyboard.Run",
				"error":    err.Error(),
			}).Warn("Failed to restore terminal")
		}
	}()

	return Pump(ctx, h.in, c)
}

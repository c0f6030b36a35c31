// Package clipboard is the copy side channel for generated code.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

type Writer interface {
	Write(ctx context.Context, text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last written text. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
	Err  error
}

func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	m.n++
	return nil
}

func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Deferred records the text for another party to copy, such as the browser
// that issued the request.
type Deferred struct {
	Text    string
	Pending bool
}

func (d *Deferred) Write(_ context.Context, text string) error {
	d.Text = text
	d.Pending = true
	return nil
}

// Unavailable rejects every write.
type Unavailable struct{}

func (Unavailable) Write(context.Context, string) error {
	return ErrUnavailable
}

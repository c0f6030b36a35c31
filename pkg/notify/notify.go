// Package notify delivers transient, titled toasts for finished actions.
package notify

import "sync"

type Color string

const (
	ColorSuccess Color = "teal"
	ColorFailure Color = "red"
)

type Toast struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Color   Color  `json:"color"`
}

func (t Toast) Failed() bool {
	return t.Color == ColorFailure
}

type Notifier interface {
	Success(title, message string)
	Failure(title, message string)
}

// Collector records toasts in order. The zero value is ready to use.
type Collector struct {
	mu     sync.Mutex
	toasts []Toast
}

func (c *Collector) Success(title, message string) {
	c.add(Toast{Title: title, Message: message, Color: ColorSuccess})
}

func (c *Collector) Failure(title, message string) {
	c.add(Toast{Title: title, Message: message, Color: ColorFailure})
}

func (c *Collector) add(t Toast) {
	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	c.mu.Unlock()
}

func (c *Collector) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Toast(nil), c.toasts...)
}

// Last returns the most recent toast, if any.
func (c *Collector) Last() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.toasts) == 0 {
		return Toast{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}

type multi []Notifier

// Multi fans every toast out to each of ns.
func Multi(ns ...Notifier) Notifier {
	var out multi
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multi) Success(title, message string) {
	for _, n := range m {
		n.Success(title, message)
	}
}

func (m multi) Failure(title, message string) {
	for _, n := range m {
		n.Failure(title, message)
	}
}

// Discard drops every toast.
var Discard Notifier = multi(nil)

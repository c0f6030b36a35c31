// Package studio holds the state of the two studio pages and runs their
// generate actions: transform the input, show the output, copy it and
// report the outcome as a toast.
package studio

import (
	"errors"
	"strings"

	"github.com/withgalaxy/tsxkit/pkg/clipboard"
	"github.com/withgalaxy/tsxkit/pkg/notify"
)

var (
	ErrInputValidation = errors.New("required input is empty")
	ErrClipboard       = errors.New("copy to clipboard failed")
)

const (
	TitleInputError  = "Input error"
	TitleParseFailed = "Parse failed"
	TitleCopied      = "Copied"
	TitleDone        = "Done"
	TitleFailed      = "Failed"
)

// Env carries the side channels a page reports through.
type Env struct {
	Clipboard clipboard.Writer
	Notifier  notify.Notifier
}

func (e Env) withDefaults() Env {
	if e.Clipboard == nil {
		e.Clipboard = clipboard.Unavailable{}
	}
	if e.Notifier == nil {
		e.Notifier = notify.Discard
	}
	return e
}

// KeyEvent is a key press inside a page form.
type KeyEvent struct {
	// Target is the lower-case tag name of the focused element.
	Target string
	Key    string
	Ctrl   bool
	Meta   bool
}

// SubmitOnKey reports whether ev triggers the page action. Plain Enter
// submits from single-line inputs; inside a textarea Ctrl+Enter or Cmd+Enter
// is required so newlines can still be typed.
func SubmitOnKey(ev KeyEvent) bool {
	if ev.Key != "Enter" {
		return false
	}
	if strings.EqualFold(ev.Target, "textarea") {
		return ev.Ctrl || ev.Meta
	}
	return true
}

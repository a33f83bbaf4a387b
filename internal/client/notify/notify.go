// Package notify delivers short user-facing notices. Delivery is
// fire-and-forget: a Notifier never reports failure to its caller.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/carrental/internal/logging"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier records notices in the structured log at debug level, errors
// at warn.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

func (n *LogNotifier) Notify(kind Kind, message string) {
	ctx := context.Background()
	if kind == Error {
		n.log.Warn(ctx, message, "kind", kind)
		return
	}
	n.log.Debug(ctx, message, "kind", kind)
}

// WriterNotifier prints notices as single lines, e.g. "[info] message".
// It is safe for use from the idle timer goroutine.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(kind Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", kind, message)
}

// Multi fans a notice out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

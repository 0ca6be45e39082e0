// Package progress implements the newline-delimited JSON event stream used
// by long batch runs. Consumers treat a stream that ends without a
// completed event as a failed run.
package progress

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Event kinds carried on the stream.
const (
	EventStatus    = "status"
	EventOutput    = "output"
	EventProgress  = "progress"
	EventError     = "error"
	EventCompleted = "completed"
)

// Event is one NDJSON record.
type Event struct {
	Event     string    `json:"event"`
	Message   string    `json:"message,omitempty"`
	Percent   *float64  `json:"percent,omitempty"`
	Success   *bool     `json:"success,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Writer emits events to an underlying stream. It is safe for concurrent
// use; a completed event terminates the stream and later writes are
// dropped.
type Writer struct {
	mu        sync.Mutex
	enc       *json.Encoder
	completed bool
	now       func() time.Time
}

// NewWriter wraps w in an event writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (w *Writer) emit(e Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return nil
	}
	e.Timestamp = w.now()
	if err := w.enc.Encode(e); err != nil {
		return err
	}
	if e.Event == EventCompleted {
		w.completed = true
	}
	return nil
}

// Status emits a lifecycle message.
func (w *Writer) Status(message string) error {
	return w.emit(Event{Event: EventStatus, Message: message})
}

// Output emits a line of run output.
func (w *Writer) Output(message string) error {
	return w.emit(Event{Event: EventOutput, Message: message})
}

// Progress emits a completion percentage, clamped to [0,100].
func (w *Writer) Progress(percent float64) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return w.emit(Event{Event: EventProgress, Percent: &percent})
}

// Error emits a failure message. It does not terminate the stream; callers
// follow it with Completed(false).
func (w *Writer) Error(message string) error {
	return w.emit(Event{Event: EventError, Message: message})
}

// Completed terminates the stream with the run verdict.
func (w *Writer) Completed(success bool) error {
	return w.emit(Event{Event: EventCompleted, Success: &success})
}

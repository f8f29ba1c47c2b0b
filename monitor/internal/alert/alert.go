package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitalsmonitor/vitalsmonitor/pkg/types"
)

// Alerter receives the fixed message of a failed vital sign check.
type Alerter interface {
	Alert(message string)
}

// Func adapts an ordinary function to the Alerter interface.
type Func func(message string)

// Alert calls f(message).
func (f Func) Alert(message string) { f(message) }

// Event is the record of one fired alert.
type Event struct {
	ID      string      `json:"id"`
	Vital   types.Vital `json:"vital"`
	Message string      `json:"message"`
	Value   float64     `json:"value"`
	FiredAt time.Time   `json:"fired_at"`
}

// NewEvent builds an Event with a fresh random ID.
func NewEvent(v types.Vital, message string, value float64, now time.Time) Event {
	return Event{
		ID:      uuid.NewString(),
		Vital:   v,
		Message: message,
		Value:   value,
		FiredAt: now,
	}
}

// Recorder is an Alerter that keeps every message it receives.
//
// Recorder is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Alert appends message to the recorded list.
func (r *Recorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the recorded messages, oldest first.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

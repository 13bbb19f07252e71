package notify

import "sync"

// Recorder is a Notifier test double that records every notification.
type Recorder struct {
	mu     sync.Mutex
	sent   []Notification
	closed []uint32
	nextID uint32
}

// NewRecorder creates a recording notifier for tests.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *Recorder) Close(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, id)
	return nil
}

// Sent returns a copy of all recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

var _ Notifier = (*Recorder)(nil)

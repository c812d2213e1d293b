package dino

// FrameID identifies a requested frame. The zero value means "none".
type FrameID uint64

// FrameScheduler runs a callback on the next frame of the host, the way a
// browser runs requestAnimationFrame callbacks. Callbacks must run on the
// goroutine that owns the engine.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type queuedFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameScheduler driven by the host: every Flush runs the
// frames that were pending when it was called. Frames requested during a
// Flush wait for the next one, so a self-rescheduling loop runs once per Flush.
// FrameQueue is not safe for concurrent use; hosts call it from their event loop.
type FrameQueue struct {
	lastID   FrameID
	pending  []queuedFrame
	flushing []queuedFrame // Batch of the Flush in progress
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.lastID++
	q.pending = append(q.pending, queuedFrame{id: q.lastID, fn: fn})
	return q.lastID
}

// CancelFrame drops a pending frame. Unknown or already-run IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A frame of the running batch may cancel a later one of the same batch.
	for i := range q.flushing {
		if q.flushing[i].id == id {
			q.flushing[i].fn = nil
			return
		}
	}
}

// Flush runs the frames pending at call time and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.flushing = q.pending
	q.pending = nil
	defer func() { q.flushing = nil }()

	ran := 0
	for i := range q.flushing {
		if fn := q.flushing[i].fn; fn != nil {
			fn()
			ran++
		}
	}
	return ran
}

// Pending returns the number of frames waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

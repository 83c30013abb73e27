package combobox

import "sync/atomic"

// Sequencer tags outgoing searches so that only the latest one is applied.
// Safe for use from the goroutines that run searches.
type Sequencer struct {
	latest atomic.Uint64
}

// Next returns a new sequence number, making all earlier ones stale
func (q *Sequencer) Next() uint64 {
	return q.latest.Add(1)
}

// Latest returns the most recently issued sequence number
func (q *Sequencer) Latest() uint64 {
	return q.latest.Load()
}

// IsCurrent reports whether seq is the most recently issued number
func (q *Sequencer) IsCurrent(seq uint64) bool {
	return seq != 0 && seq == q.latest.Load()
}

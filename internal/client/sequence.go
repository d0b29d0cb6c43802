package client

import (
	"errors"
	"sync"
)

// ErrStale reports a response superseded by a newer request for the same operation.
var ErrStale = errors.New("response superseded by a newer request")

// Sequencer numbers requests per logical operation so consumers can drop
// out-of-order responses. The zero value is ready to use.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// Ticket identifies one issued request.
type Ticket struct {
	op  string
	seq uint64
	s   *Sequencer
}

// Next issues a ticket for op that supersedes every earlier ticket for op.
func (s *Sequencer) Next(op string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		s.latest = map[string]uint64{}
	}
	s.latest[op]++
	return Ticket{op: op, seq: s.latest[op], s: s}
}

// Seq returns the ticket's sequence number, starting at 1 per operation.
func (t Ticket) Seq() uint64 {
	return t.seq
}

// Latest reports whether no newer ticket has been issued for the same operation.
func (t Ticket) Latest() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.latest[t.op] == t.seq
}

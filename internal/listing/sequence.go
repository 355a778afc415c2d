package listing

// Sequencer numbers fetch requests so that a response to a superseded
// request can be recognised and dropped. Not safe for concurrent use; the
// UI goroutine owns it.
type Sequencer struct {
	latest uint64
}

// Next issues a new sequence number, superseding all earlier ones
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// Latest returns the most recently issued number (0 if none)
func (s *Sequencer) Latest() uint64 {
	return s.latest
}

// IsLatest reports whether seq belongs to the newest request
func (s *Sequencer) IsLatest(seq uint64) bool {
	return seq != 0 && seq == s.latest
}

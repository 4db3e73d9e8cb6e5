package tetris

import "math/rand"

// Sequencer produces the stream of upcoming piece kinds: the kind most
// recently handed out plus a one-piece preview. Draws are uniform and
// independent, so repeats are permitted; there is no bag guarantee beyond
// the always-known-one-ahead preview.
type Sequencer struct {
	rng     *rand.Rand
	current Kind
	next    Kind
}

// NewSequencer creates a sequencer drawing from the given random source.
// The source is injected so tests can supply deterministic sequences.
func NewSequencer(rng *rand.Rand) *Sequencer {
	s := &Sequencer{rng: rng}
	s.current = s.draw()
	s.next = s.draw()
	return s
}

func (s *Sequencer) draw() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// Next returns the kind to spawn now and advances: the preview becomes
// current and a freshly drawn kind becomes the new preview.
func (s *Sequencer) Next() Kind {
	k := s.current
	s.current = s.next
	s.next = s.draw()
	return k
}

// PeekNext returns the kind the following spawn will produce, without
// advancing. Used for the preview display.
func (s *Sequencer) PeekNext() Kind {
	return s.current
}

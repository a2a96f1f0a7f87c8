package director

// step performs one stage of a composite transition and calls next exactly
// once when the stage completes.
type step func(next func())

// sequence runs steps one after another. Replacing or clearing the
// director's active sequence cancels it: a stale sequence's completion
// callbacks find they are no longer current and stop without running the
// remaining steps.
type sequence struct {
	d     *Director
	steps []step
	idx   int
}

func (s *sequence) run() {
	if s.idx >= len(s.steps) {
		if s.d.seq == s {
			s.d.seq = nil
		}
		return
	}
	cur := s.steps[s.idx]
	s.idx++
	cur(func() {
		if s.d.seq != s {
			return
		}
		s.run()
	})
}

package filexp

// clampSelection keeps the selection inside the entries and the viewport
// window around the selection.
func (s *Session) clampSelection(viewportHeight int) {
	n := len(s.entries)
	switch {
	case n == 0:
		s.selection = 0
	case s.selection >= n:
		s.selection = n - 1
	case s.selection < 0:
		s.selection = 0
	}
	s.scrollToSelection(viewportHeight)
}

func (s *Session) scrollToSelection(viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if s.selection < s.viewportOffset {
		s.viewportOffset = s.selection
	}
	if s.selection >= s.viewportOffset+viewportHeight {
		s.viewportOffset = s.selection - viewportHeight + 1
	}
	if s.viewportOffset < 0 {
		s.viewportOffset = 0
	}
}

// moveSelection moves by delta rows, clamped to the list.
func (s *Session) moveSelection(delta, viewportHeight int) {
	s.selection += delta
	s.clampSelection(viewportHeight)
}

// VisibleRange returns the half-open index range of entries on screen.
func (s *Session) VisibleRange(viewportHeight int) (from, to int) {
	from = s.viewportOffset
	to = from + viewportHeight
	if to > len(s.entries) {
		to = len(s.entries)
	}
	if from > to {
		from = to
	}
	return from, to
}

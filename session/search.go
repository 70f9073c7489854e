package session

// SetQuery sets the find query. The first match becomes active.
func (s *Session) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.active = 0
}

func (s *Session) Query() string { return s.query }

// NextMatch advances the active match; the styler wraps the index.
func (s *Session) NextMatch() {
	s.active = s.normalizedActive(s.active + 1)
}

// PrevMatch moves the active match back.
func (s *Session) PrevMatch() {
	s.active = s.normalizedActive(s.active - 1)
}

func (s *Session) normalizedActive(i int) int {
	n := len(s.Restyle().Matches)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// SetZoom sets the font scale factor. Non-positive values reset it to 1.
func (s *Session) SetZoom(z float64) {
	if z <= 0 {
		z = 1
	}
	s.zoom = z
}

func (s *Session) Zoom() float64 { return s.zoom }

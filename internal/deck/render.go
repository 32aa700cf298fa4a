package deck

const (
	hintTip   = "<strong>Tip:</strong> Swipe right to like · left to pass · up to super like · double-tap for more photos."
	hintEmpty = "<strong>No more profiles!</strong> Hit Shuffle to reload."
)

// Render rebuilds the visual stack from the logical deck, binds the
// controller to the front card and refreshes the hint.
func (s *Session) Render() {
	s.surface.RenderDeck(s.Profiles())
	s.updateHint()
	s.bindTop()
}

func (s *Session) updateHint() {
	s.surface.SetHint(hintFor(len(s.deck)))
}

func hintFor(remaining int) Hint {
	if remaining == 0 {
		return Hint{Empty: true, HTML: hintEmpty}
	}
	return Hint{HTML: hintTip}
}

package wire

import (
	"sync"

	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/models"
)

// Surface turns session output into Commands for the connection currently
// attached. Output is dropped while nothing is attached.
type Surface struct {
	mu   sync.RWMutex
	out  chan<- Command
	done <-chan struct{}
	// kick is closed when the current attachment is replaced
	kick chan struct{}
}

var _ deck.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{}
}

// Attach routes output to out until done is closed or Detach is called.
// The returned channel is closed once a newer Attach takes over, so the
// superseded connection can shut down.
func (s *Surface) Attach(out chan<- Command, done <-chan struct{}) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kick != nil {
		close(s.kick)
	}
	s.out, s.done = out, done
	s.kick = make(chan struct{})
	return s.kick
}

// Detach stops routing to out. A newer attachment is left alone.
func (s *Surface) Detach(out chan<- Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out == out {
		s.out, s.done, s.kick = nil, nil, nil
	}
}

func (s *Surface) Attached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.out != nil
}

func (s *Surface) send(cmd Command) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return
	}
	select {
	case s.out <- cmd:
	case <-s.done:
	}
}

func (s *Surface) RenderDeck(profiles []models.Profile) {
	s.send(Command{Op: OpRender, Cards: profiles})
}

func (s *Surface) RemoveCard(cardID string) {
	s.send(Command{Op: OpRemove, Card: cardID})
}

func (s *Surface) ApplyTransform(cardID string, t deck.Transform) {
	css := t.CSS()
	s.send(Command{Op: OpTransform, Card: cardID, Transform: &css})
}

func (s *Surface) SetTransition(cardID string, t deck.Transition) {
	s.send(Command{Op: OpTransition, Card: cardID, Transition: t.CSS(), Seq: t.Seq})
}

func (s *Surface) SetOpacity(cardID string, opacity float64) {
	s.send(Command{Op: OpOpacity, Card: cardID, Opacity: &opacity})
}

func (s *Surface) SetOverlayOpacity(cardID string, o deck.Overlay) {
	s.send(Command{Op: OpStamps, Card: cardID, Stamps: &Stamps{Like: o.Like, Nope: o.Nope, Super: o.Super}})
}

func (s *Surface) ShowPhoto(cardID string, p deck.Photo) {
	s.send(Command{Op: OpPhoto, Card: cardID, Photo: &PhotoPayload{
		Index: p.Index,
		Count: p.Count,
		Src:   p.URL,
		Alt:   p.Alt,
	}})
}

func (s *Surface) SetInteractive(cardID string, enabled bool) {
	s.send(Command{Op: OpInteractive, Card: cardID, Enabled: &enabled})
}

func (s *Surface) CapturePointer(cardID string, pointerID int) {
	s.send(Command{Op: OpCapture, Card: cardID, Pointer: &pointerID})
}

func (s *Surface) SetCursor(cardID string, c deck.Cursor) {
	s.send(Command{Op: OpCursor, Card: cardID, Cursor: string(c)})
}

func (s *Surface) SetHint(h deck.Hint) {
	s.send(Command{Op: OpHint, Hint: &HintPayload{Empty: h.Empty, HTML: h.HTML}})
}

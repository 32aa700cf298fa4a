package deck

import (
	"fmt"
	"math"
	"time"

	"SwipeDeck/internal/models"
)

const (
	// SwipeThreshold is the drag distance in px that commits on release.
	SwipeThreshold = 80.0
	// Stamps reach full opacity at twice the threshold.
	stampFullAt = SwipeThreshold * 2

	rotationPerPx   = 0.07
	tapSlop         = 10.0
	DoubleTapWindow = 300 * time.Millisecond

	primaryButton = 0
)

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one pointer dispatch targeted at a card.
type PointerEvent struct {
	Kind      PointerKind
	CardID    string
	PointerID int
	Button    int
	X, Y      float64
	// Time is when the event happened on the client. Zero means "now".
	Time time.Time
}

type OutcomeKind int

const (
	Ignored OutcomeKind = iota
	Tracking
	SpringBack
	PhotoCycled
	Committed
)

func (k OutcomeKind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Tracking:
		return "tracking"
	case SpringBack:
		return "spring_back"
	case PhotoCycled:
		return "photo_cycled"
	case Committed:
		return "committed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome reports what a pointer event did.
type Outcome struct {
	Kind      OutcomeKind
	Direction models.Direction // set when Kind == Committed
	PhotoIdx  int              // set when Kind == PhotoCycled
}

// Controller is the drag state of the bound top card. It lives for as long
// as its card is the front of the deck.
type Controller struct {
	session *Session
	card    models.Profile

	active    bool
	pointerID int
	startX    float64
	startY    float64
	dx, dy    float64

	lastTap  time.Time
	photoIdx int
}

func newController(s *Session, card models.Profile) *Controller {
	return &Controller{session: s, card: card}
}

func (c *Controller) CardID() string { return c.card.ID }

func (c *Controller) PhotoIndex() int { return c.photoIdx }

// Handle runs one pointer event through the state machine.
func (c *Controller) Handle(ev PointerEvent) Outcome {
	switch ev.Kind {
	case PointerDown:
		return c.down(ev)
	case PointerMove:
		return c.move(ev)
	case PointerUp, PointerCancel:
		return c.release(ev)
	}
	return Outcome{Kind: Ignored}
}

func (c *Controller) down(ev PointerEvent) Outcome {
	// stale handler on a card that is leaving the deck
	if !c.session.isTop(c.card.ID) {
		return Outcome{Kind: Ignored}
	}
	if ev.Button != primaryButton {
		return Outcome{Kind: Ignored}
	}

	c.active = true
	c.pointerID = ev.PointerID
	c.startX, c.startY = ev.X, ev.Y
	c.dx, c.dy = 0, 0

	surface := c.session.surface
	surface.CapturePointer(c.card.ID, ev.PointerID)
	surface.SetTransition(c.card.ID, NoTransition)
	surface.SetCursor(c.card.ID, CursorGrabbing)
	return Outcome{Kind: Tracking}
}

func (c *Controller) move(ev PointerEvent) Outcome {
	if !c.active || ev.PointerID != c.pointerID {
		return Outcome{Kind: Ignored}
	}
	c.dx = ev.X - c.startX
	c.dy = ev.Y - c.startY

	surface := c.session.surface
	surface.ApplyTransform(c.card.ID, dragTransform(c.dx, c.dy))
	surface.SetOverlayOpacity(c.card.ID, overlayFor(c.dx, c.dy))
	return Outcome{Kind: Tracking}
}

func (c *Controller) release(ev PointerEvent) Outcome {
	if !c.active || ev.PointerID != c.pointerID {
		return Outcome{Kind: Ignored}
	}
	c.active = false
	dx, dy := c.dx, c.dy
	c.dx, c.dy = 0, 0

	surface := c.session.surface
	surface.SetCursor(c.card.ID, CursorGrab)

	if dir, ok := resolveRelease(dx, dy); ok {
		c.session.Dismiss(dir)
		return Outcome{Kind: Committed, Direction: dir}
	}

	surface.SetTransition(c.card.ID, springBack)
	surface.ApplyTransform(c.card.ID, Transform{})
	surface.SetOverlayOpacity(c.card.ID, Overlay{})

	if math.Abs(dx) < tapSlop && math.Abs(dy) < tapSlop {
		if c.tap(c.session.eventTime(ev)) {
			return Outcome{Kind: PhotoCycled, PhotoIdx: c.photoIdx}
		}
	}
	return Outcome{Kind: SpringBack}
}

// tap registers a tap and reports whether it completed a double tap that
// changed the photo.
func (c *Controller) tap(now time.Time) bool {
	if c.lastTap.IsZero() || now.Sub(c.lastTap) >= DoubleTapWindow {
		c.lastTap = now
		return false
	}
	// a third rapid tap starts a new sequence
	c.lastTap = time.Time{}

	n := c.card.PhotoCount()
	if n < 2 {
		return false
	}
	c.photoIdx = (c.photoIdx + 1) % n
	c.session.surface.ShowPhoto(c.card.ID, photoOf(c.card, c.photoIdx))
	return true
}

// resolveRelease applies the commit rule in priority order: right, left, up.
func resolveRelease(dx, dy float64) (models.Direction, bool) {
	switch {
	case dx > SwipeThreshold:
		return models.Like, true
	case dx < -SwipeThreshold:
		return models.Nope, true
	case dy < -SwipeThreshold:
		return models.Super, true
	}
	return "", false
}

func dragTransform(dx, dy float64) Transform {
	return Transform{X: dx, Y: dy, Unit: Pixel, Rotate: dx * rotationPerPx}
}

func overlayFor(dx, dy float64) Overlay {
	return Overlay{
		Like:  clamp01(dx / stampFullAt),
		Nope:  clamp01(-dx / stampFullAt),
		Super: clamp01(-dy / stampFullAt),
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func photoOf(p models.Profile, idx int) Photo {
	return Photo{
		Index: idx,
		Count: len(p.Imgs),
		URL:   p.Imgs[idx],
		Alt:   fmt.Sprintf("%s — profile photo %d of %d", p.Name, idx+1, len(p.Imgs)),
	}
}

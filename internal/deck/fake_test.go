package deck

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"SwipeDeck/internal/models"
)

// fakeSurface records what the session drew, keeping a model of the
// visual stack so tests can compare it with the logical deck.
type fakeSurface struct {
	cards       []string
	transforms  map[string]Transform
	transitions map[string]Transition
	opacity     map[string]float64
	overlays    map[string]Overlay
	photos      map[string]Photo
	interactive map[string]bool
	captured    map[string]int
	cursors     map[string]Cursor
	hint        Hint
	renders     int
	removed     []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		transforms:  map[string]Transform{},
		transitions: map[string]Transition{},
		opacity:     map[string]float64{},
		overlays:    map[string]Overlay{},
		photos:      map[string]Photo{},
		interactive: map[string]bool{},
		captured:    map[string]int{},
		cursors:     map[string]Cursor{},
	}
}

func (f *fakeSurface) RenderDeck(profiles []models.Profile) {
	f.renders++
	f.cards = f.cards[:0]
	for _, p := range profiles {
		f.cards = append(f.cards, p.ID)
		f.interactive[p.ID] = true
		f.opacity[p.ID] = 1
	}
}

func (f *fakeSurface) RemoveCard(cardID string) {
	f.removed = append(f.removed, cardID)
	for i, id := range f.cards {
		if id == cardID {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return
		}
	}
}

func (f *fakeSurface) ApplyTransform(cardID string, t Transform) { f.transforms[cardID] = t }
func (f *fakeSurface) SetTransition(cardID string, t Transition) { f.transitions[cardID] = t }
func (f *fakeSurface) SetOpacity(cardID string, o float64) { f.opacity[cardID] = o }
func (f *fakeSurface) SetOverlayOpacity(cardID string, o Overlay) { f.overlays[cardID] = o }
func (f *fakeSurface) ShowPhoto(cardID string, p Photo) { f.photos[cardID] = p }
func (f *fakeSurface) SetInteractive(cardID string, enabled bool) { f.interactive[cardID] = enabled }
func (f *fakeSurface) CapturePointer(cardID string, pointerID int) { f.captured[cardID] = pointerID }
func (f *fakeSurface) SetCursor(cardID string, c Cursor) { f.cursors[cardID] = c }
func (f *fakeSurface) SetHint(h Hint) { f.hint = h }

// manualScheduler holds timers until the test fires them.
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := &manualTimer{d: d, f: f}
	m.timers = append(m.timers, t)
	return func() { t.stopped = true }
}

func (m *manualScheduler) fireAll() {
	for _, t := range m.timers {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

// staticGenerator deals fixed profiles; each deal gets fresh ids.
type staticGenerator struct {
	photos []int
	deals  int
}

func (g *staticGenerator) Generate(count int) []models.Profile {
	g.deals++
	if count <= 0 {
		count = 12
	}
	out := make([]models.Profile, count)
	for i := range out {
		n := 3
		if i < len(g.photos) {
			n = g.photos[i]
		}
		imgs := make([]string, n)
		for j := range imgs {
			imgs[j] = fmt.Sprintf("https://img.test/%d/%d.jpg", i, j)
		}
		out[i] = models.Profile{
			ID:   fmt.Sprintf("p_%d_deal%d", i, g.deals),
			Name: fmt.Sprintf("Name %d", i),
			Age:  25,
			Imgs: imgs,
			Img:  imgs[0],
		}
	}
	return out
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	s     *Session
	surf  *fakeSurface
	sched *manualScheduler
	clock *fakeClock
	gen   *staticGenerator
}

func newHarness(size int, photos ...int) *harness {
	h := &harness{
		surf:  newFakeSurface(),
		sched: &manualScheduler{},
		clock: &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
		gen:   &staticGenerator{photos: photos},
	}
	h.s = NewSession("sess-1", h.surf, h.gen, h.sched, Options{
		DeckSize:     size,
		DismissGrace: 100 * time.Millisecond,
		Now:          h.clock.Now,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	h.s.Reset()
	return h
}

func (h *harness) top() string {
	p, _ := h.s.Top()
	return p.ID
}

func (h *harness) pointer(kind PointerKind, x, y float64) Outcome {
	return h.s.HandlePointer(PointerEvent{Kind: kind, CardID: h.top(), PointerID: 1, X: x, Y: y})
}

// drag presses at the origin, moves to (dx, dy) and releases there.
func (h *harness) drag(dx, dy float64) Outcome {
	h.pointer(PointerDown, 100, 100)
	h.pointer(PointerMove, 100+dx, 100+dy)
	return h.pointer(PointerUp, 100+dx, 100+dy)
}

func (h *harness) tap() Outcome {
	h.pointer(PointerDown, 50, 50)
	return h.pointer(PointerUp, 50, 50)
}

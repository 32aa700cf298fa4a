package deck

import (
	"log/slog"
	"time"

	"SwipeDeck/internal/models"
)

// Generator produces a fresh profile sequence for a reset.
type Generator interface {
	Generate(count int) []models.Profile
}

// Scheduler runs f after d on the session's own goroutine. The returned
// func cancels a timer that has not fired yet.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

type Options struct {
	DeckSize int
	// DismissGrace is how long past the fly-off duration the session waits
	// for the surface before completing a dismissal on its own.
	DismissGrace time.Duration
	Now          func() time.Time
	Logger       *slog.Logger
}

// Session owns the logical deck, the controller bound to its front card
// and the dismissal in flight. It is not safe for concurrent use; Loop
// serializes access.
type Session struct {
	id        string
	deck      []models.Profile
	surface   Surface
	gen       Generator
	scheduler Scheduler

	controller *Controller
	pending    *dismissal
	dismissSeq int
	tally      map[models.Direction]int

	deckSize int
	grace    time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewSession(id string, surface Surface, gen Generator, scheduler Scheduler, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		id:        id,
		surface:   surface,
		gen:       gen,
		scheduler: scheduler,
		tally:     make(map[models.Direction]int),
		deckSize:  opts.DeckSize,
		grace:     opts.DismissGrace,
		now:       opts.Now,
		logger:    opts.Logger.With("session_id", id),
	}
}

func (s *Session) ID() string { return s.id }

// Reset discards all state and deals a new deck.
func (s *Session) Reset() {
	if s.pending != nil {
		s.pending.abandon()
		s.pending = nil
	}
	s.deck = s.gen.Generate(s.deckSize)
	s.tally = make(map[models.Direction]int)
	s.logger.Debug("deck reset", "profiles", len(s.deck))
	s.Render()
}

// SetSurface swaps the rendering target and redraws the current deck on it.
// A dismissal in flight is completed first since the new surface never saw
// it start.
func (s *Session) SetSurface(surface Surface) {
	if s.pending != nil {
		s.pending.complete()
	}
	s.surface = surface
	s.Render()
}

// HandlePointer routes a pointer event to the bound controller. Events for
// any other card are dropped.
func (s *Session) HandlePointer(ev PointerEvent) Outcome {
	if s.controller == nil || ev.CardID != s.controller.CardID() {
		return Outcome{Kind: Ignored}
	}
	return s.controller.Handle(ev)
}

// Controller returns the controller bound to the top card, or nil.
func (s *Session) Controller() *Controller { return s.controller }

// Profiles returns a copy of the logical deck, front first.
func (s *Session) Profiles() []models.Profile {
	out := make([]models.Profile, len(s.deck))
	copy(out, s.deck)
	return out
}

func (s *Session) Len() int { return len(s.deck) }

// Top returns the front profile, if any.
func (s *Session) Top() (models.Profile, bool) {
	if len(s.deck) == 0 {
		return models.Profile{}, false
	}
	return s.deck[0], true
}

func (s *Session) Dismissing() bool { return s.pending != nil }

// Snapshot is a read-only view of a session for the REST API.
type Snapshot struct {
	SessionID  string                   `json:"session_id"`
	Remaining  int                      `json:"remaining"`
	Top        *models.Profile          `json:"top"`
	Dismissing bool                     `json:"dismissing"`
	Tally      map[models.Direction]int `json:"tally"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Remaining:  len(s.deck),
		Dismissing: s.pending != nil,
		Tally: map[models.Direction]int{
			models.Like:  s.tally[models.Like],
			models.Nope:  s.tally[models.Nope],
			models.Super: s.tally[models.Super],
		},
	}
	if top, ok := s.Top(); ok {
		snap.Top = &top
	}
	return snap
}

// isTop reports whether cardID is the interactive front card. A card that
// is flying off is no longer interactive.
func (s *Session) isTop(cardID string) bool {
	return len(s.deck) > 0 && s.deck[0].ID == cardID && s.pending == nil
}

func (s *Session) bindTop() {
	s.controller = nil
	if top, ok := s.Top(); ok {
		s.controller = newController(s, top)
	}
}

func (s *Session) eventTime(ev PointerEvent) time.Time {
	if ev.Time.IsZero() {
		return s.now()
	}
	return ev.Time
}

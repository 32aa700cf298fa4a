package deck

import (
	"sync"

	"SwipeDeck/internal/models"
)

// Dismiss flies the top card off in dir. The card leaves the logical deck
// once the fly-off completes. Returns false, doing nothing, when there is no
// top card or a dismissal is already in flight.
func (s *Session) Dismiss(dir models.Direction) bool {
	top, ok := s.Top()
	if !ok || s.pending != nil {
		return false
	}

	// the abandoned controller must not start a new drag
	s.controller = nil

	s.dismissSeq++
	d := &dismissal{cardID: top.ID, dir: dir, seq: s.dismissSeq}
	d.onDone = func() { s.finishDismissal(d, top) }

	transition := flyOff
	transition.Seq = d.seq
	s.surface.SetTransition(top.ID, transition)
	s.surface.ApplyTransform(top.ID, flyOffTransform(dir))
	s.surface.SetOpacity(top.ID, 0)
	s.surface.SetInteractive(top.ID, false)

	s.pending = d
	if s.scheduler != nil {
		d.cancelTimer = s.scheduler.AfterFunc(flyOff.Duration+s.grace, func() { d.complete() })
	}
	return true
}

// TransitionEnd reports that the surface finished the transition tagged
// seq on cardID. Only the first report for the fly-off in flight counts;
// ends of earlier transitions on the same card carry another seq.
func (s *Session) TransitionEnd(cardID string, seq int) bool {
	if s.pending == nil || s.pending.cardID != cardID || s.pending.seq != seq {
		return false
	}
	return s.pending.complete()
}

func (s *Session) finishDismissal(d *dismissal, card models.Profile) {
	if s.pending != d {
		return
	}
	s.pending = nil

	s.surface.RemoveCard(card.ID)
	s.deck = s.deck[1:]
	s.tally[d.dir]++
	s.logger.Info("dismissed", "direction", d.dir, "profile_id", card.ID, "name", card.Name, "remaining", len(s.deck))

	s.updateHint()
	s.bindTop()
}

func flyOffTransform(dir models.Direction) Transform {
	switch dir {
	case models.Like:
		return Transform{X: 150, Unit: Percent, Rotate: 30}
	case models.Nope:
		return Transform{X: -150, Unit: Percent, Rotate: -30}
	default:
		return Transform{Y: -150, Unit: Percent}
	}
}

// dismissal is the single-shot completion of one fly-off.
type dismissal struct {
	cardID      string
	dir         models.Direction
	seq         int
	once        sync.Once
	onDone      func()
	cancelTimer func()
}

// complete resolves the dismissal; it returns true only for the call that
// actually resolved it.
func (d *dismissal) complete() bool {
	fired := false
	d.once.Do(func() {
		fired = true
		if d.cancelTimer != nil {
			d.cancelTimer()
		}
		d.onDone()
	})
	return fired
}

// abandon resolves the dismissal without running its completion.
func (d *dismissal) abandon() {
	d.once.Do(func() {
		if d.cancelTimer != nil {
			d.cancelTimer()
		}
	})
}

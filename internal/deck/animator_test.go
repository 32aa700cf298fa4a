package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SwipeDeck/internal/models"
)

func TestDismiss_FlyOffPerDirection(t *testing.T) {
	tests := []struct {
		dir  models.Direction
		want Transform
		css  string
	}{
		{models.Like, Transform{X: 150, Unit: Percent, Rotate: 30}, "translateX(150%) translateY(0%) rotate(30deg)"},
		{models.Nope, Transform{X: -150, Unit: Percent, Rotate: -30}, "translateX(-150%) translateY(0%) rotate(-30deg)"},
		{models.Super, Transform{Y: -150, Unit: Percent}, "translateX(0%) translateY(-150%) rotate(0deg)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			h := newHarness(3)
			id := h.top()

			require.True(t, h.s.Dismiss(tt.dir))

			assert.Equal(t, tt.want, h.surf.transforms[id])
			assert.Equal(t, tt.css, h.surf.transforms[id].CSS())
			want := flyOff
			want.Seq = h.seq()
			assert.Equal(t, want, h.surf.transitions[id])
			assert.NotZero(t, want.Seq)
			assert.Equal(t, "transform 380ms cubic-bezier(.5,0,.8,.5), opacity 380ms ease", flyOff.CSS())
			assert.Zero(t, h.surf.opacity[id])
			assert.False(t, h.surf.interactive[id])
			// still on deck until the transition completes
			assert.Equal(t, 3, h.s.Len())
			assert.Len(t, h.surf.cards, 3)
		})
	}
}

func TestDismiss_CompletionAdvancesDeck(t *testing.T) {
	h := newHarness(4)
	before := h.s.Profiles()

	require.True(t, h.s.Dismiss(models.Nope))
	require.True(t, h.s.TransitionEnd(before[0].ID, h.seq()))

	after := h.s.Profiles()
	assert.Len(t, after, len(before)-1)
	assert.Equal(t, before[1].ID, after[0].ID)
	assert.Equal(t, []string{before[0].ID}, h.surf.removed)
	assertVisualMatchesDeck(t, h)

	require.NotNil(t, h.s.Controller())
	assert.Equal(t, before[1].ID, h.s.Controller().CardID())
	assert.False(t, h.s.Dismissing())
	assert.Equal(t, 1, h.s.Snapshot().Tally[models.Nope])
}

func TestDismiss_CompletesExactlyOnce(t *testing.T) {
	h := newHarness(4)
	first := h.top()

	require.True(t, h.s.Dismiss(models.Like))
	seq := h.seq()

	assert.True(t, h.s.TransitionEnd(first, seq))
	// opacity and transform both end; the fallback timer fires too
	assert.False(t, h.s.TransitionEnd(first, seq))
	h.sched.fireAll()

	assert.Equal(t, 3, h.s.Len())
	assert.Len(t, h.surf.removed, 1)
}

func TestDismiss_FallbackTimerCompletes(t *testing.T) {
	h := newHarness(2)
	first := h.top()

	require.True(t, h.s.Dismiss(models.Super))
	seq := h.seq()
	require.Len(t, h.sched.timers, 1)
	assert.Equal(t, flyOff.Duration+h.s.grace, h.sched.timers[0].d)

	h.sched.fireAll()

	assert.Equal(t, 1, h.s.Len())
	assert.False(t, h.s.TransitionEnd(first, seq))
	assert.Len(t, h.surf.removed, 1)
}

func TestDismiss_TransitionEndCancelsTimer(t *testing.T) {
	h := newHarness(2)

	require.True(t, h.s.Dismiss(models.Like))
	require.True(t, h.s.TransitionEnd(h.top(), h.seq()))

	assert.True(t, h.sched.timers[0].stopped)
}

func TestDismiss_NoOpWhileInFlight(t *testing.T) {
	h := newHarness(3)

	require.True(t, h.s.Dismiss(models.Like))
	assert.False(t, h.s.Dismiss(models.Like))
	assert.False(t, h.s.Dismiss(models.Nope))

	h.sched.fireAll()

	assert.Equal(t, 2, h.s.Len())
	assert.Len(t, h.surf.removed, 1)
}

func TestDismiss_NoOpOnEmptyDeck(t *testing.T) {
	h := newHarness(1)

	require.True(t, h.s.Dismiss(models.Like))
	h.sched.fireAll()
	require.Zero(t, h.s.Len())

	assert.False(t, h.s.Dismiss(models.Like))
	assert.Nil(t, h.s.Controller())
	assert.True(t, h.surf.hint.Empty)
	assert.Equal(t, hintEmpty, h.surf.hint.HTML)
}

func TestTransitionEnd_UnknownCardIgnored(t *testing.T) {
	h := newHarness(3)
	second := h.s.Profiles()[1].ID

	assert.False(t, h.s.TransitionEnd(h.top(), h.seq()))

	require.True(t, h.s.Dismiss(models.Like))
	assert.False(t, h.s.TransitionEnd(second, h.seq()))
	assert.Equal(t, 3, h.s.Len())
}

func TestTransitionEnd_IgnoresEarlierTransitionOnSameCard(t *testing.T) {
	h := newHarness(3)
	first := h.top()

	require.Equal(t, SpringBack, h.drag(40, 0).Kind)
	assert.Equal(t, springBack, h.surf.transitions[first])
	require.True(t, h.s.Dismiss(models.Like))
	seq := h.seq()

	// the spring-back ends after the button press; it carries no tag
	assert.False(t, h.s.TransitionEnd(first, 0))
	assert.False(t, h.s.TransitionEnd(first, seq+1))
	assert.Equal(t, 3, h.s.Len())
	assert.Empty(t, h.surf.removed)
	assert.True(t, h.s.Dismissing())

	assert.True(t, h.s.TransitionEnd(first, seq))
	assert.Equal(t, []string{first}, h.surf.removed)
}

func TestDismiss_SeqIncreasesPerFlyOff(t *testing.T) {
	h := newHarness(3)

	require.True(t, h.s.Dismiss(models.Like))
	first := h.seq()
	require.True(t, h.s.TransitionEnd(h.flying(), first))
	require.True(t, h.s.Dismiss(models.Nope))

	assert.Greater(t, h.seq(), first)
	assert.Equal(t, h.seq(), h.surf.transitions[h.flying()].Seq)
}

func TestDismiss_WholeDeck(t *testing.T) {
	h := newHarness(12)

	for i := 0; i < 12; i++ {
		dir := []models.Direction{models.Like, models.Nope, models.Super}[i%3]
		if i%2 == 0 {
			require.True(t, h.s.Dismiss(dir))
		} else {
			require.Equal(t, Committed, h.drag(-120, 0).Kind)
		}
		require.True(t, h.s.TransitionEnd(h.flying(), h.seq()))
		assertVisualMatchesDeck(t, h)
	}

	assert.Zero(t, h.s.Len())
	assert.True(t, h.surf.hint.Empty)
	assert.Nil(t, h.s.Controller())
}

func TestReset_DealsTwelveAndRedraws(t *testing.T) {
	h := newHarness(12)
	require.True(t, h.s.Dismiss(models.Like))
	h.sched.fireAll()
	require.Equal(t, 11, h.s.Len())

	h.s.Reset()

	assert.Equal(t, 12, h.s.Len())
	assertVisualMatchesDeck(t, h)
	assert.Equal(t, hintTip, h.surf.hint.HTML)
	assert.False(t, h.surf.hint.Empty)
	assert.Zero(t, h.s.Snapshot().Tally[models.Like])
}

func TestReset_AbandonsDismissalInFlight(t *testing.T) {
	h := newHarness(5)
	old := h.top()

	require.True(t, h.s.Dismiss(models.Like))
	seq := h.seq()
	h.s.Reset()

	// late completion signals for the old deck change nothing
	assert.False(t, h.s.TransitionEnd(old, seq))
	h.sched.fireAll()

	assert.Equal(t, 5, h.s.Len())
	assert.Empty(t, h.surf.removed)
	assert.False(t, h.s.Dismissing())
	assert.True(t, h.s.Dismiss(models.Nope))
}

func TestSetSurface_RedrawsAndFinishesDismissal(t *testing.T) {
	h := newHarness(3)
	require.True(t, h.s.Dismiss(models.Like))

	next := newFakeSurface()
	h.s.SetSurface(next)

	assert.Equal(t, 2, h.s.Len())
	assert.Equal(t, 1, next.renders)
	assert.Equal(t, h.s.Profiles()[0].ID, next.cards[0])
	assert.Len(t, next.cards, 2)
	assert.Equal(t, hintTip, next.hint.HTML)
}

func TestSnapshot(t *testing.T) {
	h := newHarness(2)

	snap := h.s.Snapshot()
	assert.Equal(t, "sess-1", snap.SessionID)
	assert.Equal(t, 2, snap.Remaining)
	require.NotNil(t, snap.Top)
	assert.Equal(t, h.top(), snap.Top.ID)
	assert.Len(t, snap.Tally, 3)

	h.s.Dismiss(models.Super)
	assert.True(t, h.s.Snapshot().Dismissing)
	h.sched.fireAll()
	h.s.Dismiss(models.Super)
	h.sched.fireAll()

	snap = h.s.Snapshot()
	assert.Nil(t, snap.Top)
	assert.Zero(t, snap.Remaining)
	assert.Equal(t, 2, snap.Tally[models.Super])
}

// flying returns the id of the card currently flying off.
func (h *harness) flying() string {
	return h.s.pending.cardID
}

// seq returns the tag of the fly-off in flight, or 0.
func (h *harness) seq() int {
	if h.s.pending == nil {
		return 0
	}
	return h.s.pending.seq
}

func assertVisualMatchesDeck(t *testing.T, h *harness) {
	t.Helper()
	ids := make([]string, 0, h.s.Len())
	for _, p := range h.s.Profiles() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, ids, h.surf.cards)
}

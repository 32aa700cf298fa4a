package deck

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"SwipeDeck/internal/models"
)

// Surface is the rendering side of a session. The session never reads
// back from it; everything it knows about the deck lives in Session.
type Surface interface {
	// RenderDeck replaces the whole visual stack, front card first.
	RenderDeck(profiles []models.Profile)
	RemoveCard(cardID string)

	ApplyTransform(cardID string, t Transform)
	SetTransition(cardID string, t Transition)
	SetOpacity(cardID string, opacity float64)
	SetOverlayOpacity(cardID string, o Overlay)
	ShowPhoto(cardID string, photo Photo)
	SetInteractive(cardID string, enabled bool)
	CapturePointer(cardID string, pointerID int)
	SetCursor(cardID string, c Cursor)

	SetHint(h Hint)
}

type Unit string

const (
	Pixel   Unit = "px"
	Percent Unit = "%"
)

// Transform is a translate followed by a rotate. The zero value is the
// identity (rest position).
type Transform struct {
	X, Y   float64
	Unit   Unit
	Rotate float64 // degrees
}

func (t Transform) IsIdentity() bool {
	return t.X == 0 && t.Y == 0 && t.Rotate == 0
}

// CSS renders the transform as a CSS transform value; the identity is "".
func (t Transform) CSS() string {
	if t.IsIdentity() {
		return ""
	}
	unit := t.Unit
	if unit == "" {
		unit = Pixel
	}
	return fmt.Sprintf("translateX(%s%s) translateY(%s%s) rotate(%sdeg)",
		num(t.X), unit, num(t.Y), unit, num(t.Rotate))
}

// num trims float noise such as 7.000000000000001 from CSS output.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

// Transition describes how the surface animates towards the next transform.
type Transition struct {
	Property string
	Duration time.Duration
	Easing   string
	// Fade also animates opacity with the same duration.
	Fade bool
	// Seq tags a fly-off; the surface echoes it when the transition ends.
	// Zero for every other transition.
	Seq int
}

var (
	NoTransition = Transition{}

	springBack = Transition{
		Property: "transform",
		Duration: 300 * time.Millisecond,
		Easing:   "cubic-bezier(.3,1.4,.6,1)",
	}
	flyOff = Transition{
		Property: "transform",
		Duration: 380 * time.Millisecond,
		Easing:   "cubic-bezier(.5,0,.8,.5)",
		Fade:     true,
	}
)

func (t Transition) CSS() string {
	if t.Duration == 0 {
		return "none"
	}
	css := fmt.Sprintf("%s %dms %s", t.Property, t.Duration.Milliseconds(), t.Easing)
	if t.Fade {
		css += fmt.Sprintf(", opacity %dms ease", t.Duration.Milliseconds())
	}
	return css
}

// Overlay holds the stamp opacities, each in [0,1].
type Overlay struct {
	Like  float64
	Nope  float64
	Super float64
}

type Photo struct {
	Index int
	Count int
	URL   string
	Alt   string
}

type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

// Hint is the status line under the deck.
type Hint struct {
	Empty bool
	HTML  string
}

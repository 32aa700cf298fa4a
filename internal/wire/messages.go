/**
* Name: 			messages.go
* Description: 		브라우저와 덱 세션 사이의 WebSocket JSON 메시지
* Workflow: 		client -> server: 포인터/버튼/트랜지션 이벤트, server -> client: 렌더 명령
 */
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/models"
)

var ErrUnknownMessage = errors.New("unknown message type")

// Client -> Server message types
const (
	TypePointerDown   = "pointerdown"
	TypePointerMove   = "pointermove"
	TypePointerUp     = "pointerup"
	TypePointerCancel = "pointercancel"
	TypeTransitionEnd = "transitionend"
	TypeAction        = "action"
	TypeReset         = "reset"
)

// ClientMessage is one event sent by the page.
type ClientMessage struct {
	Type      string  `json:"type"`
	Card      string  `json:"card,omitempty"`
	Pointer   int     `json:"pointer,omitempty"`
	Button    int     `json:"button,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	T         int64   `json:"t,omitempty"` // client epoch millis
	Direction string  `json:"direction,omitempty"`
	Seq       int     `json:"seq,omitempty"` // echoed fly-off tag on transitionend
}

var pointerKinds = map[string]deck.PointerKind{
	TypePointerDown:   deck.PointerDown,
	TypePointerMove:   deck.PointerMove,
	TypePointerUp:     deck.PointerUp,
	TypePointerCancel: deck.PointerCancel,
}

// Task is a decoded message ready to run on the session loop.
type Task func(s *deck.Session)

// Decode parses one client message into a session task.
func Decode(raw []byte) (Task, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return msg.Task()
}

func (m ClientMessage) Task() (Task, error) {
	if kind, ok := pointerKinds[m.Type]; ok {
		ev := m.pointerEvent(kind)
		return func(s *deck.Session) { s.HandlePointer(ev) }, nil
	}

	switch m.Type {
	case TypeTransitionEnd:
		card, seq := m.Card, m.Seq
		return func(s *deck.Session) { s.TransitionEnd(card, seq) }, nil
	case TypeAction:
		dir, err := models.ParseDirection(m.Direction)
		if err != nil {
			return nil, err
		}
		return func(s *deck.Session) { s.Dismiss(dir) }, nil
	case TypeReset:
		return (*deck.Session).Reset, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
}

func (m ClientMessage) pointerEvent(kind deck.PointerKind) deck.PointerEvent {
	ev := deck.PointerEvent{
		Kind:      kind,
		CardID:    m.Card,
		PointerID: m.Pointer,
		Button:    m.Button,
		X:         m.X,
		Y:         m.Y,
	}
	if m.T > 0 {
		ev.Time = time.UnixMilli(m.T)
	}
	return ev
}

// Server -> Client ops
const (
	OpRender      = "render"
	OpTransform   = "transform"
	OpTransition  = "transition"
	OpOpacity     = "opacity"
	OpStamps      = "stamps"
	OpPhoto       = "photo"
	OpInteractive = "interactive"
	OpCapture     = "capture"
	OpCursor      = "cursor"
	OpRemove      = "remove"
	OpHint        = "hint"
	OpError       = "error"
)

// Command is one render instruction for the page. Only the fields of its
// op are set.
type Command struct {
	Op         string           `json:"op"`
	Card       string           `json:"card,omitempty"`
	Cards      []models.Profile `json:"cards,omitempty"`
	Transform  *string          `json:"transform,omitempty"`
	Transition string           `json:"transition,omitempty"`
	Seq        int              `json:"seq,omitempty"`
	Opacity    *float64         `json:"opacity,omitempty"`
	Stamps     *Stamps          `json:"stamps,omitempty"`
	Photo      *PhotoPayload    `json:"photo,omitempty"`
	Enabled    *bool            `json:"enabled,omitempty"`
	Pointer    *int             `json:"pointer,omitempty"`
	Cursor     string           `json:"cursor,omitempty"`
	Hint       *HintPayload     `json:"hint,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type Stamps struct {
	Like  float64 `json:"like"`
	Nope  float64 `json:"nope"`
	Super float64 `json:"super"`
}

type PhotoPayload struct {
	Index int    `json:"index"`
	Count int    `json:"count"`
	Src   string `json:"src"`
	Alt   string `json:"alt"`
}

type HintPayload struct {
	Empty bool   `json:"empty"`
	HTML  string `json:"html"`
}

func ErrorCommand(err error) Command {
	return Command{Op: OpError, Error: err.Error()}
}

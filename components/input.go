package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerKind is the device behind a pointer event
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

func (k PointerKind) String() string {
	if k == PointerTouch {
		return "touch"
	}
	return "mouse"
}

type PointerEventType int

const (
	PointerDown PointerEventType = iota
	PointerMove
	PointerUp
)

func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	}
	return "pointer"
}

// PointerEvent drives the drag controller.
type PointerEvent struct {
	Type      PointerEventType
	Kind      PointerKind
	ID        int
	ClientX   float64
	ClientY   float64
	IsPrimary bool
}

// MoveEvent drives the tilt controller. Touches lists active contacts, first first.
type MoveEvent struct {
	Kind    PointerKind
	ClientX float64
	ClientY float64
	Touches []math.Vec2
}

// PointerQueueData holds the events polled this tick. It is cleared before each poll.
type PointerQueueData struct {
	Pointer []PointerEvent
	Moves   []MoveEvent
}

var PointerQueue = donburi.NewComponentType[PointerQueueData]()

package systems

import (
	"image"

	"github.com/automoto/ringview/archetypes"
	"github.com/automoto/ringview/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PointerSource fills the queue with this tick's pointer activity.
type PointerSource interface {
	Poll(q *components.PointerQueueData)
}

// NewUpdatePointerInput clears the pointer queue and polls src into it.
// Must run BEFORE the drag and tilt systems.
func NewUpdatePointerInput(src PointerSource) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		q := getOrCreatePointerQueue(ecs)
		q.Pointer = q.Pointer[:0]
		q.Moves = q.Moves[:0]
		if src != nil {
			src.Poll(q)
		}
	}
}

// getOrCreatePointerQueue returns the singleton PointerQueue component, creating if needed
func getOrCreatePointerQueue(ecs *ecs.ECS) *components.PointerQueueData {
	entry, ok := components.PointerQueue.First(ecs.World)
	if !ok {
		entry = archetypes.PointerQueue.Spawn(ecs)
	}
	return components.PointerQueue.Get(entry)
}

// EbitenPointerSource translates Ebiten mouse and touch state into pointer events.
// The left mouse button is always primary.
type EbitenPointerSource struct {
	cursor      image.Point
	cursorKnown bool

	touches touchTracker

	// Reusable slices to avoid per-frame allocations
	touchIDs []ebiten.TouchID
	pressed  []touchSample
	active   []touchSample
	released []touchSample
}

func NewEbitenPointerSource() *EbitenPointerSource {
	return &EbitenPointerSource{}
}

func (s *EbitenPointerSource) Poll(q *components.PointerQueueData) {
	s.pollMouse(q)
	s.pollTouches(q)
}

func (s *EbitenPointerSource) pollMouse(q *components.PointerQueueData) {
	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	ev := components.PointerEvent{
		Kind:      components.PointerMouse,
		ClientX:   float64(x),
		ClientY:   float64(y),
		IsPrimary: true,
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.Type = components.PointerDown
		q.Pointer = append(q.Pointer, ev)
	}
	if !s.cursorKnown || pos != s.cursor {
		ev.Type = components.PointerMove
		q.Pointer = append(q.Pointer, ev)
		q.Moves = append(q.Moves, components.MoveEvent{
			Kind:    components.PointerMouse,
			ClientX: ev.ClientX,
			ClientY: ev.ClientY,
		})
		s.cursor = pos
		s.cursorKnown = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ev.Type = components.PointerUp
		q.Pointer = append(q.Pointer, ev)
	}
}

func (s *EbitenPointerSource) pollTouches(q *components.PointerQueueData) {
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	s.pressed = s.pressed[:0]
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.pressed = append(s.pressed, touchSample{ID: id, X: x, Y: y})
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.active = s.active[:0]
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.active = append(s.active, touchSample{ID: id, X: x, Y: y})
	}

	s.released = s.released[:0]
	for _, id := range s.touches.tracked() {
		if inpututil.IsTouchJustReleased(id) {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			s.released = append(s.released, touchSample{ID: id, X: x, Y: y})
		}
	}

	s.touches.update(q, s.pressed, s.active, s.released)
}

// touchSample is one contact's position this tick.
type touchSample struct {
	ID   ebiten.TouchID
	X, Y int
}

// touchTracker turns per-tick touch snapshots into pointer events. A touch
// that lands while no other touch is held is primary until it lifts; touches
// landing alongside it never become primary.
type touchTracker struct {
	primary    ebiten.TouchID
	hasPrimary bool
	last       map[ebiten.TouchID]image.Point
	order      []ebiten.TouchID // tracked touches in landing order
}

// tracked lists the held touches in landing order.
func (t *touchTracker) tracked() []ebiten.TouchID {
	return t.order
}

func (t *touchTracker) isPrimary(id ebiten.TouchID) bool {
	return t.hasPrimary && id == t.primary
}

// update emits downs for pressed, moves for active touches whose position
// changed, then ups for released.
func (t *touchTracker) update(q *components.PointerQueueData, pressed, active, released []touchSample) {
	if t.last == nil {
		t.last = make(map[ebiten.TouchID]image.Point)
	}

	for _, p := range pressed {
		if _, ok := t.last[p.ID]; ok {
			continue
		}
		if len(t.last) == 0 {
			t.primary = p.ID
			t.hasPrimary = true
		}
		t.last[p.ID] = image.Pt(p.X, p.Y)
		t.order = append(t.order, p.ID)
		q.Pointer = append(q.Pointer, touchEvent(components.PointerDown, p.ID, p.X, p.Y, t.isPrimary(p.ID)))
	}

	moved := false
	for _, a := range active {
		pos := image.Pt(a.X, a.Y)
		last, ok := t.last[a.ID]
		if !ok {
			continue
		}
		if last != pos {
			q.Pointer = append(q.Pointer, touchEvent(components.PointerMove, a.ID, a.X, a.Y, t.isPrimary(a.ID)))
			moved = true
		}
		t.last[a.ID] = pos
	}
	if moved {
		// Primary touch first, then the rest in landing order
		touches := make([]math.Vec2, 0, len(t.order))
		if t.hasPrimary {
			p := t.last[t.primary]
			touches = append(touches, math.Vec2{X: float64(p.X), Y: float64(p.Y)})
		}
		for _, id := range t.order {
			if t.isPrimary(id) {
				continue
			}
			p := t.last[id]
			touches = append(touches, math.Vec2{X: float64(p.X), Y: float64(p.Y)})
		}
		q.Moves = append(q.Moves, components.MoveEvent{
			Kind:    components.PointerTouch,
			ClientX: touches[0].X,
			ClientY: touches[0].Y,
			Touches: touches,
		})
	}

	for _, r := range released {
		if _, ok := t.last[r.ID]; !ok {
			continue
		}
		q.Pointer = append(q.Pointer, touchEvent(components.PointerUp, r.ID, r.X, r.Y, t.isPrimary(r.ID)))
		if t.isPrimary(r.ID) {
			t.hasPrimary = false
		}
		delete(t.last, r.ID)
		for i, id := range t.order {
			if id == r.ID {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

func touchEvent(t components.PointerEventType, id ebiten.TouchID, x, y int, primary bool) components.PointerEvent {
	return components.PointerEvent{
		Type:      t,
		Kind:      components.PointerTouch,
		ID:        int(id),
		ClientX:   float64(x),
		ClientY:   float64(y),
		IsPrimary: primary,
	}
}

// ScriptedTick is one tick's worth of canned input.
type ScriptedTick struct {
	Pointer []components.PointerEvent
	Moves   []components.MoveEvent
}

// ScriptedPointerSource replays canned input one tick at a time, then goes quiet.
type ScriptedPointerSource struct {
	Ticks []ScriptedTick
	next  int
}

func (s *ScriptedPointerSource) Poll(q *components.PointerQueueData) {
	if s.next >= len(s.Ticks) {
		return
	}
	t := s.Ticks[s.next]
	s.next++
	q.Pointer = append(q.Pointer, t.Pointer...)
	q.Moves = append(q.Moves, t.Moves...)
}

// Done reports whether every scripted tick has been replayed.
func (s *ScriptedPointerSource) Done() bool {
	return s.next >= len(s.Ticks)
}

// DragScript presses the primary mouse at (startX, y), moves distance pixels
// horizontally over steps ticks, then releases.
func DragScript(startX, y, distance float64, steps int) *ScriptedPointerSource {
	if steps < 1 {
		steps = 1
	}
	mouse := func(t components.PointerEventType, x float64) components.PointerEvent {
		return components.PointerEvent{Type: t, Kind: components.PointerMouse, ClientX: x, ClientY: y, IsPrimary: true}
	}

	s := &ScriptedPointerSource{}
	s.Ticks = append(s.Ticks, ScriptedTick{Pointer: []components.PointerEvent{mouse(components.PointerDown, startX)}})
	for i := 1; i <= steps; i++ {
		x := startX + distance*float64(i)/float64(steps)
		s.Ticks = append(s.Ticks, ScriptedTick{
			Pointer: []components.PointerEvent{mouse(components.PointerMove, x)},
			Moves:   []components.MoveEvent{{Kind: components.PointerMouse, ClientX: x, ClientY: y}},
		})
	}
	s.Ticks = append(s.Ticks, ScriptedTick{Pointer: []components.PointerEvent{mouse(components.PointerUp, startX+distance)}})
	return s
}

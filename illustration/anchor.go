// Package illustration is a small pseudo-3D vector engine: a graph of anchors
// carrying stroked and filled paths, flattened each frame into a Z-sorted
// draw list and rendered with orthographic projection.
package illustration

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TAU is a full turn in radians.
const TAU = 2 * math.Pi

// Anchor is a node in the shape graph. An anchor with a nil Shape only
// groups and transforms its children.
type Anchor struct {
	Translate mgl64.Vec3
	Rotate    mgl64.Vec3 // radians about X, Y, Z; applied Z first, then Y, then X
	Scale     float64    // uniform; zero means 1
	Shape     *Shape

	parent   *Anchor
	children []*Anchor
}

// Option configures an anchor at construction or copy time.
type Option func(*Anchor)

func WithTranslate(v mgl64.Vec3) Option {
	return func(a *Anchor) { a.Translate = v }
}

func WithRotate(v mgl64.Vec3) Option {
	return func(a *Anchor) { a.Rotate = v }
}

func WithScale(s float64) Option {
	return func(a *Anchor) { a.Scale = s }
}

func WithColor(c color.Color) Option {
	return func(a *Anchor) {
		if a.Shape != nil {
			a.Shape.Color = c
		}
	}
}

// NewGroup adds an empty anchor under parent.
func NewGroup(parent *Anchor, opts ...Option) *Anchor {
	return attach(parent, &Anchor{}, opts)
}

// NewShape adds a drawable anchor under parent. An empty path draws a dot.
func NewShape(parent *Anchor, s Shape, opts ...Option) *Anchor {
	shape := s
	shape.Path = append([]Command(nil), s.Path...)
	return attach(parent, &Anchor{Shape: &shape}, opts)
}

// NewEllipse adds a closed ellipse of the given diameters. Any path in s is replaced.
func NewEllipse(parent *Anchor, width, height float64, s Shape, opts ...Option) *Anchor {
	s.Path = EllipsePath(width, height)
	s.Closed = true
	return NewShape(parent, s, opts...)
}

func attach(parent, a *Anchor, opts []Option) *Anchor {
	for _, o := range opts {
		o(a)
	}
	if parent != nil {
		parent.AddChild(a)
	}
	return a
}

// AddChild moves child under a.
func (a *Anchor) AddChild(child *Anchor) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = a
	a.children = append(a.children, child)
}

func (a *Anchor) removeChild(child *Anchor) {
	for i, c := range a.children {
		if c == child {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return
		}
	}
}

func (a *Anchor) Parent() *Anchor {
	return a.parent
}

func (a *Anchor) Children() []*Anchor {
	return a.children
}

// CopyGraph deep-copies a and its descendants, applies opts to the copy's
// root and adds it to a's parent.
func (a *Anchor) CopyGraph(opts ...Option) *Anchor {
	c := a.clone()
	for _, o := range opts {
		o(c)
	}
	if a.parent != nil {
		a.parent.AddChild(c)
	}
	return c
}

func (a *Anchor) clone() *Anchor {
	c := &Anchor{
		Translate: a.Translate,
		Rotate:    a.Rotate,
		Scale:     a.Scale,
	}
	if a.Shape != nil {
		s := *a.Shape
		s.Path = make([]Command, len(a.Shape.Path))
		for i, cmd := range a.Shape.Path {
			s.Path[i] = Command{Kind: cmd.Kind, Points: append([]mgl64.Vec3(nil), cmd.Points...)}
		}
		c.Shape = &s
	}
	for _, child := range a.children {
		cc := child.clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// transform applies this anchor's scale, rotation and translation to p.
func (a *Anchor) transform(p mgl64.Vec3) mgl64.Vec3 {
	if a.Scale != 0 && a.Scale != 1 {
		p = p.Mul(a.Scale)
	}
	p = rotate(p, a.Rotate)
	return p.Add(a.Translate)
}

// toWorld carries a point in a's local space up through every ancestor.
func (a *Anchor) toWorld(p mgl64.Vec3) mgl64.Vec3 {
	for n := a; n != nil; n = n.parent {
		p = n.transform(p)
	}
	return p
}

// worldScale is the product of scales from a to the root.
func (a *Anchor) worldScale() float64 {
	s := 1.0
	for n := a; n != nil; n = n.parent {
		if n.Scale != 0 {
			s *= n.Scale
		}
	}
	return s
}

func (a *Anchor) walk(fn func(*Anchor)) {
	fn(a)
	for _, c := range a.children {
		c.walk(fn)
	}
}

// rotate applies Z, then Y, then X. Each step rotates the pair (a, b) to
// (a·cos − b·sin, b·cos + a·sin): Z on (x, y), Y on (x, z), X on (y, z).
func rotate(p, r mgl64.Vec3) mgl64.Vec3 {
	p[0], p[1] = rotatePair(p[0], p[1], r[2])
	p[0], p[2] = rotatePair(p[0], p[2], r[1])
	p[1], p[2] = rotatePair(p[1], p[2], r[0])
	return p
}

func rotatePair(a, b, angle float64) (float64, float64) {
	if math.Mod(angle, TAU) == 0 {
		return a, b
	}
	sin, cos := math.Sincos(angle)
	return a*cos - b*sin, b*cos + a*sin
}

package illustration

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// arcHandle places both cubic handles of a quarter arc this far toward its corner.
const arcHandle = 9.0 / 16.0

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandLine
	CommandArc    // Points: corner, end
	CommandBezier // Points: control1, control2, end
)

// Command is one path step. The first command of a path only sets the start point.
type Command struct {
	Kind   CommandKind
	Points []mgl64.Vec3
}

func MoveTo(p mgl64.Vec3) Command {
	return Command{Kind: CommandMove, Points: []mgl64.Vec3{p}}
}

func LineTo(p mgl64.Vec3) Command {
	return Command{Kind: CommandLine, Points: []mgl64.Vec3{p}}
}

// ArcTo draws a quarter ellipse from the previous point to end, bulging toward corner.
func ArcTo(corner, end mgl64.Vec3) Command {
	return Command{Kind: CommandArc, Points: []mgl64.Vec3{corner, end}}
}

func BezierTo(c1, c2, end mgl64.Vec3) Command {
	return Command{Kind: CommandBezier, Points: []mgl64.Vec3{c1, c2, end}}
}

func (c Command) end() mgl64.Vec3 {
	if len(c.Points) == 0 {
		return mgl64.Vec3{}
	}
	return c.Points[len(c.Points)-1]
}

// Shape is the drawable part of an anchor.
type Shape struct {
	Path   []Command
	Stroke float64 // line width in illustration units; zero draws no outline
	Color  color.Color
	Fill   bool
	Closed bool
}

// EllipsePath is four quarter arcs starting at the top.
func EllipsePath(width, height float64) []Command {
	x, y := width/2, height/2
	return []Command{
		MoveTo(mgl64.Vec3{0, -y, 0}),
		ArcTo(mgl64.Vec3{x, -y, 0}, mgl64.Vec3{x, 0, 0}),
		ArcTo(mgl64.Vec3{x, y, 0}, mgl64.Vec3{0, y, 0}),
		ArcTo(mgl64.Vec3{-x, y, 0}, mgl64.Vec3{-x, 0, 0}),
		ArcTo(mgl64.Vec3{-x, -y, 0}, mgl64.Vec3{0, -y, 0}),
	}
}

// arcControls converts a quarter arc into cubic control points.
func arcControls(prev, corner, end mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	return lerp(prev, corner, arcHandle), lerp(end, corner, arcHandle)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

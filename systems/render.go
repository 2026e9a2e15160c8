package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/fonts"
	"github.com/automoto/ringview/scene3d"
	"github.com/automoto/ringview/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	trianglesOp = &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear, AntiAlias: true}
	maskOp      = &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}

	// Reused across frames
	vertices   []ebiten.Vertex
	indices    []uint16
	gridPoints []mgl64.Vec3
	quads      []texturedQuad
)

// texturedQuad is a flat textured plane in the scene, projected as a grid.
type texturedQuad struct {
	texture *ebiten.Image
	screen  []scene3d.ScreenPoint
	depth   float64
}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
}

// DrawRing draws the cards and the smiley canvas back to front. Anything
// with a vertex behind the camera is skipped.
func DrawRing(ecs *ecs.ECS, screen *ebiten.Image) {
	carouselEntry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	carousel := components.Carousel.Get(carouselEntry)
	camera := components.Camera.Get(cameraEntry)

	viewProj := camera.ViewProjection()
	group := carousel.GroupRotation()
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	cw, ch := float64(cfg.Carousel.CardWidth), float64(cfg.Carousel.CardHeight)

	quads = quads[:0]
	add := func(texture *ebiten.Image, model mgl64.Mat4, w, h float64) {
		n := cfg.Carousel.Subdivisions
		gridPoints = scene3d.Grid(model, w, h, n, n, gridPoints)
		projected, ok := scene3d.ProjectAll(viewProj, gridPoints, width, height, nil)
		if !ok {
			return
		}
		quads = append(quads, texturedQuad{
			texture: texture,
			screen:  projected,
			depth:   scene3d.MeanDepth(projected),
		})
	}

	tags.Card.Each(ecs.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		if card.Texture == nil {
			card.Texture = cardTexture(card)
		}
		add(card.Texture, CardModel(group, card), cw, ch)
	})

	if smileyEntry, ok := components.Smiley.First(ecs.World); ok {
		smiley := components.Smiley.Get(smileyEntry)
		if canvas := smileyCanvas(smiley); canvas != nil {
			size := float64(cfg.Smiley.CanvasSize)
			add(canvas, scene3d.Compose(smiley.Position, mgl64.QuatIdent()), size, size)
		}
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].depth > quads[j].depth
	})
	for i := range quads {
		drawGrid(screen, &quads[i])
	}
}

func drawGrid(screen *ebiten.Image, q *texturedQuad) {
	n := cfg.Carousel.Subdivisions
	tw, th := float32(q.texture.Bounds().Dx()), float32(q.texture.Bounds().Dy())

	vertices = vertices[:0]
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			p := q.screen[j*(n+1)+i]
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   tw * float32(i) / float32(n),
				SrcY:   th * float32(j) / float32(n),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
	}

	indices = indices[:0]
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			tl := uint16(j*(n+1) + i)
			tr := tl + 1
			bl := tl + uint16(n+1)
			br := bl + 1
			indices = append(indices, tl, tr, bl, tr, br, bl)
		}
	}

	screen.DrawTriangles(vertices, indices, q.texture, trianglesOp)
}

// cardTexture paints the screenshot placeholder with the site host and the
// student's name beneath it.
func cardTexture(card *components.CardData) *ebiten.Image {
	w, h := cfg.Carousel.CardWidth, cfg.Carousel.CardHeight
	imageH := cfg.Carousel.ImageHeight
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.White)

	vector.FillRect(img, 0, 0, float32(w), float32(imageH), cfg.Colors.Foreground, false)
	if host := card.Student.Host(); host != "" {
		face := fonts.CardLabel.Get()
		drawCentered(img, host, face, float64(w)/2, float64(imageH)/2, cfg.Colors.Background)
	}

	if name := card.Student.DisplayName(); name != "" {
		face := fonts.CardHeading.Get()
		drawCentered(img, name, face, float64(w)/2, float64(imageH+h)/2, cfg.Colors.Foreground)
	}
	vector.StrokeRect(img, 0, 0, float32(w), float32(h), 2, cfg.Colors.Foreground, false)
	return img
}

// drawCentered draws s with its bounding box centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - b.Min.X - b.Dx()/2
	y := int(cy) - b.Min.Y - b.Dy()/2
	text.Draw(dst, s, face, x, y, clr)
}

// smileyCanvas redraws the face and clips it to a circle.
func smileyCanvas(smiley *components.SmileyData) *ebiten.Image {
	if smiley.Illustration == nil {
		return nil
	}
	size := cfg.Smiley.CanvasSize
	if smiley.Canvas == nil {
		smiley.Canvas = ebiten.NewImage(size, size)
		smiley.Mask = ebiten.NewImage(size, size)
		r := float32(size) / 2
		vector.FillCircle(smiley.Mask, r, r, r, cfg.White, true)
	}
	smiley.Canvas.Clear()
	smiley.Illustration.Draw(smiley.Canvas)
	smiley.Canvas.DrawImage(smiley.Mask, maskOp)
	return smiley.Canvas
}

func DrawTitle(ecs *ecs.ECS, screen *ebiten.Image) {
	fitEntry, ok := components.TextFit.First(ecs.World)
	if !ok {
		return
	}
	fit := components.TextFit.Get(fitEntry)
	if fit.TitleFace == nil || fit.Title == "" {
		return
	}
	b := text.BoundString(fit.TitleFace, fit.Title)
	x := screen.Bounds().Dx()/2 - b.Min.X - b.Dx()/2
	y := int(cfg.Fit.Margin) - b.Min.Y
	text.Draw(screen, fit.Title, fit.TitleFace, x, y, cfg.Colors.Foreground)
}

func DrawCaption(ecs *ecs.ECS, screen *ebiten.Image) {
	captionEntry, ok := components.Caption.First(ecs.World)
	if !ok {
		return
	}
	fitEntry, ok := components.TextFit.First(ecs.World)
	if !ok {
		return
	}
	caption := components.Caption.Get(captionEntry)
	fit := components.TextFit.Get(fitEntry)
	if caption.Text == "" || caption.Alpha <= 0 || fit.CaptionFace == nil {
		return
	}

	fg := cfg.Colors.Foreground
	clr := color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: uint8(255 * min(caption.Alpha, 1))}
	b := text.BoundString(fit.CaptionFace, caption.Text)
	x := screen.Bounds().Dx()/2 - b.Min.X - b.Dx()/2
	y := screen.Bounds().Dy() - int(cfg.Caption.BottomMargin) - b.Max.Y
	text.Draw(screen, caption.Text, fit.CaptionFace, x, y, clr)
}

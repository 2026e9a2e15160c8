package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/ringview/config"
	"github.com/automoto/ringview/fonts"
	"github.com/automoto/ringview/scenes"
	"github.com/automoto/ringview/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizer receives the layout and window sizes each frame.
type Resizer interface {
	Resize(layoutWidth, layoutHeight, windowWidth, windowHeight int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the renderer surface always fills it.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	if r, ok := g.scene.(Resizer); ok {
		ww, wh := ebiten.WindowSize()
		r.Resize(width, height, ww, wh)
	}
	return width, height
}

func loadFonts() error {
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.CardHeading, gobold.TTF, 22); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.CardLabel, goregular.TTF, 16)
}

func main() {
	configPath := flag.String("config", "", "config file (yaml, json or toml)")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Uint64("ticks", 600, "headless: ticks to run, 0 for no limit")
	hz := flag.Int("hz", 60, "headless: tick rate")
	drag := flag.Float64("drag", 0, "headless: replay a horizontal drag of this many pixels")
	debug := flag.Bool("debug", false, "draw the state overlay")
	logPointer := flag.Bool("log-pointer", false, "log pointer events")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.Debug.Overlay = *debug
	config.Debug.LogPointer = *logPointer

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if *headless {
		runHeadless(*ticks, *hz, *drag)
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewCarouselScene(systems.NewEbitenPointerSource())
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ticks uint64, hz int, drag float64) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src systems.PointerSource
	if drag != 0 {
		src = systems.DragScript(float64(config.C.Width)/2, float64(config.C.Height)/2, drag, 30)
	}
	scene := scenes.NewCarouselScene(src)

	err := RunHeadless(ctx, scene, HeadlessConfig{Hz: hz, Ticks: ticks})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Headless run failed: %v", err)
	}
	log.Printf("final state: %s", scene.Snapshot())
}

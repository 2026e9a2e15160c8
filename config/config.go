package config

import (
	"image/color"

	"github.com/automoto/ringview/roster"
)

// CarouselConfig contains card ring layout and motion configuration
type CarouselConfig struct {
	NumCards     int
	Radius       float64 // Distance of each card from the ring center
	CardWidth    int
	CardHeight   int
	ImageHeight  int // Height of the screenshot area at the top of a card
	Subdivisions int // Grid cells per card edge when projecting textures

	// Motion
	DragSensitivity float64 // Radians of target rotation per dragged pixel
	Easing          float64 // Fraction of the remaining rotation applied each frame
	GroupTiltDeg    float64 // Fixed X tilt of the whole ring
	LookAtY         float64 // Cards face (0, LookAtY, camera Z)
}

// CameraConfig contains perspective camera configuration
type CameraConfig struct {
	FOV  float64 // Vertical field of view in degrees
	Near float64
	Far  float64
	Z    float64 // Camera distance from the ring center along +Z
}

// SmileyConfig contains the tilting face illustration configuration
type SmileyConfig struct {
	CanvasSize int     // Square canvas edge in pixels
	Zoom       float64 // Illustration units to canvas pixels
	Limit      float64 // Max tilt in radians on each axis
	OffsetY    float64 // Y position of the canvas in the scene
}

// ColorsConfig contains the page palette
type ColorsConfig struct {
	Background color.RGBA
	Foreground color.RGBA
}

// FitConfig contains text fitting bounds for the page title and caption
type FitConfig struct {
	MinSize        float64
	MaxSize        float64
	CaptionMaxSize float64
	Margin         float64 // Horizontal padding on each side
}

// CaptionConfig contains the centered card caption configuration
type CaptionConfig struct {
	FadeSeconds  float32
	BottomMargin float64
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay    bool // Draw rotation/tilt state on screen
	LogPointer bool // Log every pointer event type
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Carousel CarouselConfig
var Camera CameraConfig
var Smiley SmileyConfig
var Colors ColorsConfig
var Fit FitConfig
var Caption CaptionConfig
var Debug DebugConfig

// Students are bound to cards by index. Cards past the end of the roster stay empty.
var Students []roster.Student

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	applyDefaults()
}

func applyDefaults() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Class Showcase",
	}

	Carousel = CarouselConfig{
		NumCards:     10,
		Radius:       600,
		CardWidth:    320,
		CardHeight:   260,
		ImageHeight:  213,
		Subdivisions: 6,

		DragSensitivity: 0.002,
		Easing:          0.05,
		GroupTiltDeg:    18,
		LookAtY:         -200,
	}

	Camera = CameraConfig{
		FOV:  75,
		Near: 1,
		Far:  5000,
		Z:    1000,
	}

	Smiley = SmileyConfig{
		CanvasSize: 700,
		Zoom:       6,
		Limit:      0.35,
		OffsetY:    100,
	}

	Colors = ColorsConfig{
		Background: color.RGBA{R: 244, G: 239, B: 230, A: 255},
		Foreground: color.RGBA{R: 29, G: 29, B: 31, A: 255},
	}

	Fit = FitConfig{
		MinSize:        16,
		MaxSize:        300,
		CaptionMaxSize: 48,
		Margin:         24,
	}

	Caption = CaptionConfig{
		FadeSeconds:  0.4,
		BottomMargin: 32,
	}

	Debug = DebugConfig{}

	Students = nil
}

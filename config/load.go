package config

import (
	"fmt"
	"strings"

	"github.com/automoto/ringview/roster"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. RINGVIEW_CAROUSEL_EASING.
const EnvPrefix = "ringview"

type fileConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`

	Carousel struct {
		NumCards        int     `mapstructure:"num_cards"`
		Radius          float64 `mapstructure:"radius"`
		DragSensitivity float64 `mapstructure:"drag_sensitivity"`
		Easing          float64 `mapstructure:"easing"`
		GroupTiltDeg    float64 `mapstructure:"group_tilt_deg"`
	} `mapstructure:"carousel"`

	Smiley struct {
		Zoom  float64 `mapstructure:"zoom"`
		Limit float64 `mapstructure:"limit"`
	} `mapstructure:"smiley"`

	Colors struct {
		Background string `mapstructure:"background"`
		Foreground string `mapstructure:"foreground"`
	} `mapstructure:"colors"`

	Fit struct {
		MaxSize float64 `mapstructure:"max_size"`
	} `mapstructure:"fit"`

	Students []roster.Student `mapstructure:"students"`
}

// Load overlays an optional config file and RINGVIEW_* environment variables
// onto the current configuration. An empty path skips the file.
func Load(path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return apply(&fc)
}

// setDefaults registers every overridable key so AutomaticEnv can see it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("title", C.Title)
	v.SetDefault("carousel.num_cards", Carousel.NumCards)
	v.SetDefault("carousel.radius", Carousel.Radius)
	v.SetDefault("carousel.drag_sensitivity", Carousel.DragSensitivity)
	v.SetDefault("carousel.easing", Carousel.Easing)
	v.SetDefault("carousel.group_tilt_deg", Carousel.GroupTiltDeg)
	v.SetDefault("smiley.zoom", Smiley.Zoom)
	v.SetDefault("smiley.limit", Smiley.Limit)
	v.SetDefault("colors.background", HexColor(Colors.Background))
	v.SetDefault("colors.foreground", HexColor(Colors.Foreground))
	v.SetDefault("fit.max_size", Fit.MaxSize)
}

func apply(fc *fileConfig) error {
	if fc.Width <= 0 || fc.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", fc.Width, fc.Height)
	}
	if fc.Carousel.NumCards <= 0 {
		return fmt.Errorf("carousel.num_cards must be positive, got %d", fc.Carousel.NumCards)
	}
	if fc.Carousel.Easing <= 0 || fc.Carousel.Easing > 1 {
		return fmt.Errorf("carousel.easing must be in (0, 1], got %g", fc.Carousel.Easing)
	}
	if fc.Fit.MaxSize < Fit.MinSize {
		return fmt.Errorf("fit.max_size %g is below the minimum %g", fc.Fit.MaxSize, Fit.MinSize)
	}

	bg, err := ParseColor(fc.Colors.Background)
	if err != nil {
		return fmt.Errorf("colors.background: %w", err)
	}
	fg, err := ParseColor(fc.Colors.Foreground)
	if err != nil {
		return fmt.Errorf("colors.foreground: %w", err)
	}

	for i, s := range fc.Students {
		if s.Name == "" && s.Surname == "" && s.Website == "" {
			return fmt.Errorf("students[%d] has no name, surname or website", i)
		}
	}

	C.Width = fc.Width
	C.Height = fc.Height
	C.Title = fc.Title
	Carousel.NumCards = fc.Carousel.NumCards
	Carousel.Radius = fc.Carousel.Radius
	Carousel.DragSensitivity = fc.Carousel.DragSensitivity
	Carousel.Easing = fc.Carousel.Easing
	Carousel.GroupTiltDeg = fc.Carousel.GroupTiltDeg
	Smiley.Zoom = fc.Smiley.Zoom
	Smiley.Limit = fc.Smiley.Limit
	Colors.Background = bg
	Colors.Foreground = fg
	Fit.MaxSize = fc.Fit.MaxSize
	if len(fc.Students) > 0 {
		Students = fc.Students
	}
	return nil
}

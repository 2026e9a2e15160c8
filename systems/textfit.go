package systems

import (
	"github.com/automoto/ringview/components"
	cfg "github.com/automoto/ringview/config"
	"github.com/automoto/ringview/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTextFit refits the title and caption when the viewport width or the
// caption text changes. Must run AFTER UpdateResize and UpdateCaption.
func UpdateTextFit(ecs *ecs.ECS) {
	fitEntry, ok := components.TextFit.First(ecs.World)
	if !ok {
		return
	}
	viewportEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	fit := components.TextFit.Get(fitEntry)
	viewport := components.Viewport.Get(viewportEntry)
	available := float64(viewport.Width) - 2*cfg.Fit.Margin

	widthChanged := fit.Width != viewport.Width || fit.TitleFace == nil
	if widthChanged {
		fit.TitleFace, fit.TitleSize = fonts.Fit(fonts.Regular, fit.Title, available, cfg.Fit.MinSize, cfg.Fit.MaxSize)
		fit.Width = viewport.Width
	}

	captionEntry, ok := components.Caption.First(ecs.World)
	if !ok {
		return
	}
	caption := components.Caption.Get(captionEntry)
	if widthChanged || caption.Text != fit.CaptionText || fit.CaptionFace == nil {
		fit.CaptionFace, _ = fonts.Fit(fonts.Regular, caption.Text, available, cfg.Fit.MinSize, cfg.Fit.CaptionMaxSize)
		fit.CaptionText = caption.Text
	}
}

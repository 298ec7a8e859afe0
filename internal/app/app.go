package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rook-computer/mockups/internal/app/scenes"
	"github.com/rook-computer/mockups/internal/assets"
	"github.com/rook-computer/mockups/internal/render"
)

type App struct {
	Config Config
	Logger Logger

	// Fonts and Scenes default to the conventional font lookup and the two
	// LMS mockups when nil.
	Fonts  *assets.FontLoader
	Scenes []render.Scene

	// Font set of the last Run.
	fonts render.FontSet
}

func New(cfg Config, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &App{Config: cfg, Logger: logger}
}

// Run loads fonts once, then renders and saves every scene in order.
// It returns the paths written so far.
func (app *App) Run(ctx context.Context) ([]string, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	loader := app.Fonts
	if loader == nil {
		loader = assets.NewFontLoader(app.Config.FontDir, app.Logger)
	}
	fonts := loader.Load()
	if fonts.Fallback {
		app.Logger.Infof("app", "rendering with the built-in bitmap font")
	}
	app.fonts = fonts

	sceneList := app.Scenes
	if sceneList == nil {
		sceneList = scenes.All(app.Config.HelpURL, app.Logger)
	}

	outDir := app.Config.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	preview := app.openPreview()
	defer preview.Close()

	paths := make([]string, 0, len(sceneList))
	for _, scene := range sceneList {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		canvas := RenderScene(scene, fonts)
		path := filepath.Join(outDir, scene.Filename())
		if err := canvas.SavePNG(path); err != nil {
			return paths, fmt.Errorf("save %s: %w", scene.Name(), err)
		}
		app.Logger.Infof("app", "wrote %s", path)
		paths = append(paths, path)
		preview.Show(canvas)
	}
	return paths, nil
}

// RenderScene draws scene onto a fresh canvas of the fixed mockup size.
func RenderScene(scene render.Scene, fonts render.FontSet) *render.Canvas {
	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, scene.Background())
	scene.Draw(canvas, fonts)
	return canvas
}

// openPreview returns nil when preview is disabled or the device is unavailable.
func (app *App) openPreview() *render.FramebufferPreview {
	if !app.Config.Preview {
		return nil
	}
	preview, err := render.OpenFramebufferPreview(app.Config.FBDevice)
	if err != nil {
		app.Logger.Errorf("fb", "preview disabled: %v", err)
		return nil
	}
	return preview
}

// Package viewer runs the first-person room viewer: window, input, camera
// and scene tied together in one frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/config"
	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/internal/engine/renderer"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/uniforms"
	"github.com/Faultbox/roomview/internal/engine/window"
	"github.com/Faultbox/roomview/internal/logger"
)

// Viewer is the main viewer instance.
type Viewer struct {
	config *config.Config
	desc   *scene.Descriptor

	window   window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene

	builder    *uniforms.Builder
	controller *Controller
	input      input.State
	shots      *renderer.Screenshots
}

// New creates the window, GL state and scene resources.
func New(cfg *config.Config, desc *scene.Descriptor) (*Viewer, error) {
	gfx := cfg.Graphics
	logger.Info("initializing viewer",
		zap.String("title", gfx.Title),
		zap.Int("width", gfx.Width),
		zap.Int("height", gfx.Height),
		zap.String("backend", gfx.Backend),
	)

	v := &Viewer{
		config: cfg,
		desc:   desc,
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      gfx.Title,
		Width:      gfx.Width,
		Height:     gfx.Height,
		Fullscreen: gfx.Fullscreen,
		VSync:      gfx.VSync,
		Backend:    gfx.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: desc.ClearColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.input.Width, v.input.Height = width, height

	v.scene = scene.New(desc)
	v.builder = uniforms.NewBuilder(desc.Rig())
	v.controller = NewController(desc.NewCamera())
	v.shots = renderer.NewScreenshots(cfg.Viewer.ScreenshotDir, "roomview")

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the frame loop and returns when the window is closed or
// Escape is pressed.
func (v *Viewer) Run() error {
	start := time.Now()
	lastTime := start
	fps := newFPSCounter(time.Second)

	logger.Info("starting frame loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		v.window.Poll(&v.input)
		if v.input.Quit {
			break
		}
		if v.input.Resized {
			v.renderer.Resize(v.input.Width, v.input.Height)
		}

		// 2. Camera
		v.controller.Update(&v.input, float32(dt.Seconds()))

		// 3. Render
		width, height := v.renderer.Size()
		frame := v.controller.Frame(float32(now.Sub(start).Seconds()), width, height)
		v.renderer.Begin()
		v.scene.Draw(v.builder, frame)
		v.renderer.End()
		if v.input.Pressed(input.KeyScreenshot) {
			v.screenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		if rate, ok := fps.Tick(dt); ok {
			logger.Debug("fps",
				zap.Float64("fps", rate),
				zap.Duration("dt", dt),
			)
			if v.config.Viewer.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", v.config.Graphics.Title, rate))
				v.controller.logPose()
			}
		}
	}

	logger.Info("frame loop stopped")
	return nil
}

// screenshot saves the frame just drawn, before it is presented.
func (v *Viewer) screenshot() {
	width, height := v.renderer.Size()
	path, err := v.shots.Save(v.renderer.ReadPixels(), width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse order of creation.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

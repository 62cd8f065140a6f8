// Package viewer implements the interactive rock viewer loop.
package viewer

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/rockgen/internal/config"
	"github.com/Faultbox/rockgen/internal/engine/camera"
	"github.com/Faultbox/rockgen/internal/engine/debug"
	"github.com/Faultbox/rockgen/internal/engine/framebuffer"
	"github.com/Faultbox/rockgen/internal/engine/input"
	"github.com/Faultbox/rockgen/internal/engine/rockrender"
	"github.com/Faultbox/rockgen/internal/engine/window"
	"github.com/Faultbox/rockgen/pkg/rock"
)

const (
	title         = "rockgen"
	normalScale   = 0.06 // normal overlay length relative to the average radius
	gridCells     = 10
	msaaSamples   = 4
	statsInterval = time.Second
)

// Viewer shows one rock and regenerates it on demand.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *rockrender.Renderer
	input    *input.Input
	mapper   input.Mapper
	camera   *camera.OrbitCamera

	generator   *rock.Generator
	seeds       *rand.Rand
	screenshots *debug.ScreenshotCapture
	capture     *framebuffer.Framebuffer
	watcher     *config.Watcher
}

// New opens the window, creates the renderer and builds the first rock.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int64("seed", cfg.Rock.Seed),
	)

	v := &Viewer{
		cfg:         cfg,
		log:         log,
		input:       input.New(),
		camera:      camera.NewOrbitCamera(),
		seeds:       rock.NewRandSource(cfg.Rock.Seed),
		screenshots: debug.NewScreenshotCapture(cfg.Output.ScreenshotDir, "rock"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    msaaSamples,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = rockrender.New(rockrender.Config{
		Width:      width,
		Height:     height,
		Material:   cfg.Material,
		Wireframe:  cfg.Graphics.Wireframe,
		Background: [3]float32{0.1, 0.1, 0.13},
	}, log.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.generator = rock.NewGenerator(cfg.Generation(),
		rock.WithLogger(log.Named("rock")),
		rock.WithUploader(v.renderer.Mesh()),
	)
	if err := v.regenerate(); err != nil {
		_ = v.Close()
		return nil, err
	}

	if cfg.Path != "" {
		if v.watcher, err = config.Watch(cfg.Path, log.Named("config")); err != nil {
			log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	log.Info("viewer initialized")
	return v, nil
}

// Run processes input and draws frames until the window is closed.
func (v *Viewer) Run() error {
	v.running = true
	frames := 0
	statsTimer := time.Now()

	v.log.Info("starting viewer loop")
	for v.running {
		quit := v.input.Update()
		a := v.mapper.Map(v.input.Events())
		if quit || a.Quit {
			v.running = false
			break
		}

		if err := v.apply(a); err != nil {
			return err
		}
		if err := v.pollConfig(); err != nil {
			return err
		}

		v.renderer.Begin()
		v.draw(v.window.DrawableSize())
		v.window.SwapBuffers()

		frames++
		if elapsed := time.Since(statsTimer); elapsed >= statsInterval {
			v.log.Debug("fps", zap.Float64("fps", float64(frames)/elapsed.Seconds()))
			frames = 0
			statsTimer = time.Now()
		}
	}
	return nil
}

// apply performs the actions of one frame.
func (v *Viewer) apply(a input.Actions) error {
	if a.Resized {
		v.renderer.Resize(v.window.DrawableSize())
	}
	if a.OrbitX != 0 || a.OrbitY != 0 {
		v.camera.HandleDrag(a.OrbitX, a.OrbitY)
	}
	if a.PanX != 0 || a.PanY != 0 {
		v.camera.HandlePan(a.PanX, a.PanY)
	}
	if a.Zoom != 0 {
		v.camera.HandleZoom(a.Zoom)
	}
	if a.Wireframe {
		v.renderer.SetWireframe(!v.renderer.Wireframe())
	}
	if a.Bounds {
		v.renderer.ShowBounds = !v.renderer.ShowBounds
	}
	if a.Normals {
		v.renderer.ShowNormals = !v.renderer.ShowNormals
	}
	if a.Frame {
		s := v.generator.Stats()
		v.camera.FitToBounds(s.BoundsMin, s.BoundsMax)
	}

	if a.Reset {
		v.generator.Reseed(v.seeds.Int64())
		v.generator.Reset()
		if err := v.rebuild(); err != nil {
			return err
		}
	}

	if a.Screenshot {
		v.screenshot()
	}
	return nil
}

// pollConfig applies a reloaded config file, if one is pending.
func (v *Viewer) pollConfig() error {
	if v.watcher == nil {
		return nil
	}
	select {
	case cfg := <-v.watcher.Updates():
		if err := v.renderer.SetMaterial(cfg.Material); err != nil {
			v.log.Warn("material update failed", zap.Error(err))
		}
		v.cfg = cfg
		v.generator.SetConfig(cfg.Generation())
		return v.rebuild()
	default:
		return nil
	}
}

// rebuild regenerates after a config or seed change. A rejected config keeps
// the previous rock on screen; only upload failures are fatal.
func (v *Viewer) rebuild() error {
	err := v.regenerate()
	if err == nil || errors.Is(err, rock.ErrUpload) {
		return err
	}
	v.log.Warn("keeping previous rock", zap.Error(err))
	return nil
}

func (v *Viewer) draw(width, height int) {
	v.renderer.Draw(rockrender.View{
		View:       v.camera.ViewMatrix(),
		Projection: v.camera.ProjectionMatrix(width, height),
		Eye:        v.camera.Position(),
	})
}

// regenerate rebuilds the rock and refreshes the overlays and camera.
func (v *Viewer) regenerate() error {
	if _, _, err := v.generator.Generate(); err != nil {
		return err
	}

	m := v.generator.Mesh()
	s := v.generator.Stats()
	cfg := v.generator.Config()

	v.renderer.Bounds.Set(debug.BoundsLines(s.BoundsMin, s.BoundsMax))
	v.renderer.Normals.Set(debug.NormalLines(m.Vertices, cfg.AverageRadius()*normalScale))
	size := s.Size()
	v.renderer.Grid.Set(debug.GridLines(2*max(size.X, size.Z), gridCells, s.BoundsMin.Y))

	v.camera.FitToBounds(s.BoundsMin, s.BoundsMax)
	v.window.SetTitle(fmt.Sprintf("%s - seed %d - %s", title, cfg.Seed, s))
	return nil
}

// screenshot renders the current view offscreen at the configured output
// size, or the window size when none is set, and saves it.
func (v *Viewer) screenshot() {
	width, height := v.cfg.Output.PreviewWidth, v.cfg.Output.PreviewHeight
	if width <= 0 || height <= 0 {
		width, height = v.window.DrawableSize()
	}

	if v.capture != nil {
		if w, h := v.capture.Size(); w != width || h != height {
			v.capture.Destroy()
			v.capture = nil
		}
	}
	if v.capture == nil {
		fb, err := framebuffer.New(width, height)
		if err != nil {
			v.log.Error("screenshot failed", zap.Error(err))
			return
		}
		v.capture = fb
	}

	img := v.capture.Capture(v.draw)
	path, err := v.screenshots.CaptureFromImage(img)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() error {
	v.log.Info("closing viewer")
	var err error
	if v.watcher != nil {
		err = multierr.Append(err, v.watcher.Close())
	}
	if v.capture != nil {
		v.capture.Destroy()
	}
	if v.renderer != nil {
		err = multierr.Append(err, v.renderer.Close())
	}
	if v.window != nil {
		v.window.Close()
	}
	return err
}

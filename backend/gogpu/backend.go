package gogpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels"
)

// Name is the registry name of this host.
const Name = "gogpu"

// Host errors.
var (
	// ErrNoDrawContext is returned when Present is called outside a draw callback.
	ErrNoDrawContext = errors.New("gogpu: no active draw context")

	// ErrInvalidDrawContext is returned when the draw context doesn't implement
	// gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("gogpu: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the renderer doesn't implement
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("gogpu: renderer must implement gpucontext.TextureCreator")
)

func init() {
	pixels.RegisterHost(Name, func() pixels.Host { return &Host{} })
}

// Host runs the frame driver inside a gogpu.App event loop.
// The zero value is ready to use.
type Host struct{}

// Name returns the registry name of this host.
func (*Host) Name() string { return Name }

// Run opens a window and drives h until the window closes or the
// handler requests quit. It blocks for the lifetime of the window.
func (*Host) Run(cfg pixels.Config, h pixels.Handler) error {
	appCfg := gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false)
	if cfg.Fullscreen {
		appCfg.Fullscreen = true
	}
	if cfg.Icon != nil {
		// gogpu has no window icon hook as of v0.33.
		pixels.Logger().Warn("window icon is not supported by the gogpu host")
	}

	app := gogpu.NewApp(appCfg)

	p := &presenter{app: app, highDPI: cfg.HighDPI}

	// Auto-repeat detection: a second press of a held key with no
	// intervening release is an OS repeat.
	held := make(map[pixels.Key]bool)

	var (
		animToken *gogpu.AnimationToken
		frameErr  error
	)

	app.OnDraw(func(dc *gogpu.Context) {
		if frameErr != nil {
			return
		}
		if animToken == nil {
			// Renders at VSync while the token is alive.
			animToken = app.StartAnimation()
			pixels.Logger().Debug("animation started", "backend", dc.Backend())
		}

		w, hgt := dc.Width(), dc.Height()
		if w <= 0 || hgt <= 0 {
			return
		}

		p.dc = dc
		err := h.Frame(p)
		p.dc = nil
		if err != nil {
			frameErr = err
			p.Quit()
			return
		}
		if p.quit {
			app.Quit()
		}
	})

	es := app.EventSource()
	es.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		k := mapKey(key)
		if k == pixels.KeyUnknown {
			return
		}
		repeat := held[k]
		held[k] = true
		h.KeyDown(k, mapMods(mods), repeat)
	})
	es.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		k := mapKey(key)
		if k == pixels.KeyUnknown {
			return
		}
		delete(held, k)
		h.KeyUp(k, mapMods(mods))
	})
	es.OnMouseMove(func(x, y float64) {
		h.MouseMove(x, y)
	})
	es.OnMousePress(func(btn gpucontext.MouseButton, x, y float64) {
		h.MouseButtonDown(mapButton(btn), x, y)
	})
	es.OnMouseRelease(func(btn gpucontext.MouseButton, x, y float64) {
		h.MouseButtonUp(mapButton(btn), x, y)
	})
	es.OnScroll(func(dx, dy float64) {
		h.MouseWheel(dx, dy)
	})
	es.OnResize(func(w, hgt int) {
		h.Resize(w, hgt)
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
			animToken = nil
		}
		p.release()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("gogpu: app run failed: %w", err)
	}
	return frameErr
}

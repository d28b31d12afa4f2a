// Package native provides a windowless GPU host for pixels built
// directly on wgpu/hal.
//
// Import it for its side effects to register the "native" host:
//
//	import _ "github.com/gogpu/pixels/backend/native"
//
// Each frame is uploaded to a GPU texture and drawn as a full-screen
// quad into an offscreen render target. There is no window and no input
// source; the host suits server-side rendering and GPU verification.
// Rendered frames can be read back with Snapshot.
package native

import (
	"fmt"
	"time"

	"github.com/gogpu/pixels"
	"github.com/gogpu/pixels/internal/blit"
)

// Name is the registry name of this host.
const Name = "native"

func init() {
	pixels.RegisterHost(Name, func() pixels.Host { return New() })
}

// Host drives frames into an offscreen GPU target. The zero value runs
// until the state calls Quit; set MaxFrames to bound a run.
type Host struct {
	// MaxFrames stops the loop after this many frames. Zero means
	// unbounded.
	MaxFrames int

	// StepDelay is slept between frames. Zero runs at full speed.
	StepDelay time.Duration

	renderer *blit.Renderer
	frames   int
	quit     bool
}

// New returns a host with no frame bound.
func New() *Host {
	return &Host{}
}

// Name returns the registry name of this host.
func (*Host) Name() string { return Name }

// Run opens a GPU device and drives h until MaxFrames is reached or the
// handler requests quit.
func (host *Host) Run(cfg pixels.Config, h pixels.Handler) error {
	renderer, err := blit.NewRenderer()
	if err != nil {
		return fmt.Errorf("native: GPU init failed: %w", err)
	}
	host.renderer = renderer
	defer func() {
		renderer.Close()
		host.renderer = nil
	}()

	host.frames = 0
	host.quit = false
	p := &presenter{host: host, width: cfg.Width, height: cfg.Height}

	pixels.Logger().Debug("native host running", "buffer",
		fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	for !host.quit {
		if host.MaxFrames > 0 && host.frames >= host.MaxFrames {
			break
		}
		if err := h.Frame(p); err != nil {
			return err
		}
		host.frames++
		if host.StepDelay > 0 {
			time.Sleep(host.StepDelay)
		}
	}
	return nil
}

// Frames returns the number of frames presented so far.
func (host *Host) Frames() int {
	return host.frames
}

// Snapshot reads the most recently rendered frame back from the GPU.
// It is only valid while Run is active (for example from a State
// callback) since the device is released when Run returns.
func (host *Host) Snapshot() (pix []uint8, width, height int, err error) {
	if host.renderer == nil {
		return nil, 0, 0, fmt.Errorf("native: host is not running")
	}
	data, err := host.renderer.Readback()
	if err != nil {
		return nil, 0, 0, err
	}
	w, h := host.renderer.Size()
	return data, w, h, nil
}

type presenter struct {
	host   *Host
	width  int
	height int
}

func (p *presenter) Present(pix []uint8, width, height int) error {
	return p.host.renderer.Blit(pix, width, height)
}

func (p *presenter) ScreenSize() (w, h float64) {
	return float64(p.width), float64(p.height)
}

func (p *presenter) DPIScale() float64 { return 1 }

func (p *presenter) Quit() { p.host.quit = true }

func (p *presenter) SetFilterMode(mode pixels.FilterMode) {
	if err := p.host.renderer.SetLinearFilter(mode == pixels.FilterLinear); err != nil {
		pixels.Logger().Warn("filter mode change failed", "error", err)
	}
}

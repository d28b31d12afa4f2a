package pixels

import (
	"errors"
	"fmt"
	"time"
)

// Run errors.
var (
	// ErrNilState is returned when Run is called with a nil State.
	ErrNilState = errors.New("pixels: nil state")

	// ErrInvalidDimensions is returned when the configured buffer size
	// is not positive.
	ErrInvalidDimensions = errors.New("pixels: invalid dimensions")
)

// State is the application. Both callbacks run on the host loop, once
// per frame, strictly in order: Update, then Draw.
//
// Query input during Update; draw during Draw. Drawing during Update
// also works (the buffer is only uploaded after Draw returns), but
// input edges observed during Draw already reflect the post-update
// advance.
type State interface {
	// Update is called every frame before drawing.
	Update(ctx *Context)

	// Draw is called every frame after Update.
	Draw(ctx *Context)
}

// Run opens a window using the selected host backend and drives state
// until the window closes or the application calls Context.Quit. It
// blocks for the lifetime of the window and must be called from the
// main goroutine.
//
// All session state (buffer, input, timing) is owned by the returned-to
// host loop; nothing is stored in package globals.
func Run(cfg Config, state State) error {
	host := lookupHost(cfg.Backend)
	if host == nil {
		if cfg.Backend != "" {
			return fmt.Errorf("%w: %q", ErrNoHost, cfg.Backend)
		}
		return ErrNoHost
	}
	return RunOn(host, cfg, state)
}

// RunOn is like Run but drives state on an explicit host instance,
// bypassing the registry. Useful for configured hosts (for example a
// frame-bounded headless host) and for tests.
func RunOn(host Host, cfg Config, state State) error {
	if state == nil {
		return ErrNilState
	}
	if host == nil {
		return ErrNoHost
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}

	s := &session{
		state:   state,
		cfg:     cfg,
		surface: NewSurface(cfg.Width, cfg.Height),
		input:   NewInput(),
	}

	Logger().Info("starting pixels session",
		"host", host.Name(),
		"buffer", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"resize", cfg.Resize == ResizeToWindow)

	return host.Run(cfg, s)
}

// session is the owned application state threaded through the host
// loop: the frame driver. It implements Handler.
type session struct {
	state   State
	cfg     Config
	surface *Surface
	input   *Input

	last    time.Time
	delta   time.Duration
	started bool
}

// Frame runs one full cycle: delta-time bookkeeping, Update, input
// advance, Draw, then upload/presentation of the surface bytes.
func (s *session) Frame(p Presenter) error {
	now := time.Now()
	if s.started {
		s.delta = now.Sub(s.last)
	}
	s.last = now
	s.started = true

	ctx := &Context{session: s, presenter: p}

	s.state.Update(ctx)

	// Advance after Update and before any events of the next frame:
	// Pressed becomes Down, Released disappears, the wheel resets.
	s.input.AdvanceFrame()

	s.state.Draw(ctx)

	return p.Present(s.surface.Bytes(), s.surface.Width(), s.surface.Height())
}

func (s *session) KeyDown(key Key, mods Modifiers, repeat bool) {
	s.input.KeyDown(key, mods, repeat)
}

func (s *session) KeyUp(key Key, mods Modifiers) {
	s.input.KeyUp(key, mods)
}

func (s *session) MouseMove(x, y float64) {
	s.input.MouseMove(x, y)
}

func (s *session) MouseButtonDown(btn MouseButton, x, y float64) {
	s.input.MouseMove(x, y)
	s.input.MouseButtonDown(btn)
}

func (s *session) MouseButtonUp(btn MouseButton, x, y float64) {
	s.input.MouseMove(x, y)
	s.input.MouseButtonUp(btn)
}

func (s *session) MouseWheel(dx, dy float64) {
	s.input.MouseWheel(dx, dy)
}

// Resize reallocates the buffer when the config asks for it; with
// ResizeKeepLogical the host scales the fixed buffer instead and this
// is a no-op.
func (s *session) Resize(width, height int) {
	if s.cfg.Resize != ResizeToWindow {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.surface.Width() && height == s.surface.Height() {
		return
	}
	Logger().Debug("resizing buffer", "width", width, "height", height)
	s.surface.Resize(width, height)
}

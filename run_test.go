package pixels

import (
	"errors"
	"testing"
	"time"
)

// fakeHost drives the handler for a bounded number of frames without a
// window, optionally injecting events before each frame.
type fakeHost struct {
	name      string
	frames    int
	before    func(frame int, h Handler)
	presenter *fakePresenter
}

func (f *fakeHost) Name() string { return f.name }

func (f *fakeHost) Run(cfg Config, h Handler) error {
	f.presenter = &fakePresenter{w: float64(cfg.Width), h: float64(cfg.Height)}
	for i := 0; i < f.frames && !f.presenter.quit; i++ {
		if f.before != nil {
			f.before(i, h)
		}
		if err := h.Frame(f.presenter); err != nil {
			return err
		}
	}
	return nil
}

type fakePresenter struct {
	w, h     float64
	quit     bool
	presents int
	lastPix  []uint8
	lastW    int
	lastH    int
}

func (p *fakePresenter) Present(pix []uint8, width, height int) error {
	p.presents++
	p.lastPix = append(p.lastPix[:0], pix...)
	p.lastW, p.lastH = width, height
	return nil
}

func (p *fakePresenter) ScreenSize() (w, h float64) { return p.w, p.h }
func (p *fakePresenter) DPIScale() float64          { return 1 }
func (p *fakePresenter) Quit()                      { p.quit = true }

// funcState adapts two closures to the State interface.
type funcState struct {
	update func(ctx *Context)
	draw   func(ctx *Context)
}

func (s *funcState) Update(ctx *Context) {
	if s.update != nil {
		s.update(ctx)
	}
}

func (s *funcState) Draw(ctx *Context) {
	if s.draw != nil {
		s.draw(ctx)
	}
}

func TestRunNilState(t *testing.T) {
	if err := Run(DefaultConfig(), nil); !errors.Is(err, ErrNilState) {
		t.Errorf("Run(nil state) error = %v, want %v", err, ErrNilState)
	}
}

func TestRunInvalidDimensions(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 1}
	cfg := DefaultConfig().WithSize(0, 240)
	err := RunOn(host, cfg, &funcState{})
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("RunOn(0x240) error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestRunNoHost(t *testing.T) {
	if err := Run(DefaultConfig(), &funcState{}); !errors.Is(err, ErrNoHost) {
		t.Errorf("Run() with empty registry error = %v, want %v", err, ErrNoHost)
	}
}

func TestRunUnknownBackend(t *testing.T) {
	RegisterHost("fake", func() Host { return &fakeHost{name: "fake", frames: 1} })
	defer UnregisterHost("fake")

	cfg := DefaultConfig().WithBackend("no-such-backend")
	err := Run(cfg, &funcState{})
	if !errors.Is(err, ErrNoHost) {
		t.Errorf("Run() error = %v, want %v", err, ErrNoHost)
	}
}

func TestRunSelectsNamedBackend(t *testing.T) {
	ran := false
	RegisterHost("fake", func() Host {
		return &fakeHost{name: "fake", frames: 1, before: func(int, Handler) { ran = true }}
	})
	defer UnregisterHost("fake")

	cfg := DefaultConfig().WithSize(4, 4).WithBackend("fake")
	if err := Run(cfg, &funcState{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !ran {
		t.Error("named backend was not driven")
	}
}

func TestLookupHostPriority(t *testing.T) {
	RegisterHost("zeta", func() Host { return &fakeHost{name: "zeta"} })
	RegisterHost("headless", func() Host { return &fakeHost{name: "headless"} })
	defer UnregisterHost("zeta")
	defer UnregisterHost("headless")

	// "headless" is in the priority list, "zeta" is not.
	h := lookupHost("")
	if h == nil || h.Name() != "headless" {
		t.Errorf("lookupHost(\"\") = %v, want headless", h)
	}
	if h := lookupHost("zeta"); h == nil || h.Name() != "zeta" {
		t.Errorf("lookupHost(\"zeta\") = %v, want zeta", h)
	}
	if h := lookupHost("missing"); h != nil {
		t.Errorf("lookupHost(\"missing\") = %v, want nil", h)
	}
}

func TestLookupHostOffListFallback(t *testing.T) {
	RegisterHost("zeta", func() Host { return &fakeHost{name: "zeta"} })
	defer UnregisterHost("zeta")

	if h := lookupHost(""); h == nil || h.Name() != "zeta" {
		t.Errorf("lookupHost(\"\") = %v, want zeta fallback", h)
	}
}

func TestFrameOrderUpdateAdvanceDraw(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 1, before: func(frame int, h Handler) {
		h.KeyDown(KeySpace, Modifiers{}, false)
	}}

	var updateState, drawState InputState
	state := &funcState{
		update: func(ctx *Context) { updateState, _ = ctx.KeyState(KeySpace) },
		draw:   func(ctx *Context) { drawState, _ = ctx.KeyState(KeySpace) },
	}

	cfg := DefaultConfig().WithSize(4, 4)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	// Update runs before the input advance, Draw after.
	if updateState != Pressed {
		t.Errorf("state during Update = %v, want Pressed", updateState)
	}
	if drawState != Down {
		t.Errorf("state during Draw = %v, want Down", drawState)
	}
}

func TestPresentFollowsDraw(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 2}
	state := &funcState{
		draw: func(ctx *Context) { ctx.SetPixel(0, 0, White) },
	}

	cfg := DefaultConfig().WithSize(4, 4)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	p := host.presenter
	if p.presents != 2 {
		t.Fatalf("presents = %d, want 2", p.presents)
	}
	if p.lastW != 4 || p.lastH != 4 {
		t.Fatalf("presented size = %dx%d, want 4x4", p.lastW, p.lastH)
	}
	if p.lastPix[0] != 255 || p.lastPix[3] != 255 {
		t.Errorf("presented first pixel = %v, want white", p.lastPix[:4])
	}
}

func TestDeltaTimeZeroOnFirstFrame(t *testing.T) {
	var deltas []time.Duration
	host := &fakeHost{name: "fake", frames: 3}
	state := &funcState{
		update: func(ctx *Context) { deltas = append(deltas, ctx.DeltaTime()) },
	}

	cfg := DefaultConfig().WithSize(2, 2)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if len(deltas) != 3 {
		t.Fatalf("frames = %d, want 3", len(deltas))
	}
	if deltas[0] != 0 {
		t.Errorf("first frame delta = %v, want 0", deltas[0])
	}
	if deltas[1] < 0 || deltas[2] < 0 {
		t.Errorf("negative deltas: %v", deltas)
	}
}

func TestQuitStopsLoop(t *testing.T) {
	frames := 0
	host := &fakeHost{name: "fake", frames: 100}
	state := &funcState{
		update: func(ctx *Context) {
			frames++
			if frames == 3 {
				ctx.Quit()
			}
		},
	}

	cfg := DefaultConfig().WithSize(2, 2)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestResizeToWindowReallocates(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 2, before: func(frame int, h Handler) {
		if frame == 1 {
			h.Resize(13, 7)
		}
	}}

	var sizes [][2]int
	state := &funcState{
		update: func(ctx *Context) { sizes = append(sizes, [2]int{ctx.Width(), ctx.Height()}) },
	}

	cfg := DefaultConfig().WithSize(4, 4).WithResizeMode(ResizeToWindow)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if sizes[0] != [2]int{4, 4} {
		t.Errorf("frame 0 size = %v, want [4 4]", sizes[0])
	}
	if sizes[1] != [2]int{13, 7} {
		t.Errorf("frame 1 size = %v, want [13 7]", sizes[1])
	}
}

func TestResizeKeepLogicalIgnoresWindow(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 2, before: func(frame int, h Handler) {
		h.Resize(500, 400)
	}}

	var w, h int
	state := &funcState{
		update: func(ctx *Context) { w, h = ctx.Width(), ctx.Height() },
	}

	cfg := DefaultConfig().WithSize(4, 4)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if w != 4 || h != 4 {
		t.Errorf("buffer size = %dx%d, want 4x4", w, h)
	}
}

func TestResizeIgnoresDegenerateSizes(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 1, before: func(frame int, h Handler) {
		h.Resize(0, 100)
		h.Resize(100, -1)
	}}

	var w, h int
	state := &funcState{
		update: func(ctx *Context) { w, h = ctx.Width(), ctx.Height() },
	}

	cfg := DefaultConfig().WithSize(4, 4).WithResizeMode(ResizeToWindow)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if w != 4 || h != 4 {
		t.Errorf("buffer size = %dx%d, want 4x4", w, h)
	}
}

func TestMouseButtonEventCarriesPosition(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 1, before: func(frame int, h Handler) {
		h.MouseButtonDown(MouseButtonLeft, 10.6, 20.4)
	}}

	var x, y int
	var down bool
	state := &funcState{
		update: func(ctx *Context) {
			x, y = ctx.MousePosInt()
			down = ctx.IsMouseButtonPressed(MouseButtonLeft)
		},
	}

	cfg := DefaultConfig().WithSize(32, 32)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if !down {
		t.Error("button press not observed")
	}
	// Rounded to nearest, not truncated.
	if x != 11 || y != 20 {
		t.Errorf("MousePosInt() = %d, %d, want 11, 20", x, y)
	}
}

func TestContextQueries(t *testing.T) {
	host := &fakeHost{name: "fake", frames: 1, before: func(frame int, h Handler) {
		h.KeyDown(KeyW, Modifiers{Ctrl: true}, false)
		h.MouseWheel(1.5, -2)
	}}

	state := &funcState{
		update: func(ctx *Context) {
			if !ctx.IsKeyPressed(KeyW) || !ctx.IsKeyDown(KeyW) {
				t.Error("KeyW should be pressed and down")
			}
			if ctx.IsKeyReleased(KeyW) {
				t.Error("KeyW should not be released")
			}
			if !ctx.KeyMods().Ctrl {
				t.Error("Ctrl modifier lost")
			}
			if dx, dy := ctx.Wheel(); dx != 1.5 || dy != -2 {
				t.Errorf("Wheel() = %v, %v, want 1.5, -2", dx, dy)
			}
			if w, h := ctx.ScreenSize(); w != 16 || h != 16 {
				t.Errorf("ScreenSize() = %v, %v, want 16, 16", w, h)
			}
			if ctx.DPIScale() != 1 {
				t.Errorf("DPIScale() = %v, want 1", ctx.DPIScale())
			}
		},
	}

	cfg := DefaultConfig().WithSize(16, 16)
	if err := RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
}

func TestFrameErrorPropagates(t *testing.T) {
	wantErr := errors.New("present exploded")
	host := &errHost{err: wantErr}
	err := RunOn(host, DefaultConfig().WithSize(2, 2), &funcState{})
	if !errors.Is(err, wantErr) {
		t.Errorf("RunOn() error = %v, want %v", err, wantErr)
	}
}

// errHost presents through a presenter that always fails.
type errHost struct{ err error }

func (h *errHost) Name() string { return "err" }

func (h *errHost) Run(cfg Config, handler Handler) error {
	return handler.Frame(&errPresenter{err: h.err})
}

type errPresenter struct{ err error }

func (p *errPresenter) Present([]uint8, int, int) error { return p.err }
func (p *errPresenter) ScreenSize() (w, h float64)      { return 0, 0 }
func (p *errPresenter) DPIScale() float64               { return 1 }
func (p *errPresenter) Quit()                           {}

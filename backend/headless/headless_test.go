package headless

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/pixels"
)

// drawState fills the surface and counts frames.
type drawState struct {
	frames int
	color  pixels.Color
	stop   int
}

func (s *drawState) Update(ctx *pixels.Context) {
	s.frames++
	if s.stop > 0 && s.frames >= s.stop {
		ctx.Quit()
	}
}

func (s *drawState) Draw(ctx *pixels.Context) {
	ctx.SetClearColor(s.color)
	ctx.Clear()
}

func TestHostRegistered(t *testing.T) {
	if !slices.Contains(pixels.AvailableHosts(), Name) {
		t.Fatalf("AvailableHosts() = %v, want to contain %q", pixels.AvailableHosts(), Name)
	}
}

func TestRunMaxFrames(t *testing.T) {
	host := New()
	host.MaxFrames = 5
	state := &drawState{color: pixels.Red}

	cfg := pixels.DefaultConfig().WithSize(8, 8)
	if err := pixels.RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if state.frames != 5 {
		t.Errorf("frames = %d, want 5", state.frames)
	}
	if host.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", host.Frames())
	}
}

func TestRunQuitFromState(t *testing.T) {
	host := New()
	state := &drawState{color: pixels.Blue, stop: 3}

	cfg := pixels.DefaultConfig().WithSize(4, 4)
	if err := pixels.RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if state.frames != 3 {
		t.Errorf("frames = %d, want 3", state.frames)
	}
}

func TestSnapshot(t *testing.T) {
	host := New()
	host.MaxFrames = 1
	state := &drawState{color: pixels.RGBA(10, 20, 30, 255)}

	cfg := pixels.DefaultConfig().WithSize(3, 2)
	if err := pixels.RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}

	pix, w, h := host.Snapshot()
	if w != 3 || h != 2 {
		t.Fatalf("Snapshot() size = %dx%d, want 3x2", w, h)
	}
	if len(pix) != 3*2*4 {
		t.Fatalf("Snapshot() len = %d, want %d", len(pix), 3*2*4)
	}
	if pix[0] != 10 || pix[1] != 20 || pix[2] != 30 || pix[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", pix[:4])
	}
}

func TestSnapshotBeforeFirstFrame(t *testing.T) {
	host := New()
	if pix, _, _ := host.Snapshot(); pix != nil {
		t.Errorf("Snapshot() before run = %v, want nil", pix)
	}
}

func TestOnFrameInjectsInput(t *testing.T) {
	host := New()
	host.MaxFrames = 2
	host.OnFrame = func(frame int, h pixels.Handler) {
		if frame == 0 {
			h.KeyDown(pixels.KeySpace, pixels.Modifiers{}, false)
		}
	}

	var sawPressed, sawDown bool
	state := &stepState{step: func(ctx *pixels.Context, frame int) {
		switch frame {
		case 0:
			sawPressed = ctx.IsKeyPressed(pixels.KeySpace)
		case 1:
			sawDown = ctx.IsKeyDown(pixels.KeySpace) && !ctx.IsKeyPressed(pixels.KeySpace)
		}
	}}

	cfg := pixels.DefaultConfig().WithSize(4, 4)
	if err := pixels.RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if !sawPressed {
		t.Error("frame 0: key not in pressed state")
	}
	if !sawDown {
		t.Error("frame 1: key did not settle into down state")
	}
}

func TestPresentRejectsBadBuffer(t *testing.T) {
	host := New()
	p := &presenter{host: host, width: 4, height: 4}
	err := p.Present(make([]uint8, 7), 4, 4)
	if !errors.Is(err, ErrBufferSize) {
		t.Errorf("Present() error = %v, want %v", err, ErrBufferSize)
	}
}

// stepState runs a step callback once per frame during Update.
type stepState struct {
	frame int
	step  func(ctx *pixels.Context, frame int)
}

func (s *stepState) Update(ctx *pixels.Context) {
	s.step(ctx, s.frame)
	s.frame++
}

func (s *stepState) Draw(ctx *pixels.Context) {}

// windowState drives the window controls from the update callback and
// records the clipboard round trip.
type windowState struct {
	clipboard string
	clipOK    bool
}

func (s *windowState) Update(ctx *pixels.Context) {
	ctx.ShowMouse(false)
	ctx.SetMouseCursor(pixels.CursorPointer)
	ctx.SetFullscreen(true)
	ctx.SetFilterMode(pixels.FilterLinear)
	ctx.SetClipboard("copied")
	s.clipboard, s.clipOK = ctx.Clipboard()
}

func (s *windowState) Draw(ctx *pixels.Context) {}

func TestWindowControls(t *testing.T) {
	host := New()
	host.MaxFrames = 1
	state := &windowState{}

	cfg := pixels.DefaultConfig().WithSize(4, 4)
	if err := pixels.RunOn(host, cfg, state); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}

	if host.MouseShown() {
		t.Error("MouseShown() = true after ShowMouse(false)")
	}
	if host.Cursor() != pixels.CursorPointer {
		t.Errorf("Cursor() = %v, want CursorPointer", host.Cursor())
	}
	if !host.Fullscreen() {
		t.Error("Fullscreen() = false after SetFullscreen(true)")
	}
	if host.FilterMode() != pixels.FilterLinear {
		t.Errorf("FilterMode() = %v, want FilterLinear", host.FilterMode())
	}
	if !state.clipOK || state.clipboard != "copied" {
		t.Errorf("clipboard round trip = %q, %v, want %q, true",
			state.clipboard, state.clipOK, "copied")
	}
}

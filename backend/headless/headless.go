// Package headless provides a windowless host for pixels.
//
// Import it for its side effects to register the "headless" host:
//
//	import _ "github.com/gogpu/pixels/backend/headless"
//
// The host drives frames without a display. It is meant for tests and
// server-side rendering: presented frames are kept as a snapshot, and
// events can be injected before each frame through OnFrame.
package headless

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/pixels"
)

// Name is the registry name of this host.
const Name = "headless"

// ErrBufferSize is returned when the presented buffer does not match
// the declared dimensions.
var ErrBufferSize = errors.New("headless: pixel buffer size mismatch")

func init() {
	pixels.RegisterHost(Name, func() pixels.Host { return New() })
}

// Host drives the frame driver without a window. The zero value runs
// forever at full speed; set MaxFrames or StepDelay, or call Quit from
// the state, to bound a run.
type Host struct {
	// MaxFrames stops the loop after this many frames. Zero means
	// unbounded.
	MaxFrames int

	// StepDelay is slept between frames. Zero runs at full speed.
	StepDelay time.Duration

	// OnFrame, if set, is called before each frame with the frame
	// index and the event handler. Tests use it to inject input.
	OnFrame func(frame int, h pixels.Handler)

	frames    int
	lastFrame []uint8
	lastW     int
	lastH     int
	quit      bool

	// Window controls applied through the context, recorded so tests
	// can observe them.
	mouseHidden bool
	cursor      pixels.Cursor
	fullscreen  bool
	filter      pixels.FilterMode
	clipboard   string
}

// New returns a host with no frame bound.
func New() *Host {
	return &Host{}
}

// Name returns the registry name of this host.
func (*Host) Name() string { return Name }

// Run drives h until MaxFrames is reached or the handler requests quit.
func (host *Host) Run(cfg pixels.Config, h pixels.Handler) error {
	host.frames = 0
	host.quit = false
	p := &presenter{host: host, width: cfg.Width, height: cfg.Height}

	for !host.quit {
		if host.MaxFrames > 0 && host.frames >= host.MaxFrames {
			break
		}
		if host.OnFrame != nil {
			host.OnFrame(host.frames, h)
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

// Snapshot returns a copy of the most recently presented frame and its
// dimensions. It returns nil before the first frame.
func (host *Host) Snapshot() (pix []uint8, width, height int) {
	if host.lastFrame == nil {
		return nil, 0, 0
	}
	out := make([]uint8, len(host.lastFrame))
	copy(out, host.lastFrame)
	return out, host.lastW, host.lastH
}

// MouseShown reports whether the virtual cursor is visible.
func (host *Host) MouseShown() bool { return !host.mouseHidden }

// Cursor returns the last cursor icon set through the context.
func (host *Host) Cursor() pixels.Cursor { return host.cursor }

// Fullscreen reports the last fullscreen state set through the context.
func (host *Host) Fullscreen() bool { return host.fullscreen }

// FilterMode returns the last filter mode set through the context.
func (host *Host) FilterMode() pixels.FilterMode { return host.filter }

type presenter struct {
	host   *Host
	width  int
	height int
}

func (p *presenter) Present(pix []uint8, width, height int) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: got %d bytes for %dx%d", ErrBufferSize, len(pix), width, height)
	}
	h := p.host
	if len(h.lastFrame) != len(pix) {
		h.lastFrame = make([]uint8, len(pix))
	}
	copy(h.lastFrame, pix)
	h.lastW, h.lastH = width, height
	return nil
}

func (p *presenter) ScreenSize() (w, h float64) {
	return float64(p.width), float64(p.height)
}

func (p *presenter) DPIScale() float64 { return 1 }

func (p *presenter) Quit() { p.host.quit = true }

func (p *presenter) ShowMouse(shown bool) { p.host.mouseHidden = !shown }

func (p *presenter) SetMouseCursor(cursor pixels.Cursor) { p.host.cursor = cursor }

func (p *presenter) SetFullscreen(fullscreen bool) { p.host.fullscreen = fullscreen }

func (p *presenter) SetFilterMode(mode pixels.FilterMode) { p.host.filter = mode }

func (p *presenter) Clipboard() (text string, ok bool) { return p.host.clipboard, true }

func (p *presenter) SetClipboard(text string) { p.host.clipboard = text }

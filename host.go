package pixels

import (
	"errors"
	"sync"
)

// Host registry errors.
var (
	// ErrNoHost is returned by Run when no host backend is registered
	// or the requested backend name is unknown. Import a backend
	// package for its side effects to register it:
	//
	//	import _ "github.com/gogpu/pixels/backend/gogpu"
	ErrNoHost = errors.New("pixels: no host backend registered")
)

// Host is a windowing/presentation backend. It owns the event loop:
// Run blocks until the window closes or the application quits, invoking
// the Handler once per frame and forwarding raw input events to it.
//
// Host implementations live in the backend/ subpackages and register
// themselves in an init function.
type Host interface {
	// Name returns the backend identifier (e.g. "gogpu", "headless").
	Name() string

	// Run opens the window described by cfg and drives h until the
	// application exits. Construction-time failures (window, GPU
	// pipeline, texture allocation) are returned as errors; they are
	// fatal, not runtime-recoverable.
	Run(cfg Config, h Handler) error
}

// HostFactory creates a new host instance.
type HostFactory func() Host

// Handler is the sink a Host drives: one Frame call per iteration of
// the event loop, plus raw input events. The Handler is implemented by
// the session created in Run; custom hosts only need to call it, never
// implement it.
//
// Hosts must call Handler methods from a single goroutine, must not
// call Frame re-entrantly, and must deliver all input events for a
// frame before that frame's Frame call.
type Handler interface {
	// Frame runs one update/draw cycle and presents the result
	// through p.
	Frame(p Presenter) error

	// KeyDown reports a key-down edge. repeat is true for OS
	// auto-repeat events while the key is held.
	KeyDown(key Key, mods Modifiers, repeat bool)

	// KeyUp reports a key-up edge.
	KeyUp(key Key, mods Modifiers)

	// MouseMove reports the pointer position in window coordinates.
	MouseMove(x, y float64)

	// MouseButtonDown and MouseButtonUp report button edges, with the
	// pointer position at the time of the event.
	MouseButtonDown(btn MouseButton, x, y float64)
	MouseButtonUp(btn MouseButton, x, y float64)

	// MouseWheel reports a scroll delta.
	MouseWheel(dx, dy float64)

	// Resize reports the new window size in pixels.
	Resize(width, height int)
}

// Presenter is the per-frame presentation handle a Host passes to
// Handler.Frame. It carries the downstream half of the frame: uploading
// the finished pixel buffer and answering display queries.
type Presenter interface {
	// Present uploads the RGBA pixel bytes (width*height*4) to the
	// surface texture and draws the textured quad for this frame.
	Present(pix []uint8, width, height int) error

	// ScreenSize returns the current framebuffer size in physical
	// pixels, accounting for dpi scale.
	ScreenSize() (w, h float64)

	// DPIScale returns the window-to-framebuffer scale factor. Always
	// 1.0 when Config.HighDPI is false.
	DPIScale() float64

	// Quit asks the host to close the window after this frame.
	Quit()
}

// registry holds registered hosts.
var (
	registryMu sync.RWMutex
	hosts      = make(map[string]HostFactory)
	// Priority order for host selection (first available wins).
	// Windowed hosts before offscreen ones; headless is the fallback.
	hostPriority = []string{"gogpu", "ebiten", "native", "headless"}
)

// RegisterHost registers a host factory with the given name. This is
// typically called from init functions in backend packages. Registering
// the same name again replaces the previous factory.
func RegisterHost(name string, factory HostFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	hosts[name] = factory
}

// UnregisterHost removes a host from the registry. Useful in tests.
func UnregisterHost(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(hosts, name)
}

// AvailableHosts returns the names of all registered hosts.
func AvailableHosts() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	return names
}

// lookupHost returns a host by name, or the highest-priority registered
// host if name is empty. Returns nil if nothing matches.
func lookupHost(name string) Host {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if name != "" {
		if factory, ok := hosts[name]; ok {
			return factory()
		}
		return nil
	}
	for _, candidate := range hostPriority {
		if factory, ok := hosts[candidate]; ok {
			return factory()
		}
	}
	// A registered host outside the priority list still beats nothing.
	for _, factory := range hosts {
		return factory()
	}
	return nil
}

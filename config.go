package pixels

// ResizeMode selects how the logical pixel buffer reacts when the host
// window is resized. The mode is fixed at startup and never changes
// mid-run.
type ResizeMode int

const (
	// ResizeKeepLogical keeps the buffer at its configured size and
	// lets the host scale it to fill the window. This is the default.
	ResizeKeepLogical ResizeMode = iota

	// ResizeToWindow reallocates the buffer to match the window size on
	// every resize event. Contents are discarded (see Surface.Resize).
	ResizeToWindow
)

// Config holds the application window settings passed to Run.
//
// Config values are chained in builder style:
//
//	cfg := pixels.DefaultConfig().
//	    WithTitle("invaders").
//	    WithSize(320, 240).
//	    WithHighDPI(true)
type Config struct {
	// Title of the window.
	Title string

	// Width and Height of the logical pixel buffer, in pixels. With
	// ResizeKeepLogical this is also the initial window size.
	Width, Height int

	// Fullscreen creates the window in fullscreen mode.
	Fullscreen bool

	// HighDPI makes the rendering canvas full-resolution on high-dpi
	// displays. When false the dpi scale reported to the application is
	// always 1.0.
	HighDPI bool

	// Resize selects the buffer-resize behavior.
	Resize ResizeMode

	// Icon is an optional window icon. Nil means the host default.
	Icon *Icon

	// Backend forces a specific host backend by name. Empty selects the
	// first registered host in priority order.
	Backend string
}

// DefaultConfig returns a Config with sensible defaults: a 640x480
// windowed buffer titled "pixels".
func DefaultConfig() Config {
	return Config{
		Title:  "pixels",
		Width:  640,
		Height: 480,
	}
}

// WithTitle returns a copy of the config with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of the config with the buffer size set.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithFullscreen returns a copy of the config with fullscreen set.
func (c Config) WithFullscreen(fullscreen bool) Config {
	c.Fullscreen = fullscreen
	return c
}

// WithHighDPI returns a copy of the config with high-dpi rendering set.
func (c Config) WithHighDPI(highDPI bool) Config {
	c.HighDPI = highDPI
	return c
}

// WithResizeMode returns a copy of the config with the resize mode set.
func (c Config) WithResizeMode(mode ResizeMode) Config {
	c.Resize = mode
	return c
}

// WithIcon returns a copy of the config with the window icon set.
func (c Config) WithIcon(icon *Icon) Config {
	c.Icon = icon
	return c
}

// WithBackend returns a copy of the config forcing a host backend by
// name.
func (c Config) WithBackend(name string) Config {
	c.Backend = name
	return c
}

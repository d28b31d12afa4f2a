package pixels

import (
	"math"
	"time"
)

// Context is the per-frame handle passed to State.Update and
// State.Draw. It exposes the drawing surface, the input tracker, and
// derived frame values (delta time, sizes, dpi scale).
//
// A Context is a transient borrow of session state owned by the frame
// driver: it is only valid for the duration of the callback it was
// passed to and must not be retained.
type Context struct {
	session   *session
	presenter Presenter
}

// Width returns the logical buffer width in pixels.
func (c *Context) Width() int { return c.session.surface.Width() }

// Height returns the logical buffer height in pixels.
func (c *Context) Height() int { return c.session.surface.Height() }

// DeltaTime returns the time passed between the previous and current
// frame. It is zero on the first frame.
func (c *Context) DeltaTime() time.Duration { return c.session.delta }

// ScreenSize returns the current window framebuffer size in physical
// pixels, which may differ from the logical buffer size.
func (c *Context) ScreenSize() (w, h float64) { return c.presenter.ScreenSize() }

// DPIScale returns the window-to-framebuffer scale factor. Always 1.0
// when Config.HighDPI is false.
func (c *Context) DPIScale() float64 { return c.presenter.DPIScale() }

// Quit asks the host to close the window after this frame.
func (c *Context) Quit() { c.presenter.Quit() }

// --- window controls ---
//
// These forward to optional presenter capabilities (see window.go).
// Hosts that cannot honor a control ignore the call, so applications
// may use them unconditionally.

// ShowMouse shows or hides the mouse cursor over the window.
func (c *Context) ShowMouse(shown bool) {
	if cc, ok := c.presenter.(CursorController); ok {
		cc.ShowMouse(shown)
	}
}

// SetMouseCursor sets the mouse cursor icon.
func (c *Context) SetMouseCursor(cursor Cursor) {
	if cc, ok := c.presenter.(CursorController); ok {
		cc.SetMouseCursor(cursor)
	}
}

// SetFullscreen switches the window in or out of fullscreen.
func (c *Context) SetFullscreen(fullscreen bool) {
	if fs, ok := c.presenter.(FullscreenSetter); ok {
		fs.SetFullscreen(fullscreen)
	}
}

// Clipboard returns the current OS clipboard text. ok is false when
// the host has no clipboard access.
func (c *Context) Clipboard() (text string, ok bool) {
	if cb, ok := c.presenter.(ClipboardAccessor); ok {
		return cb.Clipboard()
	}
	return "", false
}

// SetClipboard saves text to the OS clipboard.
func (c *Context) SetClipboard(text string) {
	if cb, ok := c.presenter.(ClipboardAccessor); ok {
		cb.SetClipboard(text)
	}
}

// SetFilterMode sets the filter used when the buffer is scaled to the
// window. The default is FilterNearest.
func (c *Context) SetFilterMode(mode FilterMode) {
	if fs, ok := c.presenter.(FilterSetter); ok {
		fs.SetFilterMode(mode)
	}
}

// Surface returns the drawing surface for direct access. The surface
// and any slice obtained from it must not be retained across frames.
func (c *Context) Surface() *Surface { return c.session.surface }

// Input returns the input tracker for direct (read-only) access.
func (c *Context) Input() *Input { return c.session.input }

// --- drawing ---

// SetClearColor sets the clear/background color. The buffer is not
// cleared automatically; call Clear for that.
func (c *Context) SetClearColor(col Color) { c.session.surface.SetClearColor(col) }

// ClearColor returns the current clear color.
func (c *Context) ClearColor() Color { return c.session.surface.ClearColor() }

// Clear fills the buffer with the current clear color.
func (c *Context) Clear() { c.session.surface.Clear() }

// SetPixel draws a pixel at (x, y). Off-screen positions are ignored.
func (c *Context) SetPixel(x, y int, col Color) { c.session.surface.SetPixel(x, y, col) }

// PixelAt returns the pixel at (x, y), or Transparent off-screen.
func (c *Context) PixelAt(x, y int) Color { return c.session.surface.PixelAt(x, y) }

// FillRect draws a filled rectangle, clipped to the buffer.
func (c *Context) FillRect(x, y, w, h int, col Color) {
	c.session.surface.FillRect(x, y, w, h, col)
}

// Blit copies a w x h pixel block to (x, y), clipped to the buffer.
func (c *Context) Blit(x, y, w, h int, src []Color) {
	c.session.surface.Blit(x, y, w, h, src)
}

// BlitFull replaces the whole buffer; src must be exactly
// Width()*Height() pixels or the call is a no-op.
func (c *Context) BlitFull(src []Color) { c.session.surface.BlitFull(src) }

// --- input ---

// KeyState returns the input state of a key; ok is false if the key is
// neither held nor just released. Note that Released means the key has
// just been released, not that it is up.
func (c *Context) KeyState(key Key) (state InputState, ok bool) {
	return c.session.input.KeyState(key)
}

// IsKeyDown reports whether a key is held (Pressed or Down).
func (c *Context) IsKeyDown(key Key) bool {
	state, ok := c.session.input.KeyState(key)
	return ok && state != Released
}

// IsKeyPressed reports whether a key went down this cycle.
func (c *Context) IsKeyPressed(key Key) bool {
	state, ok := c.session.input.KeyState(key)
	return ok && state == Pressed
}

// IsKeyReleased reports whether a key went up this cycle.
func (c *Context) IsKeyReleased(key Key) bool {
	state, ok := c.session.input.KeyState(key)
	return ok && state == Released
}

// KeyMods returns the modifier flags of the most recent keyboard event.
func (c *Context) KeyMods() Modifiers { return c.session.input.KeyMods() }

// MousePos returns the pointer position in window coordinates. It is
// not scaled by DPIScale.
func (c *Context) MousePos() (x, y float64) { return c.session.input.MousePos() }

// MousePosInt returns the pointer position rounded to the nearest
// integer. Rounding (rather than truncation) keeps the integer position
// visually aligned with the cursor.
func (c *Context) MousePosInt() (x, y int) {
	fx, fy := c.session.input.MousePos()
	return int(math.Round(fx)), int(math.Round(fy))
}

// MouseButtonState returns the input state of a mouse button.
func (c *Context) MouseButtonState(btn MouseButton) (state InputState, ok bool) {
	return c.session.input.MouseButtonState(btn)
}

// IsMouseButtonDown reports whether a button is held.
func (c *Context) IsMouseButtonDown(btn MouseButton) bool {
	state, ok := c.session.input.MouseButtonState(btn)
	return ok && state != Released
}

// IsMouseButtonPressed reports whether a button went down this cycle.
func (c *Context) IsMouseButtonPressed(btn MouseButton) bool {
	state, ok := c.session.input.MouseButtonState(btn)
	return ok && state == Pressed
}

// IsMouseButtonReleased reports whether a button went up this cycle.
func (c *Context) IsMouseButtonReleased(btn MouseButton) bool {
	state, ok := c.session.input.MouseButtonState(btn)
	return ok && state == Released
}

// Wheel returns this frame's scroll delta. It resets to (0, 0) every
// cycle; it is not cumulative.
func (c *Context) Wheel() (dx, dy float64) { return c.session.input.Wheel() }

package pixels

// Cursor selects the mouse cursor icon shown over the window.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorHelp
	CursorPointer
	CursorWait
	CursorCrosshair
	CursorText
	CursorMove
	CursorNotAllowed
	CursorResizeEW
	CursorResizeNS
	CursorResizeNESW
	CursorResizeNWSE
)

// FilterMode selects how the pixel buffer is sampled when it is scaled
// to the window. The default is FilterNearest, which keeps pixel edges
// sharp.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Optional presenter capabilities. A host implements the interfaces it
// can honor; the Context methods check with a type assertion and fall
// back to a no-op, so applications can call them unconditionally.

// CursorController changes mouse cursor visibility and shape.
type CursorController interface {
	ShowMouse(shown bool)
	SetMouseCursor(cursor Cursor)
}

// FullscreenSetter toggles fullscreen at runtime, beyond the startup
// Config.Fullscreen flag.
type FullscreenSetter interface {
	SetFullscreen(fullscreen bool)
}

// ClipboardAccessor reads and writes the OS clipboard.
type ClipboardAccessor interface {
	Clipboard() (text string, ok bool)
	SetClipboard(text string)
}

// FilterSetter changes the scaling filter of the presented quad.
type FilterSetter interface {
	SetFilterMode(mode FilterMode)
}

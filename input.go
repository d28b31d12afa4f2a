package pixels

// InputState is the per-frame state of a key or mouse button.
//
// A key enters the tracker as Pressed on a down edge, becomes Down after
// the update cycle it was first observed in, and leaves the tracker one
// cycle after a release edge set it to Released. Absence means "not held
// and not just released".
type InputState uint8

const (
	// Pressed means the key went down during this update cycle.
	Pressed InputState = iota + 1
	// Down means the key is being held.
	Down
	// Released means the key went up during this update cycle.
	// Note that it does NOT mean the key is held.
	Released
)

// String returns the state name for debugging.
func (s InputState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Down:
		return "Down"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// Input tracks keyboard and mouse state across frames, converting the
// host's raw press/release edges into the three-state model above.
//
// Input is not safe for concurrent use. The frame driver owns it and
// feeds it from the single host event loop; applications only read it
// through the *Context passed to their callbacks.
type Input struct {
	keys    map[Key]InputState
	buttons map[MouseButton]InputState

	mods Modifiers

	mouseX, mouseY float64
	wheelX, wheelY float64
}

// NewInput creates an empty input tracker.
func NewInput() *Input {
	return &Input{
		keys:    make(map[Key]InputState),
		buttons: make(map[MouseButton]InputState),
	}
}

// KeyDown records a key-down edge from the host.
//
// A repeat event (OS auto-repeat while the key is held) leaves the state
// map untouched so the application sees a single Pressed->Down
// transition per physical press. The modifier flags are overwritten
// either way: they mirror the most recent keyboard event.
func (in *Input) KeyDown(key Key, mods Modifiers, repeat bool) {
	if !repeat {
		// Overwrites any prior state, including Released: a
		// release-then-press within one frame collapses to Pressed.
		in.keys[key] = Pressed
	}
	in.mods = mods
}

// KeyUp records a key-up edge from the host. The entry is created even
// if the key was never tracked, so the application observes the release
// edge for exactly one cycle.
func (in *Input) KeyUp(key Key, mods Modifiers) {
	in.keys[key] = Released
	in.mods = mods
}

// MouseButtonDown records a button-down edge. Mouse buttons have no
// OS-level auto-repeat, so there is no repeat flag.
func (in *Input) MouseButtonDown(btn MouseButton) {
	in.buttons[btn] = Pressed
}

// MouseButtonUp records a button-up edge.
func (in *Input) MouseButtonUp(btn MouseButton) {
	in.buttons[btn] = Released
}

// MouseMove records the pointer position in window coordinates.
func (in *Input) MouseMove(x, y float64) {
	in.mouseX, in.mouseY = x, y
}

// MouseWheel records this frame's scroll delta. The value is
// overwritten, not accumulated; AdvanceFrame resets it to zero.
func (in *Input) MouseWheel(dx, dy float64) {
	in.wheelX, in.wheelY = dx, dy
}

// KeyState returns the current state of a key. ok is false if the key
// is neither held nor just released.
func (in *Input) KeyState(key Key) (state InputState, ok bool) {
	state, ok = in.keys[key]
	return state, ok
}

// MouseButtonState returns the current state of a mouse button.
func (in *Input) MouseButtonState(btn MouseButton) (state InputState, ok bool) {
	state, ok = in.buttons[btn]
	return state, ok
}

// KeyMods returns the modifier flags from the most recent keyboard
// event.
func (in *Input) KeyMods() Modifiers {
	return in.mods
}

// MousePos returns the last known pointer position in window
// coordinates. It is not scaled to buffer coordinates.
func (in *Input) MousePos() (x, y float64) {
	return in.mouseX, in.mouseY
}

// Wheel returns this frame's scroll delta.
func (in *Input) Wheel() (dx, dy float64) {
	return in.wheelX, in.wheelY
}

// AdvanceFrame steps every tracked key and button one edge forward:
// Pressed becomes Down, Released is removed, Down is kept. The wheel
// delta is reset.
//
// The frame driver calls this exactly once per frame, after the
// application's Update callback returns and before any events for the
// next frame are processed. Each transient edge is therefore visible for
// exactly one full update cycle.
func (in *Input) AdvanceFrame() {
	advance(in.keys)
	advance(in.buttons)
	in.wheelX, in.wheelY = 0, 0
}

func advance[K comparable](m map[K]InputState) {
	for k, state := range m {
		switch state {
		case Pressed:
			m[k] = Down
		case Released:
			delete(m, k)
		}
	}
}

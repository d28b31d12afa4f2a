package gogpu

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixels"
)

// keyTable maps gpucontext key codes to pixels key codes.
var keyTable = map[gpucontext.Key]pixels.Key{
	gpucontext.KeyA: pixels.KeyA,
	gpucontext.KeyB: pixels.KeyB,
	gpucontext.KeyC: pixels.KeyC,
	gpucontext.KeyD: pixels.KeyD,
	gpucontext.KeyE: pixels.KeyE,
	gpucontext.KeyF: pixels.KeyF,
	gpucontext.KeyG: pixels.KeyG,
	gpucontext.KeyH: pixels.KeyH,
	gpucontext.KeyI: pixels.KeyI,
	gpucontext.KeyJ: pixels.KeyJ,
	gpucontext.KeyK: pixels.KeyK,
	gpucontext.KeyL: pixels.KeyL,
	gpucontext.KeyM: pixels.KeyM,
	gpucontext.KeyN: pixels.KeyN,
	gpucontext.KeyO: pixels.KeyO,
	gpucontext.KeyP: pixels.KeyP,
	gpucontext.KeyQ: pixels.KeyQ,
	gpucontext.KeyR: pixels.KeyR,
	gpucontext.KeyS: pixels.KeyS,
	gpucontext.KeyT: pixels.KeyT,
	gpucontext.KeyU: pixels.KeyU,
	gpucontext.KeyV: pixels.KeyV,
	gpucontext.KeyW: pixels.KeyW,
	gpucontext.KeyX: pixels.KeyX,
	gpucontext.KeyY: pixels.KeyY,
	gpucontext.KeyZ: pixels.KeyZ,

	gpucontext.Key0: pixels.Key0,
	gpucontext.Key1: pixels.Key1,
	gpucontext.Key2: pixels.Key2,
	gpucontext.Key3: pixels.Key3,
	gpucontext.Key4: pixels.Key4,
	gpucontext.Key5: pixels.Key5,
	gpucontext.Key6: pixels.Key6,
	gpucontext.Key7: pixels.Key7,
	gpucontext.Key8: pixels.Key8,
	gpucontext.Key9: pixels.Key9,

	gpucontext.KeyF1:  pixels.KeyF1,
	gpucontext.KeyF2:  pixels.KeyF2,
	gpucontext.KeyF3:  pixels.KeyF3,
	gpucontext.KeyF4:  pixels.KeyF4,
	gpucontext.KeyF5:  pixels.KeyF5,
	gpucontext.KeyF6:  pixels.KeyF6,
	gpucontext.KeyF7:  pixels.KeyF7,
	gpucontext.KeyF8:  pixels.KeyF8,
	gpucontext.KeyF9:  pixels.KeyF9,
	gpucontext.KeyF10: pixels.KeyF10,
	gpucontext.KeyF11: pixels.KeyF11,
	gpucontext.KeyF12: pixels.KeyF12,

	gpucontext.KeyUp:    pixels.KeyUp,
	gpucontext.KeyDown:  pixels.KeyDown,
	gpucontext.KeyLeft:  pixels.KeyLeft,
	gpucontext.KeyRight: pixels.KeyRight,

	gpucontext.KeySpace:     pixels.KeySpace,
	gpucontext.KeyEnter:     pixels.KeyEnter,
	gpucontext.KeyEscape:    pixels.KeyEscape,
	gpucontext.KeyBackspace: pixels.KeyBackspace,
	gpucontext.KeyTab:       pixels.KeyTab,
	gpucontext.KeyInsert:    pixels.KeyInsert,
	gpucontext.KeyDelete:    pixels.KeyDelete,
	gpucontext.KeyHome:      pixels.KeyHome,
	gpucontext.KeyEnd:       pixels.KeyEnd,
	gpucontext.KeyPageUp:    pixels.KeyPageUp,
	gpucontext.KeyPageDown:  pixels.KeyPageDown,

	gpucontext.KeyMinus:        pixels.KeyMinus,
	gpucontext.KeyEqual:        pixels.KeyEqual,
	gpucontext.KeyLeftBracket:  pixels.KeyLeftBracket,
	gpucontext.KeyRightBracket: pixels.KeyRightBracket,
	gpucontext.KeyBackslash:    pixels.KeyBackslash,
	gpucontext.KeySemicolon:    pixels.KeySemicolon,
	gpucontext.KeyApostrophe:   pixels.KeyApostrophe,
	gpucontext.KeyGrave:        pixels.KeyGrave,
	gpucontext.KeyComma:        pixels.KeyComma,
	gpucontext.KeyPeriod:       pixels.KeyPeriod,
	gpucontext.KeySlash:        pixels.KeySlash,

	gpucontext.KeyLeftShift:    pixels.KeyLeftShift,
	gpucontext.KeyRightShift:   pixels.KeyRightShift,
	gpucontext.KeyLeftControl:  pixels.KeyLeftControl,
	gpucontext.KeyRightControl: pixels.KeyRightControl,
	gpucontext.KeyLeftAlt:      pixels.KeyLeftAlt,
	gpucontext.KeyRightAlt:     pixels.KeyRightAlt,
	gpucontext.KeyLeftSuper:    pixels.KeyLeftSuper,
	gpucontext.KeyRightSuper:   pixels.KeyRightSuper,
}

// mapKey translates a gpucontext key code. Unmapped codes return
// pixels.KeyUnknown and are dropped by the host.
func mapKey(key gpucontext.Key) pixels.Key {
	if k, ok := keyTable[key]; ok {
		return k
	}
	return pixels.KeyUnknown
}

func mapMods(mods gpucontext.Modifiers) pixels.Modifiers {
	return pixels.Modifiers{
		Shift: mods&gpucontext.ModShift != 0,
		Ctrl:  mods&gpucontext.ModControl != 0,
		Alt:   mods&gpucontext.ModAlt != 0,
		Meta:  mods&gpucontext.ModSuper != 0,
	}
}

func mapButton(btn gpucontext.MouseButton) pixels.MouseButton {
	switch btn {
	case gpucontext.MouseButtonRight:
		return pixels.MouseButtonRight
	case gpucontext.MouseButtonMiddle:
		return pixels.MouseButtonMiddle
	default:
		return pixels.MouseButtonLeft
	}
}

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pixels"
)

// keyTable maps Ebitengine key codes to pixels key codes.
var keyTable = map[ebiten.Key]pixels.Key{
	ebiten.KeyA: pixels.KeyA,
	ebiten.KeyB: pixels.KeyB,
	ebiten.KeyC: pixels.KeyC,
	ebiten.KeyD: pixels.KeyD,
	ebiten.KeyE: pixels.KeyE,
	ebiten.KeyF: pixels.KeyF,
	ebiten.KeyG: pixels.KeyG,
	ebiten.KeyH: pixels.KeyH,
	ebiten.KeyI: pixels.KeyI,
	ebiten.KeyJ: pixels.KeyJ,
	ebiten.KeyK: pixels.KeyK,
	ebiten.KeyL: pixels.KeyL,
	ebiten.KeyM: pixels.KeyM,
	ebiten.KeyN: pixels.KeyN,
	ebiten.KeyO: pixels.KeyO,
	ebiten.KeyP: pixels.KeyP,
	ebiten.KeyQ: pixels.KeyQ,
	ebiten.KeyR: pixels.KeyR,
	ebiten.KeyS: pixels.KeyS,
	ebiten.KeyT: pixels.KeyT,
	ebiten.KeyU: pixels.KeyU,
	ebiten.KeyV: pixels.KeyV,
	ebiten.KeyW: pixels.KeyW,
	ebiten.KeyX: pixels.KeyX,
	ebiten.KeyY: pixels.KeyY,
	ebiten.KeyZ: pixels.KeyZ,

	ebiten.KeyDigit0: pixels.Key0,
	ebiten.KeyDigit1: pixels.Key1,
	ebiten.KeyDigit2: pixels.Key2,
	ebiten.KeyDigit3: pixels.Key3,
	ebiten.KeyDigit4: pixels.Key4,
	ebiten.KeyDigit5: pixels.Key5,
	ebiten.KeyDigit6: pixels.Key6,
	ebiten.KeyDigit7: pixels.Key7,
	ebiten.KeyDigit8: pixels.Key8,
	ebiten.KeyDigit9: pixels.Key9,

	ebiten.KeyF1:  pixels.KeyF1,
	ebiten.KeyF2:  pixels.KeyF2,
	ebiten.KeyF3:  pixels.KeyF3,
	ebiten.KeyF4:  pixels.KeyF4,
	ebiten.KeyF5:  pixels.KeyF5,
	ebiten.KeyF6:  pixels.KeyF6,
	ebiten.KeyF7:  pixels.KeyF7,
	ebiten.KeyF8:  pixels.KeyF8,
	ebiten.KeyF9:  pixels.KeyF9,
	ebiten.KeyF10: pixels.KeyF10,
	ebiten.KeyF11: pixels.KeyF11,
	ebiten.KeyF12: pixels.KeyF12,

	ebiten.KeyArrowUp:    pixels.KeyUp,
	ebiten.KeyArrowDown:  pixels.KeyDown,
	ebiten.KeyArrowLeft:  pixels.KeyLeft,
	ebiten.KeyArrowRight: pixels.KeyRight,

	ebiten.KeySpace:     pixels.KeySpace,
	ebiten.KeyEnter:     pixels.KeyEnter,
	ebiten.KeyEscape:    pixels.KeyEscape,
	ebiten.KeyBackspace: pixels.KeyBackspace,
	ebiten.KeyTab:       pixels.KeyTab,
	ebiten.KeyInsert:    pixels.KeyInsert,
	ebiten.KeyDelete:    pixels.KeyDelete,
	ebiten.KeyHome:      pixels.KeyHome,
	ebiten.KeyEnd:       pixels.KeyEnd,
	ebiten.KeyPageUp:    pixels.KeyPageUp,
	ebiten.KeyPageDown:  pixels.KeyPageDown,

	ebiten.KeyMinus:        pixels.KeyMinus,
	ebiten.KeyEqual:        pixels.KeyEqual,
	ebiten.KeyBracketLeft:  pixels.KeyLeftBracket,
	ebiten.KeyBracketRight: pixels.KeyRightBracket,
	ebiten.KeyBackslash:    pixels.KeyBackslash,
	ebiten.KeySemicolon:    pixels.KeySemicolon,
	ebiten.KeyQuote:        pixels.KeyApostrophe,
	ebiten.KeyBackquote:    pixels.KeyGrave,
	ebiten.KeyComma:        pixels.KeyComma,
	ebiten.KeyPeriod:       pixels.KeyPeriod,
	ebiten.KeySlash:        pixels.KeySlash,

	ebiten.KeyShiftLeft:    pixels.KeyLeftShift,
	ebiten.KeyShiftRight:   pixels.KeyRightShift,
	ebiten.KeyControlLeft:  pixels.KeyLeftControl,
	ebiten.KeyControlRight: pixels.KeyRightControl,
	ebiten.KeyAltLeft:      pixels.KeyLeftAlt,
	ebiten.KeyAltRight:     pixels.KeyRightAlt,
	ebiten.KeyMetaLeft:     pixels.KeyLeftSuper,
	ebiten.KeyMetaRight:    pixels.KeyRightSuper,
}

var buttonTable = map[ebiten.MouseButton]pixels.MouseButton{
	ebiten.MouseButtonLeft:   pixels.MouseButtonLeft,
	ebiten.MouseButtonRight:  pixels.MouseButtonRight,
	ebiten.MouseButtonMiddle: pixels.MouseButtonMiddle,
}

var cursorTable = map[pixels.Cursor]ebiten.CursorShapeType{
	pixels.CursorDefault:    ebiten.CursorShapeDefault,
	pixels.CursorPointer:    ebiten.CursorShapePointer,
	pixels.CursorCrosshair:  ebiten.CursorShapeCrosshair,
	pixels.CursorText:       ebiten.CursorShapeText,
	pixels.CursorMove:       ebiten.CursorShapeMove,
	pixels.CursorNotAllowed: ebiten.CursorShapeNotAllowed,
	pixels.CursorResizeEW:   ebiten.CursorShapeEWResize,
	pixels.CursorResizeNS:   ebiten.CursorShapeNSResize,
	pixels.CursorResizeNESW: ebiten.CursorShapeNESWResize,
	pixels.CursorResizeNWSE: ebiten.CursorShapeNWSEResize,
}

// mapKey translates an Ebitengine key code. Unmapped codes return
// pixels.KeyUnknown and are dropped by the host.
func mapKey(key ebiten.Key) pixels.Key {
	if k, ok := keyTable[key]; ok {
		return k
	}
	return pixels.KeyUnknown
}

// mapCursor translates a cursor icon. Icons with no Ebitengine shape
// (wait, help) fall back to the default arrow.
func mapCursor(cursor pixels.Cursor) ebiten.CursorShapeType {
	if shape, ok := cursorTable[cursor]; ok {
		return shape
	}
	return ebiten.CursorShapeDefault
}

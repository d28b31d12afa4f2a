package pixels

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(10, 20, 30)
	want := Color{R: 10, G: 20, B: 30, A: 255}
	if c != want {
		t.Errorf("RGB(10, 20, 30) = %+v, want %+v", c, want)
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	want := Color{R: 10, G: 20, B: 30, A: 40}
	if c != want {
		t.Errorf("RGBA(10, 20, 30, 40) = %+v, want %+v", c, want)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"short rgb", "#f80", Color{255, 136, 0, 255}},
		{"short rgba", "#f808", Color{255, 136, 0, 136}},
		{"long rgb", "#ff8800", Color{255, 136, 0, 255}},
		{"long rgba", "#ff880080", Color{255, 136, 0, 128}},
		{"no hash", "00ff00", Color{0, 255, 0, 255}},
		{"uppercase", "#FF8800", Color{255, 136, 0, 255}},
		{"invalid length", "#ff880", Color{0, 0, 0, 255}},
		{"invalid digits", "#zzzzzz", Color{0, 0, 0, 255}},
		{"invalid alpha pair", "112233zz", Color{0, 0, 0, 255}},
		{"invalid short alpha", "#f80z", Color{0, 0, 0, 255}},
		{"invalid red pair", "zz2233", Color{0, 0, 0, 255}},
		{"empty", "", Color{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorInterface(t *testing.T) {
	c := RGBA(100, 150, 200, 250)
	nrgba, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c.Color())
	}
	if nrgba.R != 100 || nrgba.G != 150 || nrgba.B != 200 || nrgba.A != 250 {
		t.Errorf("Color() = %+v", nrgba)
	}
}

func TestFromColor(t *testing.T) {
	src := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	got := FromColor(src)
	want := Color{1, 2, 3, 4}
	if got != want {
		t.Errorf("FromColor(%+v) = %+v, want %+v", src, got, want)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA(12, 34, 56, 255)
	if got := FromColor(orig.Color()); got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

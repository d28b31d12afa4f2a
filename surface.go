package pixels

// Surface is a CPU-resident pixel buffer: a contiguous row-major array
// of RGBA8 pixels with an explicit width and height. Its size is the
// logical drawing resolution and is independent of the window size; the
// host scales it at presentation time.
//
// All write operations clip against the surface bounds and silently
// ignore the off-screen portion. Drawing partially off-screen content is
// routine (side-scrolling, camera following) and must never fault, so
// out-of-range coordinates are a no-op everywhere, not an error.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
	clear  Color
}

// NewSurface creates a surface with the given dimensions, filled with
// the default clear color (opaque black).
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		clear:  Black,
	}
	s.Clear()
	return s
}

// Width returns the buffer width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the buffer height in pixels.
func (s *Surface) Height() int { return s.height }

// Bytes returns the raw pixel data as a flat byte slice, 4 bytes per
// pixel in RGBA order, ready for texture upload. The slice aliases the
// surface storage; it is not a copy and must not be retained across
// frames.
func (s *Surface) Bytes() []uint8 { return s.data }

// SetClearColor sets the color used by Clear and Resize. It is never
// applied automatically.
func (s *Surface) SetClearColor(c Color) { s.clear = c }

// ClearColor returns the current clear color.
func (s *Surface) ClearColor() Color { return s.clear }

// Clear overwrites every pixel with the current clear color.
func (s *Surface) Clear() {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = s.clear.R
		s.data[i+1] = s.clear.G
		s.data[i+2] = s.clear.B
		s.data[i+3] = s.clear.A
	}
}

// SetPixel overwrites the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// PixelAt returns the pixel at (x, y), or Transparent if the
// coordinates are out of range.
func (s *Surface) PixelAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// FillRect fills the rectangle [x, x+w) x [y, y+h) intersected with the
// surface bounds. Coordinates are signed: a rectangle may start
// off-screen to the left or top and only its visible part is written.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	x0, y0, x1, y1 := s.clipRect(x, y, w, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		i := (yy*s.width + x0) * 4
		for xx := x0; xx < x1; xx++ {
			s.data[i+0] = c.R
			s.data[i+1] = c.G
			s.data[i+2] = c.B
			s.data[i+3] = c.A
			i += 4
		}
	}
}

// Blit copies a caller-supplied row-major pixel block of size w x h to
// destination (x, y), clipped against the surface bounds. Source rows
// are sliced per destination row, so partially off-screen blits copy
// only the visible sub-rectangle while preserving the source stride.
//
// A source shorter than w*h pixels, or a fully clipped destination, is
// a no-op.
func (s *Surface) Blit(x, y, w, h int, src []Color) {
	if len(src) < w*h {
		return
	}
	x0, y0, x1, y1 := s.clipRect(x, y, w, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	// Offsets into the source block for the clipped-away left/top part.
	sx, sy := x0-x, y0-y
	cw := x1 - x0
	for row := 0; row < y1-y0; row++ {
		line := src[(sy+row)*w+sx : (sy+row)*w+sx+cw]
		i := ((y0+row)*s.width + x0) * 4
		for _, c := range line {
			s.data[i+0] = c.R
			s.data[i+1] = c.G
			s.data[i+2] = c.B
			s.data[i+3] = c.A
			i += 4
		}
	}
}

// BlitFull replaces the entire surface in one pass. The source must be
// exactly width*height pixels; any other length is a no-op. Requiring an
// exact match avoids partial, undefined overwrites.
func (s *Surface) BlitFull(src []Color) {
	if len(src) != s.width*s.height {
		return
	}
	i := 0
	for _, c := range src {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
		i += 4
	}
}

// Resize reallocates the buffer to the new dimensions and fills it with
// the current clear color. Previous contents are discarded; resize is
// not a content-preserving operation.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
	s.data = make([]uint8, width*height*4)
	s.Clear()
}

// clipRect intersects [x, x+w) x [y, y+h) with the surface bounds.
// All four clip amounts are derived before any copy loop runs, so
// callers never need per-pixel bounds checks and negative coordinates
// cannot underflow the clipped extent.
func (s *Surface) clipRect(x, y, w, h int) (x0, y0, x1, y1 int) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0
	}
	x0 = max(x, 0)
	y0 = max(y, 0)
	x1 = min(x+w, s.width)
	y1 = min(y+h, s.height)
	return x0, y0, x1, y1
}

package pixels

import (
	"image"

	"golang.org/x/image/draw"
)

// Icon resolutions, in pixels per side.
const (
	IconSizeSmall  = 16
	IconSizeMedium = 32
	IconSizeLarge  = 64
)

// Icon is a window icon in three levels of detail. Each level is a
// row-major RGBA pixel block of the fixed size named by the constants
// above. Hosts pick whichever levels their platform supports.
type Icon struct {
	Small  [IconSizeSmall * IconSizeSmall]Color
	Medium [IconSizeMedium * IconSizeMedium]Color
	Large  [IconSizeLarge * IconSizeLarge]Color
}

// NewIconFromImage builds all three icon levels from a single source
// image, scaling with bilinear interpolation.
func NewIconFromImage(src image.Image) *Icon {
	ic := &Icon{}
	scaleInto(ic.Small[:], IconSizeSmall, src)
	scaleInto(ic.Medium[:], IconSizeMedium, src)
	scaleInto(ic.Large[:], IconSizeLarge, src)
	return ic
}

// scaleInto scales src to size x size and writes the pixels into dst.
func scaleInto(dst []Color, size int, src image.Image) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(img, img.Bounds(), src, src.Bounds(), draw.Over, nil)
	for i := range dst {
		dst[i] = Color{
			R: img.Pix[i*4+0],
			G: img.Pix[i*4+1],
			B: img.Pix[i*4+2],
			A: img.Pix[i*4+3],
		}
	}
}

// SmallBytes serializes the 16x16 level to RGBA bytes.
func (ic *Icon) SmallBytes() []uint8 { return iconBytes(ic.Small[:]) }

// MediumBytes serializes the 32x32 level to RGBA bytes.
func (ic *Icon) MediumBytes() []uint8 { return iconBytes(ic.Medium[:]) }

// LargeBytes serializes the 64x64 level to RGBA bytes.
func (ic *Icon) LargeBytes() []uint8 { return iconBytes(ic.Large[:]) }

// iconBytes serializes a pixel block to RGBA bytes explicitly, one
// channel at a time. Serialization never relies on the memory layout of
// Color matching the wire format.
func iconBytes(px []Color) []uint8 {
	out := make([]uint8, len(px)*4)
	for i, c := range px {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

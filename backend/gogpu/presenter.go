package gogpu

import (
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// presenter uploads the pixel buffer to a GPU texture and draws it.
// It is handed to the frame driver once per draw callback; dc is only
// valid for the duration of that callback.
type presenter struct {
	app        *gogpu.App
	dc         *gogpu.Context
	texture    any // lazy-created texture (*gogpu.Texture)
	oldTexture any // previous texture awaiting deferred destruction
	texW       int
	texH       int
	highDPI    bool
	quit       bool
}

// Present uploads pix to the frame texture and draws it at the origin.
// The texture is created lazily on first use and recreated when the
// buffer dimensions change.
func (p *presenter) Present(pix []uint8, width, height int) error {
	dc := p.dc
	if dc == nil {
		return ErrNoDrawContext
	}
	td := dc.AsTextureDrawer()
	if td == nil {
		return ErrInvalidDrawContext
	}

	// If size changed, defer old texture destruction until after the
	// next WriteTexture. The old texture may still be referenced by
	// in-flight GPU command buffers; destroying it now would free
	// descriptor heap entries the GPU is reading.
	if p.texture != nil && (width != p.texW || height != p.texH) {
		if p.oldTexture != nil {
			if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
		}
		p.oldTexture, p.texture = p.texture, nil
	}

	if p.texture == nil {
		creator := td.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA calls WriteTexture which waits for the GPU
		// internally, so afterwards the deferred texture is safe to free.
		tex, err := creator.NewTextureFromRGBA(width, height, pix)
		if err != nil {
			return fmt.Errorf("gogpu: NewTextureFromRGBA failed: %w", err)
		}

		// Pixel data is straight alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}

		p.texture = tex
		p.texW, p.texH = width, height

		if p.oldTexture != nil {
			if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			p.oldTexture = nil
		}
	} else if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(pix); err != nil {
			return fmt.Errorf("gogpu: texture update failed: %w", err)
		}
	}

	gpuTex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return td.DrawTexture(gpuTex, 0, 0)
}

// ScreenSize returns the logical size of the window in pixels.
func (p *presenter) ScreenSize() (w, h float64) {
	if p.dc == nil {
		return 0, 0
	}
	return float64(p.dc.Width()), float64(p.dc.Height())
}

// DPIScale returns the ratio of physical surface pixels to logical
// window pixels, or 1 when high-DPI rendering is disabled.
func (p *presenter) DPIScale() float64 {
	if !p.highDPI || p.dc == nil {
		return 1
	}
	w := p.dc.Width()
	sw, _ := p.dc.SurfaceSize()
	if w <= 0 || sw <= 0 {
		return 1
	}
	return float64(sw) / float64(w)
}

// Quit requests that the event loop stop after the current frame.
func (p *presenter) Quit() {
	p.quit = true
}

// release destroys any GPU textures still held by the presenter.
func (p *presenter) release() {
	if p.oldTexture != nil {
		if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.oldTexture = nil
	}
	if p.texture != nil {
		if destroyer, ok := p.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.texture = nil
	}
}

package ebiten

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/pixels"
)

// Name is the registry name of this host.
const Name = "ebiten"

// ErrBufferSize is returned when the presented buffer does not match
// the declared dimensions.
var ErrBufferSize = errors.New("ebiten: pixel buffer size mismatch")

func init() {
	pixels.RegisterHost(Name, func() pixels.Host { return &Host{} })
}

// Host runs the frame driver inside an Ebitengine game loop.
// The zero value is ready to use.
type Host struct{}

// Name returns the registry name of this host.
func (*Host) Name() string { return Name }

// Run opens a window and drives h until the window closes or the
// handler requests quit. It blocks for the lifetime of the window.
func (*Host) Run(cfg pixels.Config, h pixels.Handler) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	if cfg.Resize == pixels.ResizeToWindow {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Icon != nil {
		ebiten.SetWindowIcon(iconImages(cfg.Icon))
	}

	g := &game{
		handler: h,
		cfg:     cfg,
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}
	if err := ebiten.RunGame(g); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return g.frameErr
		}
		return fmt.Errorf("ebiten: game loop failed: %w", err)
	}
	return g.frameErr
}

// game glues the frame driver to the ebiten.Game lifecycle. Input edges
// are forwarded from Update, the frame itself runs in Draw where the
// screen image is available.
type game struct {
	handler  pixels.Handler
	cfg      pixels.Config
	fbImg    *ebiten.Image
	fbW, fbH int
	filter   ebiten.Filter
	layoutW  int
	layoutH  int
	lastX    int
	lastY    int
	pressed  []ebiten.Key
	released []ebiten.Key
	quit     bool
	frameErr error
}

func (g *game) Update() error {
	if g.quit || g.frameErr != nil {
		return ebiten.Termination
	}

	mods := pollMods()

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, ek := range g.pressed {
		if k := mapKey(ek); k != pixels.KeyUnknown {
			// Ebitengine reports each physical press once, so OS
			// auto-repeat never reaches the handler.
			g.handler.KeyDown(k, mods, false)
		}
	}
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	for _, ek := range g.released {
		if k := mapKey(ek); k != pixels.KeyUnknown {
			g.handler.KeyUp(k, mods)
		}
	}

	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.handler.MouseMove(float64(x), float64(y))
	}

	for eb, b := range buttonTable {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.handler.MouseButtonDown(b, float64(x), float64(y))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.handler.MouseButtonUp(b, float64(x), float64(y))
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.handler.MouseWheel(dx, dy)
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.quit || g.frameErr != nil {
		return
	}
	p := &presenter{game: g, screen: screen}
	if err := g.handler.Frame(p); err != nil {
		g.frameErr = err
		g.quit = true
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resize == pixels.ResizeToWindow {
		if outsideWidth != g.layoutW || outsideHeight != g.layoutH {
			g.layoutW, g.layoutH = outsideWidth, outsideHeight
			g.handler.Resize(outsideWidth, outsideHeight)
		}
		return outsideWidth, outsideHeight
	}
	g.layoutW, g.layoutH = g.cfg.Width, g.cfg.Height
	return g.cfg.Width, g.cfg.Height
}

// presenter is valid for a single Draw call.
type presenter struct {
	game   *game
	screen *ebiten.Image
}

func (p *presenter) Present(pix []uint8, width, height int) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: got %d bytes for %dx%d", ErrBufferSize, len(pix), width, height)
	}
	g := p.game
	if g.fbImg == nil || g.fbW != width || g.fbH != height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(width, height)
		g.fbW, g.fbH = width, height
	}
	g.fbImg.WritePixels(pix)
	opts := &ebiten.DrawImageOptions{Filter: g.filter}
	p.screen.DrawImage(g.fbImg, opts)
	return nil
}

func (p *presenter) ShowMouse(shown bool) {
	mode := ebiten.CursorModeHidden
	if shown {
		mode = ebiten.CursorModeVisible
	}
	ebiten.SetCursorMode(mode)
}

func (p *presenter) SetMouseCursor(cursor pixels.Cursor) {
	ebiten.SetCursorShape(mapCursor(cursor))
}

func (p *presenter) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (p *presenter) SetFilterMode(mode pixels.FilterMode) {
	if mode == pixels.FilterLinear {
		p.game.filter = ebiten.FilterLinear
	} else {
		p.game.filter = ebiten.FilterNearest
	}
}

func (p *presenter) ScreenSize() (w, h float64) {
	return float64(p.game.layoutW), float64(p.game.layoutH)
}

func (p *presenter) DPIScale() float64 {
	if !p.game.cfg.HighDPI {
		return 1
	}
	return ebiten.Monitor().DeviceScaleFactor()
}

func (p *presenter) Quit() {
	p.game.quit = true
}

// iconImages expands an icon into the image list ebiten expects,
// largest first so the platform picks the best fit.
func iconImages(icon *pixels.Icon) []image.Image {
	sizes := []struct {
		side int
		data []uint8
	}{
		{pixels.IconSizeLarge, icon.LargeBytes()},
		{pixels.IconSizeMedium, icon.MediumBytes()},
		{pixels.IconSizeSmall, icon.SmallBytes()},
	}
	imgs := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		img := image.NewNRGBA(image.Rect(0, 0, s.side, s.side))
		copy(img.Pix, s.data)
		imgs = append(imgs, img)
	}
	return imgs
}

func pollMods() pixels.Modifiers {
	return pixels.Modifiers{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

// Package pixels provides a minimal CPU framebuffer on top of the GoGPU
// ecosystem: draw raw RGBA pixels into a logical buffer, poll edge-aware
// keyboard and mouse state, and have the buffer uploaded to the GPU and
// presented as a single textured quad once per frame.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixels"
//	    _ "github.com/gogpu/pixels/backend/gogpu" // desktop window host
//	)
//
//	type game struct{}
//
//	func (g *game) Update(ctx *pixels.Context) {
//	    if ctx.IsKeyPressed(pixels.KeyEscape) {
//	        ctx.Quit()
//	    }
//	}
//
//	func (g *game) Draw(ctx *pixels.Context) {
//	    ctx.Clear()
//	    ctx.FillRect(10, 10, 64, 64, pixels.RGB(255, 0, 0))
//	}
//
//	func main() {
//	    cfg := pixels.DefaultConfig().WithTitle("demo").WithSize(320, 240)
//	    if err := pixels.Run(cfg, &game{}); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Model
//
// The library is deliberately small. There are two cooperating pieces,
// both owned by the frame driver and both single-threaded:
//
//   - Surface: a row-major RGBA8 pixel array with bounds-clipped write
//     operations (single pixel, filled rectangle, sub-image blit, whole
//     buffer replace). Drawing off-screen is silently clipped, never an
//     error.
//   - Input: a three-state automaton per key and mouse button
//     (Pressed -> Down -> gone on release). Each transient edge is
//     observable for exactly one Update call, regardless of how many
//     native events arrived within the frame.
//
// Every frame the host calls Update, advances the input automaton, calls
// Draw, then uploads the surface bytes and presents one textured quad.
// The *Context passed to both callbacks is a per-frame borrow: do not
// retain it, the Surface, or any pixel slice across frames.
//
// # Hosts
//
// Window creation and GPU presentation are pluggable backends registered
// by blank import, selected by priority or explicitly via
// Config.WithBackend:
//
//   - backend/gogpu: desktop window via github.com/gogpu/gogpu.
//   - backend/ebiten: desktop window via github.com/hajimehoshi/ebiten.
//   - backend/native: offscreen wgpu/hal presentation, used for tests.
//   - backend/headless: no GPU at all, fixed-step loop for CI.
//
// # Logging
//
// pixels produces no log output by default. Call SetLogger to enable it.
package pixels

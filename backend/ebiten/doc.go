// Package ebiten provides a window host for pixels built on Ebitengine.
//
// Import it for its side effects to register the "ebiten" host:
//
//	import _ "github.com/gogpu/pixels/backend/ebiten"
//
// The host runs an ebiten.Game loop, polls input edges with inpututil
// each tick, and presents the pixel buffer through an ebiten.Image.
package ebiten

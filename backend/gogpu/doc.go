// Package gogpu provides the desktop window host for pixels using the
// github.com/gogpu/gogpu framework.
//
// Import it for its side effects to register the "gogpu" host:
//
//	import _ "github.com/gogpu/pixels/backend/gogpu"
//
// The host runs a gogpu.App event loop, forwards gpucontext input
// events into the pixels frame driver, and presents the pixel buffer by
// uploading it to a gpucontext texture drawn once per frame.
package gogpu

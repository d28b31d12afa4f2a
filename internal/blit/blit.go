// Package blit renders a CPU pixel buffer to a GPU texture as a
// full-screen quad using wgpu/hal. It backs the native host: each frame
// is uploaded with WriteTexture, drawn into an offscreen render target,
// and optionally read back for verification or encoding.
package blit

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Renderer owns a GPU device and a textured-quad pipeline. It is not
// safe for concurrent use.
type Renderer struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler
	vertBuf    hal.Buffer

	srcTex    hal.Texture
	srcView   hal.TextureView
	targetTex hal.Texture
	tgtView   hal.TextureView

	width  int
	height int
	linear bool
}

// NewRenderer opens a GPU device and builds the quad pipeline.
// Prefers a discrete or integrated adapter when several are exposed.
func NewRenderer() (*Renderer, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("blit: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("blit: create instance: %w", err)
	}

	r := &Renderer{instance: instance}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		r.Close()
		return nil, fmt.Errorf("blit: no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("blit: open device: %w", err)
	}
	r.device = openDev.Device
	r.queue = openDev.Queue

	if err := r.createPipeline(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) createPipeline() error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "blit_quad",
		Source: hal.ShaderSource{WGSL: quadShaderSource},
	})
	if err != nil {
		return fmt.Errorf("blit: compile quad shader: %w", err)
	}
	r.shader = shader

	// Binding 0: pixel buffer texture, binding 1: sampler.
	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "blit_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("blit: create bind layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "blit_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("blit: create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	// Nearest filtering by default: the quad maps texels 1:1, any
	// interpolation would smear pixel art. SetLinearFilter can switch
	// to linear for smooth upscaling.
	sampler, err := r.makeSampler(false)
	if err != nil {
		return err
	}
	r.sampler = sampler

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "blit_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: 16,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					Blend:     nil,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("blit: create pipeline: %w", err)
	}
	r.pipeline = pipeline

	vertData := make([]byte, len(quadVertices)*4)
	for i, f := range quadVertices {
		binary.LittleEndian.PutUint32(vertData[i*4:], math.Float32bits(f))
	}
	vertBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_quad_verts",
		Size:  uint64(len(vertData)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("blit: create vertex buffer: %w", err)
	}
	r.queue.WriteBuffer(vertBuf, 0, vertData)
	r.vertBuf = vertBuf

	return nil
}

func (r *Renderer) makeSampler(linear bool) (hal.Sampler, error) {
	filter := gputypes.FilterModeNearest
	if linear {
		filter = gputypes.FilterModeLinear
	}
	sampler, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "blit_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return nil, fmt.Errorf("blit: create sampler: %w", err)
	}
	return sampler, nil
}

// SetLinearFilter switches the quad sampler between nearest and linear
// filtering. The change takes effect on the next Blit; Blit always
// waits for the GPU, so the old sampler is free to destroy here.
func (r *Renderer) SetLinearFilter(linear bool) error {
	if linear == r.linear {
		return nil
	}
	sampler, err := r.makeSampler(linear)
	if err != nil {
		return err
	}
	if r.sampler != nil {
		r.device.DestroySampler(r.sampler)
	}
	r.sampler = sampler
	r.linear = linear
	return nil
}

// Resize (re)creates the source and target textures for the given
// pixel buffer dimensions. It is called lazily by Blit.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("blit: invalid dimensions %dx%d", width, height)
	}
	if width == r.width && height == r.height {
		return nil
	}
	r.destroyTextures()

	w, h := uint32(width), uint32(height)

	srcTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_src",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("blit: create source texture: %w", err)
	}
	r.srcTex = srcTex

	srcView, err := r.device.CreateTextureView(srcTex, &hal.TextureViewDescriptor{
		Label:         "blit_src_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("blit: create source view: %w", err)
	}
	r.srcView = srcView

	targetTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("blit: create target texture: %w", err)
	}
	r.targetTex = targetTex

	tgtView, err := r.device.CreateTextureView(targetTex, &hal.TextureViewDescriptor{
		Label:         "blit_target_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("blit: create target view: %w", err)
	}
	r.tgtView = tgtView

	r.width, r.height = width, height
	return nil
}

// Blit uploads pix and draws the quad into the offscreen target.
// len(pix) must be width*height*4 RGBA bytes.
func (r *Renderer) Blit(pix []byte, width, height int) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("blit: got %d bytes for %dx%d", len(pix), width, height)
	}
	if err := r.Resize(width, height); err != nil {
		return err
	}

	w, h := uint32(width), uint32(height)
	r.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: r.srcTex, MipLevel: 0},
		pix,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "blit_bind",
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: r.srcView.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: r.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("blit: create bind group: %w", err)
	}
	defer r.device.DestroyBindGroup(bindGroup)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_encoder",
	})
	if err != nil {
		return fmt.Errorf("blit: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit"); err != nil {
		return fmt.Errorf("blit: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blit_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       r.tgtView,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})
	rp.SetPipeline(r.pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, r.vertBuf, 0)
	rp.Draw(uint32(len(quadVertices)/4), 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("blit: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("blit: create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("blit: submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("blit: wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// Readback copies the rendered target texture into a new byte slice.
// It must follow a successful Blit.
func (r *Renderer) Readback() ([]byte, error) {
	if r.targetTex == nil {
		return nil, fmt.Errorf("blit: nothing rendered yet")
	}
	w, h := uint32(r.width), uint32(r.height)
	size := uint64(w) * uint64(h) * 4

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_staging",
		Size:  size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("blit: create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("blit: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit_readback"); err != nil {
		return nil, fmt.Errorf("blit: begin encoding: %w", err)
	}

	// The render pass leaves the target in attachment layout;
	// CopyTextureToBuffer needs transfer-src. No-op off Vulkan.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	encoder.CopyTextureToBuffer(r.targetTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.targetTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("blit: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("blit: create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("blit: submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("blit: wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, size)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("blit: readback: %w", err)
	}
	return readback, nil
}

// Size returns the current texture dimensions, zero before the first Blit.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

func (r *Renderer) destroyTextures() {
	if r.tgtView != nil {
		r.device.DestroyTextureView(r.tgtView)
		r.tgtView = nil
	}
	if r.targetTex != nil {
		r.device.DestroyTexture(r.targetTex)
		r.targetTex = nil
	}
	if r.srcView != nil {
		r.device.DestroyTextureView(r.srcView)
		r.srcView = nil
	}
	if r.srcTex != nil {
		r.device.DestroyTexture(r.srcTex)
		r.srcTex = nil
	}
	r.width, r.height = 0, 0
}

// Close releases all GPU resources. Safe to call multiple times.
func (r *Renderer) Close() {
	if r.device != nil {
		r.destroyTextures()
		if r.vertBuf != nil {
			r.device.DestroyBuffer(r.vertBuf)
			r.vertBuf = nil
		}
		if r.pipeline != nil {
			r.device.DestroyRenderPipeline(r.pipeline)
			r.pipeline = nil
		}
		if r.sampler != nil {
			r.device.DestroySampler(r.sampler)
			r.sampler = nil
		}
		if r.pipeLayout != nil {
			r.device.DestroyPipelineLayout(r.pipeLayout)
			r.pipeLayout = nil
		}
		if r.bindLayout != nil {
			r.device.DestroyBindGroupLayout(r.bindLayout)
			r.bindLayout = nil
		}
		if r.shader != nil {
			r.device.DestroyShaderModule(r.shader)
			r.shader = nil
		}
		r.device.Destroy()
		r.device = nil
	}
	if r.instance != nil {
		r.instance.Destroy()
		r.instance = nil
	}
	r.queue = nil
}

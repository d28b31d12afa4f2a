package blit

// quadShaderSource draws a full-screen textured quad. The vertex buffer
// carries clip-space position and texture coordinates; the fragment
// stage samples the pixel buffer texture with nearest filtering so the
// output is an exact copy.
const quadShaderSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(pos, 0.0, 1.0);
    out.uv = uv;
    return out;
}

@group(0) @binding(0) var src_tex: texture_2d<f32>;
@group(0) @binding(1) var src_samp: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(src_tex, src_samp, in.uv);
}
`

// quadVertices is two triangles covering clip space, with V flipped so
// row 0 of the pixel buffer lands at the top of the target.
var quadVertices = []float32{
	// x, y, u, v
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,

	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

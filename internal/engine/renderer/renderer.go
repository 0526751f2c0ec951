// Package renderer draws meshes with OpenGL and keeps their GPU buffers in
// step with the CPU copies.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/lighting"
	"github.com/Faultbox/wavemesh/internal/engine/shader"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/mesh"
	"github.com/Faultbox/wavemesh/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  []*gpuMesh
}

type gpuMesh struct {
	src   *mesh.Mesh
	color [3]float32

	vao, positionVBO, normalVBO, ebo uint32
	indexCount                       int32
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shader.MeshVertex, shader.MeshFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh program: %w", err)
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = nil
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the GL viewport. Mesh buffers are not touched.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// AddMesh uploads m and draws it every frame with a flat color.
func (r *Renderer) AddMesh(m *mesh.Mesh, color [3]float32) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload %q: %w", m.Name, err)
	}
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("upload %q: %w: empty mesh", m.Name, mesh.ErrMalformed)
	}
	g := &gpuMesh{src: m, color: color, indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.positionVBO = arrayBuffer(m.Positions, 0)
	g.normalVBO = arrayBuffer(m.Normals, 1)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// The initial upload covers whatever was pending.
	m.TakeDirty()
	r.meshes = append(r.meshes, g)

	logger.Debug("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", g.indexCount),
	)
	return nil
}

// Sync re-uploads the buffers of every mesh flagged dirty since the last call.
func (r *Renderer) Sync() {
	for _, g := range r.meshes {
		positions, normals := g.src.TakeDirty()
		if positions {
			subData(g.positionVBO, g.src.Positions)
		}
		if normals {
			subData(g.normalVBO, g.src.Normals)
		}
	}
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every mesh from the given view-projection under rig.
func (r *Renderer) Draw(viewProj math.Mat4, rig lighting.Rig) {
	p := r.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())

	ambient := rig.Ambient.Color
	for i := range ambient {
		ambient[i] *= rig.Ambient.Intensity
	}
	sun := rig.Sun.Color
	for i := range sun {
		sun[i] *= rig.Sun.Intensity
	}
	dir := rig.Sun.Direction
	gl.Uniform3f(p.Uniform("uAmbient"), ambient[0], ambient[1], ambient[2])
	gl.Uniform3f(p.Uniform("uLightColor"), sun[0], sun[1], sun[2])
	gl.Uniform3f(p.Uniform("uLightDir"), dir.X, dir.Y, dir.Z)

	for _, g := range r.meshes {
		model := g.src.Transform
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.Uniform3f(p.Uniform("uColor"), g.color[0], g.color[1], g.color[2])
		gl.BindVertexArray(g.vao)
		gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {}

// ReadPixels reads the back buffer as bottom-up RGBA bytes.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

func (g *gpuMesh) release() {
	buffers := []uint32{g.positionVBO, g.normalVBO, g.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &g.vao)
}

// arrayBuffer creates a dynamic vec3 VBO bound to attribute location loc.
func arrayBuffer(data []float32, loc uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

func subData(vbo uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, unsafe.Pointer(&data[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

package rendering

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/log"
	"github.com/fosdem/glsample/lib/rendering/shaders"
	"github.com/fosdem/glsample/lib/scene"
	"github.com/fosdem/glsample/lib/stats"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Swapper presents a finished frame.
type Swapper interface {
	SwapBuffers()
}

// Renderer draws the triangle. Unless caching is enabled the shader
// program and the vertex buffers are built from scratch on every frame.
type Renderer struct {
	cfg        *config.Config
	scene      *scene.Scene
	stats      *stats.Stats
	shaderer   *shaders.Shaderer
	shaderData shaders.ShaderData
	camera     Camera
	width      int
	height     int

	Program uint32
	Mesh    *Mesh

	log *slog.Logger
}

func NewRenderer(cfg *config.Config, sc *scene.Scene, st *stats.Stats, shaderer *shaders.Shaderer) *Renderer {
	return &Renderer{
		cfg:      cfg,
		scene:    sc,
		stats:    st,
		shaderer: shaderer,
		shaderData: shaders.ShaderData{
			GLSLVersion: shaders.GLSLVersionFor(cfg.Window.GLMajor, cfg.Window.GLMinor),
			ApplyCamera: cfg.Camera.Apply,
		},
		log: log.Module("rendering"),
	}
}

// Load sets up the viewport and camera for a framebuffer of the given size
// and draws the first frame.
func (r *Renderer) Load(width, height int, swapper Swapper) error {
	r.Resize(width, height)
	return r.Render(swapper)
}

func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimised
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera = NewCamera(&r.cfg.Camera, width, height)
	if r.Program != 0 {
		gl.UseProgram(r.Program)
		r.camera.Upload(r.Program)
	}
	r.log.Debug(fmt.Sprintf("viewport set to %dx%d", width, height))
}

func (r *Renderer) Camera() Camera {
	return r.camera
}

// Render clears the frame, makes sure a program and vertex array are
// ready, draws and presents.
func (r *Renderer) Render(swapper Swapper) error {
	c := r.scene.ClearColour()
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	err := r.EnableShaders()
	if err != nil {
		return err
	}

	r.Mesh.Draw()
	r.scene.ServeCaptures(r.ReadFrame)

	swapper.SwapBuffers()
	return nil
}

// ReadFrame copies the back buffer into an image, top row first.
func (r *Renderer) ReadFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.width == 0 || r.height == 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL's origin is the bottom left corner
	row := make([]byte, img.Stride)
	for top, bottom := 0, r.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bottom*img.Stride : (bottom+1)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
	return img
}

// EnableShaders builds the program and vertex array when needed and makes
// them current.
func (r *Renderer) EnableShaders() error {
	rebuild := r.scene.TakeRebuild()
	if r.cfg.Render.Cache && r.Program != 0 && !rebuild {
		gl.UseProgram(r.Program)
		return nil
	}

	program, mesh, err := r.build()
	if err != nil {
		if r.cfg.Render.Cache && r.Program != 0 {
			r.log.Error("rebuild failed, keeping the previous program", "err", err)
			gl.UseProgram(r.Program)
			return nil
		}
		return err
	}

	r.Release()
	r.Program = program
	r.Mesh = mesh

	gl.UseProgram(r.Program)
	r.camera.Upload(r.Program)

	if r.stats != nil {
		r.stats.ProgramBuilt()
	}
	if r.cfg.Render.Cache {
		r.log.Info("shader program built", "program", program)
		r.scene.ProgramBuilt(program, true)
	}
	return nil
}

func (r *Renderer) build() (uint32, *Mesh, error) {
	program, err := shaders.BuildGLProgram(r.shaderer, &r.shaderData)
	if err != nil {
		return 0, nil, err
	}

	mesh, err := NewMesh(r.cfg.Triangle.Positions, r.cfg.Triangle.Colours)
	if err != nil {
		gl.DeleteProgram(program)
		return 0, nil, fmt.Errorf("could not build vertex array: %w", err)
	}
	return program, mesh, nil
}

// Release frees the current program and vertex array, if any.
func (r *Renderer) Release() {
	if r.Mesh != nil {
		r.Mesh.Delete()
		r.Mesh = nil
	}
	if r.Program != 0 {
		gl.DeleteProgram(r.Program)
		r.Program = 0
	}
}

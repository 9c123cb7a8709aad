package rendering

import (
	"github.com/fosdem/glsample/lib/config"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
}

func NewCamera(cfg *config.CameraCfg, width, height int) Camera {
	aspect := float32(width) / float32(height)
	return Camera{
		Projection: mgl32.Perspective(mgl32.DegToRad(cfg.FovDegrees), aspect, cfg.Near, cfg.Far),
		ModelView: mgl32.LookAtV(
			vec3(cfg.Eye),
			vec3(cfg.Centre),
			vec3(cfg.Up),
		),
	}
}

func vec3(v []float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// Upload sets the projection and modelview uniforms on program. Uniforms
// the program does not use are skipped.
func (c *Camera) Upload(program uint32) {
	if loc := gl.GetUniformLocation(program, gl.Str("projection\x00")); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &c.Projection[0])
	}
	if loc := gl.GetUniformLocation(program, gl.Str("modelview\x00")); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &c.ModelView[0])
	}
}

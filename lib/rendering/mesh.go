package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const f32 = 4

// Attribute locations, matching the layout qualifiers in basic.vert.
const (
	PositionAttrib = 0
	ColourAttrib   = 1
)

const componentsPerVertex = 3

// Mesh is a vertex array with one buffer per attribute.
type Mesh struct {
	VAO         uint32
	VBOs        [2]uint32
	NumVertices int32
}

// ValidateVertices checks that positions and colours describe the same
// whole number of xyz/rgb vertices.
func ValidateVertices(positions, colours []float32) (int32, error) {
	if len(positions) == 0 {
		return 0, fmt.Errorf("no vertices")
	}
	if len(positions)%componentsPerVertex != 0 {
		return 0, fmt.Errorf("%d position floats is not a whole number of vertices", len(positions))
	}
	if len(colours) != len(positions) {
		return 0, fmt.Errorf("vertex count mismatch: %d colour floats for %d position floats", len(colours), len(positions))
	}
	return int32(len(positions) / componentsPerVertex), nil
}

// NewMesh uploads the vertex data and configures a fresh vertex array.
func NewMesh(positions, colours []float32) (*Mesh, error) {
	n, err := ValidateVertices(positions, colours)
	if err != nil {
		return nil, err
	}
	m := &Mesh{NumVertices: n}

	gl.GenBuffers(2, &m.VBOs[0])
	uploadBuffer(m.VBOs[PositionAttrib], positions)
	uploadBuffer(m.VBOs[ColourAttrib], colours)

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.EnableVertexAttribArray(PositionAttrib)
	gl.EnableVertexAttribArray(ColourAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBOs[PositionAttrib])
	gl.VertexAttribPointerWithOffset(PositionAttrib, componentsPerVertex, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBOs[ColourAttrib])
	gl.VertexAttribPointerWithOffset(ColourAttrib, componentsPerVertex, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

func uploadBuffer(id uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.NumVertices)
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(2, &m.VBOs[0])
	m.VAO = 0
	m.VBOs = [2]uint32{}
}

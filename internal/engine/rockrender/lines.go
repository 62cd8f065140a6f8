package rockrender

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/rockgen/internal/engine/shader"
	"github.com/Faultbox/rockgen/pkg/math"
)

// Lines is a dynamic GL_LINES batch of xyz positions, used for debug overlays.
type Lines struct {
	vao   uint32
	vbo   uint32
	count int32
	Color [3]float32
}

func newLines(c [3]float32) *Lines {
	l := &Lines{Color: c}
	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return l
}

// Set replaces the line vertices, two points per segment.
func (l *Lines) Set(positions []float32) {
	l.count = int32(len(positions) / 3)
	if l.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (l *Lines) draw(p *shader.Program, viewProj math.Mat4) {
	if l.count == 0 {
		return
	}
	p.SetMat4("uViewProj", viewProj)
	p.SetColor("uColor", l.Color)
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.count)
	gl.BindVertexArray(0)
}

func (l *Lines) release() {
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
		l.vao = 0
	}
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
		l.vbo = 0
	}
	l.count = 0
}

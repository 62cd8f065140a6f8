// Package rockrender draws generated rocks with OpenGL.
package rockrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/rockgen/internal/config"
	"github.com/Faultbox/rockgen/internal/engine/lighting"
	"github.com/Faultbox/rockgen/internal/engine/shader"
	"github.com/Faultbox/rockgen/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Material   config.MaterialConfig
	Wireframe  bool
	Background [3]float32
}

// View is the camera state for one frame.
type View struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
}

// Renderer owns the rock program, the uploaded mesh and the debug overlays.
type Renderer struct {
	config Config
	log    *zap.Logger

	program     *shader.Program
	lineProgram *shader.Program

	mesh     *Mesh
	material *Material
	sun      lighting.Sun

	// Overlays are drawn after the rock when enabled.
	Bounds      *Lines
	Normals     *Lines
	Grid        *Lines
	ShowBounds  bool
	ShowNormals bool
	ShowGrid    bool
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config: cfg,
		log:    log,
		sun:    lighting.DefaultSun(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1)

	var err error
	if r.program, err = shader.New(rockVertexShader, rockFragmentShader); err != nil {
		return nil, fmt.Errorf("rock shader: %w", err)
	}
	if r.lineProgram, err = shader.New(lineVertexShader, lineFragmentShader); err != nil {
		r.program.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}
	if r.material, err = NewMaterial(cfg.Material); err != nil {
		r.program.Delete()
		r.lineProgram.Delete()
		return nil, fmt.Errorf("material: %w", err)
	}

	r.mesh = NewMesh(log)
	r.Bounds = newLines([3]float32{1, 0.8, 0.2})
	r.Normals = newLines([3]float32{0.3, 0.6, 1})
	r.Grid = newLines([3]float32{0.35, 0.35, 0.4})
	r.ShowGrid = true

	r.Resize(cfg.Width, cfg.Height)
	log.Debug("renderer ready", zap.Uint32("program", r.program.ID()))
	return r, nil
}

// Mesh returns the GPU mesh, which is the rock.Uploader for a Generator.
func (r *Renderer) Mesh() *Mesh {
	return r.mesh
}

// SetMaterial replaces the material, releasing the old textures. The old
// material is kept if the new one cannot be loaded.
func (r *Renderer) SetMaterial(cfg config.MaterialConfig) error {
	m, err := NewMaterial(cfg)
	if err != nil {
		return err
	}
	old := r.material
	r.material = m
	r.config.Material = cfg
	return old.Release()
}

// SetSun replaces the directional light.
func (r *Renderer) SetSun(s lighting.Sun) {
	r.sun = s
}

// Wireframe reports whether polygons are drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.config.Wireframe
}

// SetWireframe switches polygon mode.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the current framebuffer.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the rock and the enabled overlays.
func (r *Renderer) Draw(v View) {
	if r.mesh.Loaded() {
		r.drawRock(v)
	}

	viewProj := v.Projection.Mul(v.View)
	r.lineProgram.Use()
	if r.ShowGrid {
		r.Grid.draw(r.lineProgram, viewProj)
	}
	if r.ShowBounds {
		r.Bounds.draw(r.lineProgram, viewProj)
	}
	if r.ShowNormals {
		r.Normals.draw(r.lineProgram, viewProj)
	}
}

func (r *Renderer) drawRock(v View) {
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if r.material.Translucent() {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		defer gl.Disable(gl.BLEND)
	}

	p := r.program
	p.Use()
	p.SetMat4("uModel", math.Identity())
	p.SetMat4("uView", v.View)
	p.SetMat4("uProjection", v.Projection)
	p.SetVec3("uCameraPos", v.Eye)
	p.SetVec3("uLightDir", r.sun.Direction())
	p.SetColor("uLightColor", r.sun.Radiance())
	r.material.Bind(p)

	r.mesh.Draw()
}

// Close releases every GL resource and reports all failures.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")
	var err error
	err = multierr.Append(err, r.mesh.Release())
	err = multierr.Append(err, r.material.Release())
	for _, l := range []*Lines{r.Bounds, r.Normals, r.Grid} {
		l.release()
	}
	r.program.Delete()
	r.lineProgram.Delete()
	return err
}

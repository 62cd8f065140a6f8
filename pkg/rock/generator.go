package rock

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Uploader receives finished mesh buffers, typically to create GPU buffers.
// Release drops whatever the previous Upload created and must be safe to call
// when nothing is held.
type Uploader interface {
	Upload(vertices []Vertex, indices []uint32) error
	Release() error
}

// Build runs the full generation pipeline for cfg and returns the mesh with its
// statistics. cfg is validated first; on error nothing is built.
func Build(cfg GenerationConfig) (*Mesh, Stats, error) {
	return build(cfg, zap.NewNop())
}

func build(cfg GenerationConfig, log *zap.Logger) (*Mesh, Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}

	unit, triangles := BuildIcosphere(cfg.Steps)
	log.Debug("icosphere built", zap.Int("steps", cfg.Steps), zap.Int("vertices", len(unit)), zap.Int("triangles", len(triangles)))

	vertices, poles := MapEllipsoid(unit, cfg.Radii())
	m := &Mesh{Vertices: vertices, Indices: flattenTriangles(triangles)}
	log.Debug("ellipsoid mapped", zap.Int("poleVertices", poles.Len()))

	rng := NewRandSource(cfg.Seed)
	planes := Facet(m, cfg, cfg.Planes, rng)
	log.Debug("faceted", zap.Int("planes", len(planes)), zap.Int64("seed", cfg.Seed))

	Expand(m, cfg.AverageRadius())
	BuildNormals(m)
	uv := CorrectUV(m, poles)
	log.Debug("uv corrected", zap.Int("seamDuplicates", uv.SeamDuplicates), zap.Int("poleDuplicates", uv.PoleDuplicates))
	BuildTangents(m)

	stats := MeasureMesh(m)
	stats.BaseVertices = len(unit)
	stats.SeamDuplicates = uv.SeamDuplicates
	stats.PoleDuplicates = uv.PoleDuplicates
	stats.Planes = cfg.Planes
	return m, stats, nil
}

// Generate builds a rock for cfg and returns its vertex and index buffers.
func Generate(cfg GenerationConfig) ([]Vertex, []uint32, error) {
	m, _, err := Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	return m.Vertices, m.Indices, nil
}

// Generator owns one rock and rebuilds it on demand.
// It is not safe for concurrent use.
type Generator struct {
	cfg      GenerationConfig
	log      *zap.Logger
	uploader Uploader

	mesh  *Mesh
	stats Stats
	dirty bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for build reports.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithUploader sets the collaborator that receives finished buffers.
func WithUploader(u Uploader) Option {
	return func(g *Generator) {
		g.uploader = u
	}
}

// NewGenerator returns a dirty generator for cfg. The config is checked on the
// first Generate.
func NewGenerator(cfg GenerationConfig, opts ...Option) *Generator {
	g := &Generator{
		cfg:   cfg,
		log:   zap.NewNop(),
		dirty: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset marks the rock for rebuild on the next Generate.
func (g *Generator) Reset() {
	g.dirty = true
}

// Dirty reports whether the next Generate will rebuild.
func (g *Generator) Dirty() bool {
	return g.dirty
}

// Config returns the active generation config.
func (g *Generator) Config() GenerationConfig {
	return g.cfg
}

// SetConfig replaces the generation config and marks the rock dirty.
func (g *Generator) SetConfig(cfg GenerationConfig) {
	g.cfg = cfg
	g.dirty = true
}

// Reseed sets a new seed and marks the rock dirty.
func (g *Generator) Reseed(seed int64) {
	g.cfg.Seed = seed
	g.dirty = true
}

// Mesh returns the last successfully built mesh, or nil.
func (g *Generator) Mesh() *Mesh {
	return g.mesh
}

// Stats returns statistics for the last successfully built mesh.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Generate rebuilds the rock if it is dirty and returns the current buffers.
// When clean it returns the existing buffers without doing any work.
//
// On failure the previous mesh is kept and the generator stays dirty. Upload
// failures wrap ErrUpload.
func (g *Generator) Generate() ([]Vertex, []uint32, error) {
	if !g.dirty && g.mesh != nil {
		return g.mesh.Vertices, g.mesh.Indices, nil
	}

	start := time.Now()
	m, stats, err := build(g.cfg, g.log)
	if err != nil {
		g.log.Warn("rock generation rejected", zap.Error(err))
		return nil, nil, err
	}

	if g.uploader != nil {
		if err := g.uploader.Release(); err != nil {
			return nil, nil, fmt.Errorf("%w: release previous buffers: %v", ErrUpload, err)
		}
		if err := g.uploader.Upload(m.Vertices, m.Indices); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
	}

	g.mesh = m
	g.stats = stats
	g.dirty = false

	g.log.Info("rock generated",
		zap.Int64("seed", g.cfg.Seed),
		zap.Int("steps", g.cfg.Steps),
		zap.Int("planes", g.cfg.Planes),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int("seamDuplicates", stats.SeamDuplicates),
		zap.Int("poleDuplicates", stats.PoleDuplicates),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m.Vertices, m.Indices, nil
}

// Package scene owns the active point-field drawable and turns parameter,
// resize and tick events into replacements of that drawable.
package scene

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starfield/field"
)

// State is the regeneration state of a scene.
type State uint8

const (
	Idle State = iota
	Regenerating
)

func (s State) String() string {
	if s == Regenerating {
		return "regenerating"
	}
	return "idle"
}

// Disposer releases renderer-side resources of a drawable before it is removed.
type Disposer interface {
	Dispose(p *Points, m *Material)
}

// Viewport is the current output size in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width / height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Scene holds at most one active drawable on an ECS world.
type Scene struct {
	world    *ecs.World
	drawMap  *ecs.Map2[Points, Material]
	pointMap *ecs.Map1[Points]
	filter   *ecs.Filter2[Points, Material]

	active    ecs.Entity
	hasActive bool
	state     State

	disposers []Disposer
	disposed  int

	viewport Viewport
	elapsed  float64
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:    world,
		drawMap:  ecs.NewMap2[Points, Material](world),
		pointMap: ecs.NewMap1[Points](world),
		filter:   ecs.NewFilter2[Points, Material](world),
	}
}

// AddDisposer registers a hook called for every drawable that is replaced or cleared.
func (s *Scene) AddDisposer(d Disposer) {
	s.disposers = append(s.disposers, d)
}

// Replace detaches and disposes the current drawable, if any, and attaches f
// as the new one. The returned id identifies the new generation.
func (s *Scene) Replace(kind Kind, f *field.PointField, mat Material) uuid.UUID {
	s.state = Regenerating
	defer func() { s.state = Idle }()

	s.release()

	pts := Points{Field: f, Generation: uuid.New(), Kind: kind}
	s.active = s.drawMap.NewEntity(&pts, &mat)
	s.hasActive = true

	slog.Debug("attached point field",
		"kind", kind.String(),
		"generation", pts.Generation.String(),
		"points", f.Len(),
	)
	return pts.Generation
}

// Clear disposes the current drawable and leaves the scene empty.
func (s *Scene) Clear() {
	s.release()
}

func (s *Scene) release() {
	if !s.hasActive {
		return
	}
	if s.world.Alive(s.active) {
		pts, mat := s.drawMap.Get(s.active)
		for _, d := range s.disposers {
			d.Dispose(pts, mat)
		}
		s.world.RemoveEntity(s.active)
		s.disposed++
	}
	s.hasActive = false
}

// Active returns the current drawable's components.
func (s *Scene) Active() (*Points, *Material, bool) {
	if !s.hasActive || !s.world.Alive(s.active) {
		return nil, nil, false
	}
	pts, mat := s.drawMap.Get(s.active)
	return pts, mat, true
}

// ActiveField returns the current point field, or nil.
func (s *Scene) ActiveField() *field.PointField {
	if !s.hasActive || !s.world.Alive(s.active) {
		return nil
	}
	return s.pointMap.Get(s.active).Field
}

// Drawables counts the drawable entities on the world.
func (s *Scene) Drawables() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn for every drawable.
func (s *Scene) Each(fn func(p *Points, m *Material)) {
	query := s.filter.Query()
	for query.Next() {
		pts, mat := query.Get()
		fn(pts, mat)
	}
}

// State returns the regeneration state.
func (s *Scene) State() State { return s.state }

// Disposed returns how many drawables have been released so far.
func (s *Scene) Disposed() int { return s.disposed }

// Viewport returns the last known output size.
func (s *Scene) Viewport() Viewport { return s.viewport }

// Elapsed returns the time of the last tick in seconds.
func (s *Scene) Elapsed() float64 { return s.elapsed }

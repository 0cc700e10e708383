package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/starfield/field"
)

// recordingDisposer remembers every generation it released and the scene
// state at the time.
type recordingDisposer struct {
	scene    *Scene
	released []uuid.UUID
	states   []State
}

func (d *recordingDisposer) Dispose(p *Points, _ *Material) {
	d.released = append(d.released, p.Generation)
	d.states = append(d.states, d.scene.State())
}

func newGalaxy(t *testing.T, count int) (*Galaxy, *recordingDisposer) {
	t.Helper()
	s := New()
	d := &recordingDisposer{scene: s}
	s.AddDisposer(d)

	p := field.DefaultGalaxyParams()
	p.Count = count
	g, err := NewGalaxy(s, p, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return g, d
}

func TestGalaxyInitialField(t *testing.T) {
	g, d := newGalaxy(t, 1000)
	s := g.Scene()

	assert.Equal(t, 1, s.Drawables())
	assert.Equal(t, 1000, s.ActiveField().Len())
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, d.released)

	pts, mat, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, KindGalaxy, pts.Kind)
	assert.Equal(t, float32(0.01), mat.Size)
	assert.True(t, mat.Additive)
	assert.False(t, mat.DepthWrite)
}

func TestGalaxyRegenerateDisposesPrevious(t *testing.T) {
	g, d := newGalaxy(t, 1000)
	s := g.Scene()

	first, _, ok := s.Active()
	require.True(t, ok)
	firstGen := first.Generation

	p := g.Params()
	p.Count = 2500
	require.NoError(t, g.Dispatch(GalaxyChanged{Params: p}))

	assert.Equal(t, 1, s.Drawables())
	assert.Equal(t, 2500, s.ActiveField().Len())
	assert.Equal(t, 1, s.Disposed())
	require.Len(t, d.released, 1)
	assert.Equal(t, firstGen, d.released[0])
	assert.Equal(t, Regenerating, d.states[0])
	assert.Equal(t, Idle, s.State())

	second, _, _ := s.Active()
	assert.NotEqual(t, firstGen, second.Generation)
	assert.Equal(t, 2500, g.Params().Count)
}

func TestGalaxyRejectsInvalidKeepsPrevious(t *testing.T) {
	g, d := newGalaxy(t, 500)
	s := g.Scene()
	before := s.ActiveField()

	p := g.Params()
	p.Branches = 0
	err := g.Dispatch(GalaxyChanged{Params: p})
	assert.ErrorIs(t, err, field.ErrInvalidParams)

	assert.Same(t, before, s.ActiveField())
	assert.Equal(t, 1, s.Drawables())
	assert.Empty(t, d.released)
	assert.Equal(t, 7, g.Params().Branches)
	assert.Equal(t, Idle, s.State())
}

func TestNewGalaxyInvalid(t *testing.T) {
	s := New()
	p := field.DefaultGalaxyParams()
	p.Count = -1
	_, err := NewGalaxy(s, p, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, field.ErrInvalidParams)
	assert.Equal(t, 0, s.Drawables())
	assert.Nil(t, s.ActiveField())
}

func TestRepeatedRegenerationKeepsOneDrawable(t *testing.T) {
	g, d := newGalaxy(t, 100)
	s := g.Scene()

	for i := 1; i <= 10; i++ {
		p := g.Params()
		p.Count = 100 + i*10
		require.NoError(t, g.Dispatch(GalaxyChanged{Params: p}))
		assert.Equal(t, 1, s.Drawables())
	}
	assert.Len(t, d.released, 10)
	assert.Equal(t, 200, s.ActiveField().Len())
}

func TestResizeAndTick(t *testing.T) {
	g, _ := newGalaxy(t, 10)
	s := g.Scene()

	require.NoError(t, g.Dispatch(Resized{Width: 1600, Height: 800}))
	assert.Equal(t, Viewport{Width: 1600, Height: 800}, s.Viewport())
	assert.Equal(t, float32(2), s.Viewport().Aspect())

	require.NoError(t, g.Dispatch(Tick{Elapsed: 1.5}))
	assert.Equal(t, 1.5, s.Elapsed())

	// A galaxy tick never touches the field.
	assert.Equal(t, 0, s.Disposed())
}

func TestClear(t *testing.T) {
	g, d := newGalaxy(t, 10)
	s := g.Scene()

	s.Clear()
	assert.Equal(t, 0, s.Drawables())
	assert.Nil(t, s.ActiveField())
	assert.Len(t, d.released, 1)

	// Clearing an empty scene is a no-op.
	s.Clear()
	assert.Len(t, d.released, 1)
}

func TestViewportAspectEmpty(t *testing.T) {
	assert.Equal(t, float32(1), Viewport{}.Aspect())
}

func TestParticlesTickDisplaces(t *testing.T) {
	s := New()
	p, err := NewParticles(s, field.UniformParams{Count: 200, Extent: 4, Size: 0.1}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	before := s.ActiveField().Clone()
	require.NoError(t, p.Dispatch(Tick{Elapsed: 2}))

	f := s.ActiveField()
	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Position(i)
		bx, _, bz := before.Position(i)
		assert.Equal(t, bx, x)
		assert.Equal(t, bz, z)
		assert.InDelta(t, math.Sin(2+2*float64(x)), float64(y), 1e-6)
	}

	snapshot := append([]float32(nil), f.Positions...)
	require.NoError(t, p.Dispatch(Tick{Elapsed: 2}))
	assert.Equal(t, snapshot, f.Positions)
}

func TestParticlesChangedRegenerates(t *testing.T) {
	s := New()
	p, err := NewParticles(s, field.DefaultUniformParams(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.NoError(t, p.Dispatch(Tick{Elapsed: 4}))

	next := field.UniformParams{Count: 50, Extent: 2, Size: 0.2}
	require.NoError(t, p.Dispatch(ParticlesChanged{Params: next}))

	assert.Equal(t, 1, s.Drawables())
	assert.Equal(t, 1, s.Disposed())
	f := s.ActiveField()
	require.Equal(t, 50, f.Len())
	x, y, _ := f.Position(0)
	assert.InDelta(t, math.Sin(4+2*float64(x)), float64(y), 1e-6)

	_, mat, _ := s.Active()
	assert.Equal(t, float32(0.2), mat.Size)

	err = p.Dispatch(ParticlesChanged{Params: field.UniformParams{Count: -1}})
	assert.ErrorIs(t, err, field.ErrInvalidParams)
	assert.Same(t, f, s.ActiveField())
	assert.Equal(t, next, p.Params())
}

func TestControllersIgnoreForeignEvents(t *testing.T) {
	g, _ := newGalaxy(t, 10)
	require.NoError(t, g.Dispatch(ParticlesChanged{Params: field.UniformParams{Count: 5}}))
	assert.Equal(t, 10, g.Scene().ActiveField().Len())

	s := New()
	p, err := NewParticles(s, field.UniformParams{Count: 5, Extent: 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, p.Dispatch(GalaxyChanged{Params: field.DefaultGalaxyParams()}))
	assert.Equal(t, 5, s.ActiveField().Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "galaxy", KindGalaxy.String())
	assert.Equal(t, "particles", KindParticles.String())
	assert.Equal(t, "regenerating", Regenerating.String())
}

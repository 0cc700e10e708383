package scene

import "github.com/pthm-cable/starfield/field"

// Event is a message delivered to a controller between frames.
type Event interface {
	event()
}

// GalaxyChanged carries a new galaxy parameter snapshot.
type GalaxyChanged struct {
	Params field.GalaxyParams
}

// ParticlesChanged carries a new particle parameter snapshot.
type ParticlesChanged struct {
	Params field.UniformParams
}

// Resized reports a new viewport size in pixels.
type Resized struct {
	Width, Height int
}

// Tick reports the elapsed time in seconds since start.
type Tick struct {
	Elapsed float64
}

func (GalaxyChanged) event()    {}
func (ParticlesChanged) event() {}
func (Resized) event()          {}
func (Tick) event()             {}

// Controller reacts to events by updating its scene.
type Controller interface {
	Dispatch(ev Event) error
	Scene() *Scene
}

// resize and tick are shared by every controller.
func (s *Scene) resize(ev Resized) {
	s.viewport = Viewport{Width: ev.Width, Height: ev.Height}
}

func (s *Scene) tick(ev Tick) {
	s.elapsed = ev.Elapsed
}

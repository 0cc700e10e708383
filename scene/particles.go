package scene

import (
	"log/slog"

	"github.com/pthm-cable/starfield/field"
)

// Particles animates a uniform particle cube, recomputing heights each tick.
type Particles struct {
	scene  *Scene
	rng    field.Source
	params field.UniformParams
}

// NewParticles generates the initial particle field.
func NewParticles(s *Scene, params field.UniformParams, rng field.Source) (*Particles, error) {
	p := &Particles{scene: s, rng: rng}
	if err := p.regenerate(params); err != nil {
		return nil, err
	}
	return p, nil
}

// Dispatch handles one event.
func (p *Particles) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case ParticlesChanged:
		if err := p.regenerate(e.Params); err != nil {
			return err
		}
		// Keep the new field in phase with the running animation.
		if f := p.scene.ActiveField(); f != nil {
			f.Displace(p.scene.elapsed)
		}
	case Resized:
		p.scene.resize(e)
	case Tick:
		p.scene.tick(e)
		if f := p.scene.ActiveField(); f != nil {
			f.Displace(e.Elapsed)
		}
	}
	return nil
}

func (p *Particles) regenerate(params field.UniformParams) error {
	f, err := field.GenerateUniform(params, p.rng)
	if err != nil {
		slog.Warn("rejected particle parameters", "error", err)
		return err
	}
	p.params = params
	p.scene.Replace(KindParticles, f, PointsMaterial(params.Size))
	return nil
}

// Params returns the parameters of the attached field.
func (p *Particles) Params() field.UniformParams { return p.params }

// Scene returns the controlled scene.
func (p *Particles) Scene() *Scene { return p.scene }

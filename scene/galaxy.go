package scene

import (
	"log/slog"

	"github.com/pthm-cable/starfield/field"
)

// Galaxy regenerates a spiral galaxy whenever its parameters change.
type Galaxy struct {
	scene  *Scene
	rng    field.Source
	params field.GalaxyParams
}

// NewGalaxy generates the initial galaxy. Invalid params leave no drawable
// attached and are returned as an error.
func NewGalaxy(s *Scene, params field.GalaxyParams, rng field.Source) (*Galaxy, error) {
	g := &Galaxy{scene: s, rng: rng}
	if err := g.regenerate(params); err != nil {
		return nil, err
	}
	return g, nil
}

// Dispatch handles one event.
func (g *Galaxy) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case GalaxyChanged:
		return g.regenerate(e.Params)
	case Resized:
		g.scene.resize(e)
	case Tick:
		g.scene.tick(e)
	}
	return nil
}

// regenerate swaps in a new galaxy. On error the previous one stays attached.
func (g *Galaxy) regenerate(p field.GalaxyParams) error {
	f, err := field.GenerateSpiral(p, g.rng)
	if err != nil {
		slog.Warn("rejected galaxy parameters", "error", err)
		return err
	}
	g.params = p
	g.scene.Replace(KindGalaxy, f, PointsMaterial(p.Size))
	return nil
}

// Params returns the parameters of the attached galaxy.
func (g *Galaxy) Params() field.GalaxyParams { return g.params }

// Scene returns the controlled scene.
func (g *Galaxy) Scene() *Scene { return g.scene }

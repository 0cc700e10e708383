package scene

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/starfield/field"
)

// Kind identifies which generator produced a drawable.
type Kind uint8

const (
	KindGalaxy Kind = iota
	KindParticles
)

func (k Kind) String() string {
	switch k {
	case KindGalaxy:
		return "galaxy"
	case KindParticles:
		return "particles"
	default:
		return "unknown"
	}
}

// Points is the geometry component of a drawable.
type Points struct {
	Field      *field.PointField
	Generation uuid.UUID // changes on every regeneration
	Kind       Kind
}

// Material holds point rendering settings.
type Material struct {
	Size            float32
	SizeAttenuation bool
	Additive        bool
	DepthWrite      bool
}

// PointsMaterial returns the material used by both point demos.
func PointsMaterial(size float64) Material {
	return Material{
		Size:            float32(size),
		SizeAttenuation: true,
		Additive:        true,
		DepthWrite:      false,
	}
}

package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/field"
	"github.com/pthm-cable/starfield/scene"
)

// spriteSize is the edge length of the generated point sprite in pixels.
const spriteSize = 32

// PointsRenderer draws the active point field of a scene as camera-facing
// sprites. It implements scene.Disposer.
type PointsRenderer struct {
	sprite    rl.Texture2D
	hasSprite bool

	// Uploaded state for the current generation
	generation uuid.UUID
	colors     []rl.Color
}

// NewPointsRenderer creates a renderer. GPU resources are created lazily on
// the first Draw, after the window exists.
func NewPointsRenderer() *PointsRenderer {
	return &PointsRenderer{}
}

// Dispose releases the buffers uploaded for a drawable.
func (r *PointsRenderer) Dispose(p *scene.Points, _ *scene.Material) {
	if p.Generation != r.generation {
		return
	}
	r.colors = nil
	r.generation = uuid.Nil
	slog.Debug("released point buffers", "generation", p.Generation.String())
}

// upload converts the field's colours once per generation.
func (r *PointsRenderer) upload(p *scene.Points) {
	r.colors = ToColors(p.Field, r.colors[:0])
	r.generation = p.Generation
}

// Draw renders the scene's drawables from the camera's point of view.
func (r *PointsRenderer) Draw(s *scene.Scene, cam *camera.Orbit) {
	if !r.hasSprite {
		r.loadSprite()
	}

	cam3d := ToCamera3D(cam)
	rl.BeginMode3D(cam3d)
	s.Each(func(p *scene.Points, m *scene.Material) {
		if p.Generation != r.generation {
			r.upload(p)
		}
		r.drawPoints(p.Field, m, cam3d)
	})
	rl.EndMode3D()
}

func (r *PointsRenderer) drawPoints(f *field.PointField, m *scene.Material, cam rl.Camera3D) {
	if !m.DepthWrite {
		rl.DisableDepthMask()
		defer rl.EnableDepthMask()
	}
	if m.Additive {
		rl.BeginBlendMode(rl.BlendAdditive)
		defer rl.EndBlendMode()
	}

	// Positions are read every frame so per-frame displacement shows up.
	n := f.Len()
	for i := 0; i < n && i < len(r.colors); i++ {
		x, y, z := f.Position(i)
		rl.DrawBillboard(cam, r.sprite, rl.Vector3{X: x, Y: y, Z: z}, m.Size, r.colors[i])
	}
}

// loadSprite builds a soft round sprite so points fade towards their edge.
func (r *PointsRenderer) loadSprite() {
	img := rl.GenImageGradientRadial(spriteSize, spriteSize, 0.2, rl.White, rl.Blank)
	r.sprite = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.hasSprite = true
}

// Unload frees GPU resources. Call before closing the window.
func (r *PointsRenderer) Unload() {
	if r.hasSprite {
		rl.UnloadTexture(r.sprite)
		r.hasSprite = false
	}
	r.colors = nil
	r.generation = uuid.Nil
}

// ToColors converts float RGB triples to opaque 8-bit colours, appending to dst.
func ToColors(f *field.PointField, dst []rl.Color) []rl.Color {
	n := f.Len()
	for i := 0; i < n; i++ {
		cr, cg, cb := f.Color(i)
		dst = append(dst, rl.Color{
			R: channel(cr),
			G: channel(cg),
			B: channel(cb),
			A: 255,
		})
	}
	return dst
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ToCamera3D converts an orbit camera to a raylib camera.
func ToCamera3D(cam *camera.Orbit) rl.Camera3D {
	pos := cam.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: pos.X(), Y: pos.Y(), Z: pos.Z()},
		Target:     rl.Vector3{X: cam.Target.X(), Y: cam.Target.Y(), Z: cam.Target.Z()},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

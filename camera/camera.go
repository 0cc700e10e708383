// Package camera provides an orbit camera for viewing point fields.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the camera off the poles so the up vector stays valid.
const maxPitch = 89 * math.Pi / 180

// Orbit circles a target point. Yaw and pitch are in radians; yaw 0 looks
// down -Z from +Z.
type Orbit struct {
	Target   mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// Damping is the fraction of rotation velocity lost per frame at 60fps.
	// Zero disables damping: rotation applies immediately.
	Damping float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Projection
	Fovy, Near, Far float32

	yawVel, pitchVel float32
	home             State
}

// State is the persisted part of a camera.
type State struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// New creates a camera at position looking at target.
func New(position, target mgl32.Vec3, viewportW, viewportH float32) *Orbit {
	c := &Orbit{
		MinDistance: 0.5,
		MaxDistance: 40,
		Damping:     0.05,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		Fovy:        75,
		Near:        0.1,
		Far:         100,
	}
	c.LookFrom(position, target)
	c.home = c.State()
	return c
}

// LookFrom places the camera at position, orbiting target.
func (c *Orbit) LookFrom(position, target mgl32.Vec3) {
	c.Target = target
	offset := position.Sub(target)
	dist := offset.Len()
	if dist == 0 {
		offset = mgl32.Vec3{0, 0, 1}
		dist = 1
	}
	c.Distance = dist
	c.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	c.Pitch = float32(math.Asin(float64(offset.Y() / dist)))
	c.Pitch = clamp(c.Pitch, -maxPitch, maxPitch)
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.yawVel, c.pitchVel = 0, 0
}

// Position returns the camera position in world coordinates.
func (c *Orbit) Position() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	offset := mgl32.Vec3{
		c.Distance * cp * float32(math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cp * float32(math.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(offset)
}

// View returns the view matrix.
func (c *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix.
func (c *Orbit) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect(), c.Near, c.Far)
}

// Aspect returns the viewport aspect ratio.
func (c *Orbit) Aspect() float32 {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return 1
	}
	return c.ViewportW / c.ViewportH
}

// Rotate adds angular velocity. With damping off it applies immediately.
func (c *Orbit) Rotate(dYaw, dPitch float32) {
	if c.Damping <= 0 {
		c.Yaw += dYaw
		c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
		return
	}
	c.yawVel += dYaw
	c.pitchVel += dPitch
}

// Update advances damped rotation by dt seconds. It reports whether the
// camera moved.
func (c *Orbit) Update(dt float32) bool {
	if c.yawVel == 0 && c.pitchVel == 0 {
		return false
	}

	// Scale per-frame damping to the actual frame time.
	keep := float32(math.Pow(float64(1-c.Damping), float64(dt*60)))
	step := 1 - keep

	c.Yaw += c.yawVel * step
	c.Pitch = clamp(c.Pitch+c.pitchVel*step, -maxPitch, maxPitch)
	c.yawVel *= keep
	c.pitchVel *= keep

	const rest = 1e-5
	if absf(c.yawVel) < rest {
		c.yawVel = 0
	}
	if absf(c.pitchVel) < rest {
		c.pitchVel = 0
	}
	return true
}

// Moving reports whether damped rotation is still in progress.
func (c *Orbit) Moving() bool {
	return c.yawVel != 0 || c.pitchVel != 0
}

// ZoomBy multiplies the orbit distance by factor, clamped to min/max.
func (c *Orbit) ZoomBy(factor float32) {
	c.SetDistance(c.Distance * factor)
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Orbit) SetDistance(d float32) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// Resize updates viewport dimensions.
func (c *Orbit) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Reset returns the camera to where it was created.
func (c *Orbit) Reset() {
	c.Restore(c.home)
}

// State returns the camera's position and target.
func (c *Orbit) State() State {
	p := c.Position()
	return State{
		Position: [3]float32{p.X(), p.Y(), p.Z()},
		Target:   [3]float32{c.Target.X(), c.Target.Y(), c.Target.Z()},
	}
}

// Restore moves the camera to a saved state.
func (c *Orbit) Restore(s State) {
	c.LookFrom(mgl32.Vec3(s.Position), mgl32.Vec3(s.Target))
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

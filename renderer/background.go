package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// backgroundFS darkens toward the screen edges around a base colour.
const backgroundFS = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;
uniform vec2 resolution;
uniform vec3 baseColor;
void main() {
    vec2 uv = gl_FragCoord.xy / resolution - 0.5;
    uv.x *= resolution.x / resolution.y;
    float v = 1.0 - smoothstep(0.0, 0.9, length(uv));
    finalColor = vec4(baseColor * v, 1.0);
}
`

// BackgroundRenderer fills the screen with a dark vignette and a faint
// nebula behind the points.
type BackgroundRenderer struct {
	shader        rl.Shader
	resolutionLoc int32
	baseColorLoc  int32

	nebula     rl.Texture2D
	nebulaSeed int64

	screenW, screenH float32
	baseColor        [3]float32
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, baseR, baseG, baseB uint8, nebulaSeed int64) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW:    float32(screenW),
		screenH:    float32(screenH),
		nebulaSeed: nebulaSeed,
		baseColor: [3]float32{
			float32(baseR) / 255.0,
			float32(baseG) / 255.0,
			float32(baseB) / 255.0,
		},
	}
}

// Init initializes the renderer (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.shader = rl.LoadShaderFromMemory("", backgroundFS)
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "resolution")
	b.baseColorLoc = rl.GetShaderLocation(b.shader, "baseColor")

	rl.SetShaderValue(b.shader, b.baseColorLoc, b.baseColor[:], rl.ShaderUniformVec3)

	img := rl.GenImageColor(NebulaSize, NebulaSize, rl.Blank)
	b.nebula = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(b.nebula, rl.FilterBilinear)
	rl.UpdateTexture(b.nebula, NebulaPixels(NebulaSize, b.nebulaSeed,
		color.RGBA{R: 255, G: 96, B: 48, A: 255},
		color.RGBA{R: 27, G: 57, B: 132, A: 255},
	))

	b.initialized = true
	b.setResolution()
}

// Resize updates the screen dimensions.
func (b *BackgroundRenderer) Resize(screenW, screenH float32) {
	b.screenW = screenW
	b.screenH = screenH
	if b.initialized {
		b.setResolution()
	}
}

func (b *BackgroundRenderer) setResolution() {
	resolution := []float32{b.screenW, b.screenH}
	rl.SetShaderValue(b.shader, b.resolutionLoc, resolution, rl.ShaderUniformVec2)
}

// Draw renders the background as a fullscreen quad.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		b.Init()
	}

	rl.BeginShaderMode(b.shader)
	rl.DrawRectangle(0, 0, int32(b.screenW), int32(b.screenH), rl.White)
	rl.EndShaderMode()

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawTexturePro(
		b.nebula,
		rl.Rectangle{X: 0, Y: 0, Width: NebulaSize, Height: NebulaSize},
		rl.Rectangle{X: 0, Y: 0, Width: b.screenW, Height: b.screenH},
		rl.Vector2{},
		0,
		rl.White,
	)
	rl.EndBlendMode()
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadShader(b.shader)
		rl.UnloadTexture(b.nebula)
		b.initialized = false
	}
}

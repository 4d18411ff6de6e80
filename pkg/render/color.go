// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the colors needed to render the static field.
type FieldColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	SpotColor       color.RGBA
	BastionColor    color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// EntityColors holds the palette of the moving parts.
type EntityColors struct {
	Enemies        []color.RGBA // по defs.EnemyType
	Towers         []color.RGBA // по defs.TowerType
	Projectile     color.RGBA
	HealthBarBack  color.RGBA
	HealthBarFront color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Faded returns c with its alpha replaced, for fading effects.
func Faded(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// pick returns palette[i] or white when the palette is too short.
func pick(palette []color.RGBA, i int) color.RGBA {
	if i < 0 || i >= len(palette) {
		return color.RGBA{255, 255, 255, 255}
	}
	return palette[i]
}

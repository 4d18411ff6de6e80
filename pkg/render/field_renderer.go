// pkg/render/field_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/fx"
	"bastion-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FieldRenderer draws the level and the entities of a state snapshot.
// Positions are in tiles; the renderer maps them onto the screen.
type FieldRenderer struct {
	level        *config.Level
	catalog      *defs.Catalog
	tileSize     float64
	offsetX      float64
	offsetY      float64
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	colors       *FieldColors
	entities     *EntityColors
	fillImg      *ebiten.Image
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	mapImage     *ebiten.Image // предрендеренная карта
}

func NewFieldRenderer(level *config.Level, catalog *defs.Catalog, tileSize, offsetX, offsetY float64, screenWidth, screenHeight int, fontFace font.Face, colors *FieldColors, entities *EntityColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &FieldRenderer{
		level:        level,
		catalog:      catalog,
		tileSize:     tileSize,
		offsetX:      offsetX,
		offsetY:      offsetY,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     fontFace,
		colors:       colors,
		entities:     entities,
		fillImg:      fillImg,
		strokeVs:     make([]ebiten.Vertex, 0, 64),
		strokeIs:     make([]uint16, 0, 96),
	}
}

// ToScreen maps a field position in tiles to screen pixels.
func (r *FieldRenderer) ToScreen(p geom.Vec2) (float32, float32) {
	return float32(r.offsetX + p.X*r.tileSize), float32(r.offsetY + p.Y*r.tileSize)
}

// ToField maps screen pixels back to a field position in tiles.
func (r *FieldRenderer) ToField(x, y int) geom.Vec2 {
	return geom.Vec2{
		X: (float64(x) - r.offsetX) / r.tileSize,
		Y: (float64(y) - r.offsetY) / r.tileSize,
	}
}

// SpotAt returns the construction spot under the cursor.
func (r *FieldRenderer) SpotAt(x, y int) (config.Spot, bool) {
	p := r.ToField(x, y)
	for _, spot := range r.level.Spots {
		if geom.Dist(p, spot.Pos) <= config.SpotRadius {
			return spot, true
		}
	}
	return config.Spot{}, false
}

// RenderMapImage pre-renders the static part of the field: background,
// path, construction spots and the bastion.
func (r *FieldRenderer) RenderMapImage() {
	r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.mapImage.Fill(r.colors.BackgroundColor)

	r.drawPath(r.mapImage)

	spotR := float32(config.SpotRadius * r.tileSize)
	for _, spot := range r.level.Spots {
		x, y := r.ToScreen(spot.Pos)
		vector.DrawFilledCircle(r.mapImage, x, y, spotR, r.colors.SpotColor, true)
		vector.StrokeCircle(r.mapImage, x, y, spotR, r.colors.StrokeWidth, DarkenColor(r.colors.SpotColor), true)
	}

	end := r.level.Path[len(r.level.Path)-1]
	x, y := r.ToScreen(end)
	half := float32(r.tileSize * 0.45)
	vector.DrawFilledRect(r.mapImage, x-half, y-half, half*2, half*2, r.colors.BastionColor, true)
	vector.StrokeRect(r.mapImage, x-half, y-half, half*2, half*2, r.colors.StrokeWidth, DarkenColor(r.colors.BastionColor), true)
}

func (r *FieldRenderer) drawPath(target *ebiten.Image) {
	path := vector.Path{}
	for i, p := range r.level.Path {
		x, y := r.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(r.tileSize * 0.6),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c := r.colors.PathColor
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw renders the field, the entities of st and the effect layer.
// selected is the id of the highlighted construction spot, or -1.
func (r *FieldRenderer) Draw(screen *ebiten.Image, st entity.State, effects *fx.Layer, selected int) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	r.drawTowers(screen, st, selected)
	r.drawEnemies(screen, st)
	r.drawProjectiles(screen, st)
	if effects != nil {
		r.drawEffects(screen, effects)
	}
}

func (r *FieldRenderer) drawTowers(screen *ebiten.Image, st entity.State, selected int) {
	half := float32(r.tileSize * 0.28)
	for _, t := range st.Towers {
		x, y := r.ToScreen(t.Pos)
		c := pick(r.entities.Towers, int(t.Type))
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, true)
		vector.StrokeRect(screen, x-half, y-half, half*2, half*2, r.colors.StrokeWidth, DarkenColor(c), true)

		// уровень рисуется точками под башней
		for lvl := 0; lvl < t.Level; lvl++ {
			px := x - half + float32(lvl)*half*0.7 + half*0.3
			vector.DrawFilledCircle(screen, px, y+half+5, 2.5, r.colors.TextLightColor, true)
		}

		if t.SpotID == selected {
			if stats, ok := r.catalog.TowerLevel(t.Type, t.Level); ok {
				vector.StrokeCircle(screen, x, y, float32(stats.Range*r.tileSize), 1, Faded(c, 160), true)
			}
		}
	}

	if selected >= 0 {
		if spot, ok := r.level.Spot(selected); ok {
			x, y := r.ToScreen(spot.Pos)
			vector.StrokeCircle(screen, x, y, float32(config.SpotRadius*r.tileSize)+3, r.colors.StrokeWidth, r.colors.TextLightColor, true)
		}
	}
}

func (r *FieldRenderer) drawEnemies(screen *ebiten.Image, st entity.State) {
	for _, e := range st.Enemies {
		x, y := r.ToScreen(e.Pos)
		radius := float32(r.catalog.Enemy(e.Type).Size * r.tileSize)
		vector.DrawFilledCircle(screen, x, y, radius, pick(r.entities.Enemies, int(e.Type)), true)

		if e.Health >= e.MaxHealth || e.MaxHealth <= 0 {
			continue
		}
		w := radius * 2
		ratio := float32(math.Max(0, float64(e.Health)/float64(e.MaxHealth)))
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, r.entities.HealthBarBack, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*ratio, 3, r.entities.HealthBarFront, false)
	}
}

func (r *FieldRenderer) drawProjectiles(screen *ebiten.Image, st entity.State) {
	for _, p := range st.Projectiles {
		x, y := r.ToScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, r.entities.Projectile, true)
	}
}

func (r *FieldRenderer) drawEffects(screen *ebiten.Image, effects *fx.Layer) {
	for _, p := range effects.Particles() {
		x, y := r.ToScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, 2, Faded(p.Color, p.Alpha()), false)
	}
	for _, t := range effects.Texts() {
		x, y := r.ToScreen(t.Position())
		bounds := text.BoundString(r.fontFace, t.Text)
		text.Draw(screen, t.Text, r.fontFace, int(x)-bounds.Dx()/2, int(y), Faded(t.Color, t.Alpha()))
	}
}

// DrawLabel draws s centered at a field position.
func (r *FieldRenderer) DrawLabel(screen *ebiten.Image, p geom.Vec2, s string, c color.Color) {
	x, y := r.ToScreen(p)
	bounds := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, c)
}

// SpotLabel is the caption shown next to a construction spot.
func SpotLabel(id int) string { return fmt.Sprintf("#%d", id) }

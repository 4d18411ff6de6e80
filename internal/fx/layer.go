// internal/fx/layer.go
package fx

import (
	"image/color"
	"strconv"

	"bastion-defense/internal/config"
	"bastion-defense/internal/event"
	"bastion-defense/internal/utils"
	"bastion-defense/pkg/geom"
)

const (
	textRise      = 0.6 // тайлов за время жизни
	particleSpeed = 1.5 // тайлов в секунду, максимум
	maxParticles  = 512
)

// FloatingText is a short-lived label drifting up from where it spawned.
type FloatingText struct {
	Pos   geom.Vec2
	Text  string
	Color color.RGBA
	Age   float64
	TTL   float64
}

// Progress returns how much of its life the label has used, in [0, 1].
func (t FloatingText) Progress() float64 { return utils.Clamp01(t.Age / t.TTL) }

// Position returns the current, risen position in tiles.
func (t FloatingText) Position() geom.Vec2 {
	return geom.Vec2{X: t.Pos.X, Y: t.Pos.Y - textRise*t.Progress()}
}

// Alpha fades the label out over its life.
func (t FloatingText) Alpha() uint8 {
	return uint8(utils.Lerp(255, 0, float32(t.Progress())))
}

// Particle is one dot of a death burst.
type Particle struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Color color.RGBA
	Age   float64
	TTL   float64
}

func (p Particle) Alpha() uint8 {
	return uint8(utils.Lerp(255, 0, float32(utils.Clamp01(p.Age/p.TTL))))
}

// Layer turns simulation feedback into animated effects. It runs on wall
// time; the screen stops calling Update while the game is paused.
type Layer struct {
	rng       *utils.PRNGService
	texts     []FloatingText
	particles []Particle
}

func NewLayer(rng *utils.PRNGService) *Layer {
	return &Layer{rng: rng}
}

// Push adds effects for one tick's feedback.
func (l *Layer) Push(items []event.Feedback) {
	for _, item := range items {
		switch f := item.(type) {
		case event.DamagePop:
			l.addText(f.Pos, strconv.Itoa(f.Amount), config.DamageTextColor)
		case event.RewardPop:
			l.addText(geom.Vec2{X: f.Pos.X, Y: f.Pos.Y - 0.3}, "+"+strconv.Itoa(f.Amount), config.RewardTextColor)
		case event.ParticleBurst:
			l.addBurst(f)
		}
	}
}

func (l *Layer) addText(pos geom.Vec2, s string, c color.RGBA) {
	l.texts = append(l.texts, FloatingText{Pos: pos, Text: s, Color: c, TTL: config.FloatingTextTTL})
}

func (l *Layer) addBurst(f event.ParticleBurst) {
	for i := 0; i < f.Count && len(l.particles) < maxParticles; i++ {
		l.particles = append(l.particles, Particle{
			Pos:   f.Pos,
			Vel:   l.rng.Direction().Scale(l.rng.Range(0.3, 1) * particleSpeed),
			Color: f.Color,
			TTL:   config.ParticleTTL * l.rng.Range(0.6, 1),
		})
	}
}

// Update ages every effect and drops expired ones.
func (l *Layer) Update(deltaTime float64) {
	texts := l.texts[:0]
	for _, t := range l.texts {
		t.Age += deltaTime
		if t.Age < t.TTL {
			texts = append(texts, t)
		}
	}
	l.texts = texts

	particles := l.particles[:0]
	for _, p := range l.particles {
		p.Age += deltaTime
		if p.Age >= p.TTL {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
		particles = append(particles, p)
	}
	l.particles = particles
}

func (l *Layer) Texts() []FloatingText { return l.texts }
func (l *Layer) Particles() []Particle { return l.particles }

// Clear drops all effects, e.g. after a reset.
func (l *Layer) Clear() {
	l.texts = l.texts[:0]
	l.particles = l.particles[:0]
}

package fx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion-defense/internal/config"
	"bastion-defense/internal/event"
	"bastion-defense/internal/utils"
	"bastion-defense/pkg/geom"
)

func TestLayer_TextsRiseAndExpire(t *testing.T) {
	l := NewLayer(utils.NewPRNGService(1))
	l.Push([]event.Feedback{
		event.DamagePop{Pos: geom.Vec2{X: 2, Y: 3}, Amount: 40},
		event.RewardPop{Pos: geom.Vec2{X: 2, Y: 3}, Amount: 5},
	})

	require.Len(t, l.Texts(), 2)
	assert.Equal(t, "40", l.Texts()[0].Text)
	assert.Equal(t, "+5", l.Texts()[1].Text)
	assert.Equal(t, config.RewardTextColor, l.Texts()[1].Color)
	assert.Equal(t, uint8(255), l.Texts()[0].Alpha())

	l.Update(config.FloatingTextTTL / 2)
	txt := l.Texts()[0]
	assert.Less(t, txt.Position().Y, 3.0)
	assert.Less(t, txt.Alpha(), uint8(255))

	l.Update(config.FloatingTextTTL)
	assert.Empty(t, l.Texts())
}

func TestLayer_Particles(t *testing.T) {
	l := NewLayer(utils.NewPRNGService(1))
	red := color.RGBA{255, 0, 0, 255}
	l.Push([]event.Feedback{event.ParticleBurst{Pos: geom.Vec2{X: 1, Y: 1}, Color: red, Count: 6}})

	require.Len(t, l.Particles(), 6)
	for _, p := range l.Particles() {
		assert.Equal(t, red, p.Color)
		assert.LessOrEqual(t, p.TTL, config.ParticleTTL)
	}

	l.Update(0.01)
	moved := 0
	for _, p := range l.Particles() {
		if p.Pos != (geom.Vec2{X: 1, Y: 1}) {
			moved++
		}
	}
	assert.Positive(t, moved)

	l.Update(config.ParticleTTL)
	assert.Empty(t, l.Particles())
}

func TestLayer_ParticleCap(t *testing.T) {
	l := NewLayer(utils.NewPRNGService(1))
	l.Push([]event.Feedback{event.ParticleBurst{Count: maxParticles + 50}})
	assert.Len(t, l.Particles(), maxParticles)

	l.Clear()
	assert.Empty(t, l.Particles())
	assert.Empty(t, l.Texts())
}

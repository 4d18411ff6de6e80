package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name        string
		from, to    Vec2
		step        float64
		want        Vec2
		wantExcess  float64
		wantReached bool
	}{
		{"short of target", Vec2{0, 0}, Vec2{4, 0}, 1, Vec2{1, 0}, 0, false},
		{"exactly at target", Vec2{0, 0}, Vec2{0, 2}, 2, Vec2{0, 2}, 0, true},
		{"overshoot is returned", Vec2{0, 0}, Vec2{3, 4}, 7, Vec2{3, 4}, 2, true},
		{"already there", Vec2{1, 1}, Vec2{1, 1}, 0, Vec2{1, 1}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, excess, reached := MoveToward(tt.from, tt.to, tt.step)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.wantExcess, excess, 1e-9)
			assert.Equal(t, tt.wantReached, reached)
		})
	}
}

func TestPolyline(t *testing.T) {
	p, err := NewPolyline([]Vec2{{0, 0}, {3, 0}, {3, 4}, {0, 4}})
	require.NoError(t, err)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 3, p.Last())
	assert.InDelta(t, 10.0, p.Total(), 1e-9)

	assert.InDelta(t, 0.0, p.Progress(0, Vec2{0, 0}), 1e-9)
	assert.InDelta(t, 0.15, p.Progress(0, Vec2{1.5, 0}), 1e-9)
	assert.InDelta(t, 0.5, p.Progress(1, Vec2{3, 2}), 1e-9)
	assert.InDelta(t, 0.85, p.Progress(2, Vec2{1.5, 4}), 1e-9)
	assert.Equal(t, 1.0, p.Progress(3, Vec2{0, 4}))
}

func TestPolyline_CopiesInput(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}}
	p, err := NewPolyline(pts)
	require.NoError(t, err)

	pts[1] = Vec2{5, 5}
	assert.Equal(t, Vec2{1, 0}, p.Point(1))
}

func TestNewPolyline_TooShort(t *testing.T) {
	_, err := NewPolyline([]Vec2{{1, 1}})
	assert.ErrorIs(t, err, ErrShortPolyline)
}

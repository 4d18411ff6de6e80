// pkg/geom/polyline.go
package geom

import "errors"

// ErrShortPolyline is returned when a polyline has fewer than two points.
var ErrShortPolyline = errors.New("polyline needs at least two points")

// Polyline is an immutable ordered list of waypoints with precomputed
// cumulative segment lengths.
type Polyline struct {
	points []Vec2
	cum    []float64 // cum[i]: длина пути от points[0] до points[i]
}

// NewPolyline copies points and precomputes cumulative lengths.
func NewPolyline(points []Vec2) (*Polyline, error) {
	if len(points) < 2 {
		return nil, ErrShortPolyline
	}
	p := &Polyline{
		points: append([]Vec2(nil), points...),
		cum:    make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		p.cum[i] = p.cum[i-1] + Dist(points[i-1], points[i])
	}
	return p, nil
}

// Len returns the number of waypoints.
func (p *Polyline) Len() int { return len(p.points) }

// Point returns waypoint i.
func (p *Polyline) Point(i int) Vec2 { return p.points[i] }

// Points returns a copy of the waypoints.
func (p *Polyline) Points() []Vec2 { return append([]Vec2(nil), p.points...) }

// Last is the index of the terminal waypoint.
func (p *Polyline) Last() int { return len(p.points) - 1 }

// Total returns the total length of the polyline.
func (p *Polyline) Total() float64 { return p.cum[len(p.cum)-1] }

// Progress returns the normalized distance travelled along the polyline for
// a point pos lying on the segment that starts at waypoint seg. The result
// is clamped to [0, 1]; a degenerate zero-length polyline reports 1.
func (p *Polyline) Progress(seg int, pos Vec2) float64 {
	total := p.Total()
	if total <= 0 || seg >= p.Last() {
		return 1
	}
	if seg < 0 {
		seg = 0
	}
	travelled := p.cum[seg] + Dist(p.points[seg], pos)
	if travelled > p.cum[seg+1] {
		travelled = p.cum[seg+1]
	}
	v := travelled / total
	if v > 1 {
		return 1
	}
	return v
}

// internal/event/feedback.go
package event

import (
	"image/color"

	"bastion-defense/pkg/geom"
)

// Feedback is a fire-and-forget display hint produced by a tick. The set of
// implementations is closed: DamagePop, RewardPop and ParticleBurst.
type Feedback interface {
	feedback()
	At() geom.Vec2
}

// DamagePop shows the damage a projectile dealt.
type DamagePop struct {
	Pos    geom.Vec2
	Amount int
}

// RewardPop shows scrap credited for a kill.
type RewardPop struct {
	Pos    geom.Vec2
	Amount int
}

// ParticleBurst marks an enemy death.
type ParticleBurst struct {
	Pos   geom.Vec2
	Color color.RGBA
	Count int
}

func (DamagePop) feedback()     {}
func (RewardPop) feedback()     {}
func (ParticleBurst) feedback() {}

func (f DamagePop) At() geom.Vec2     { return f.Pos }
func (f RewardPop) At() geom.Vec2     { return f.Pos }
func (f ParticleBurst) At() geom.Vec2 { return f.Pos }

// FeedbackQueue is a bounded per-tick buffer. When it is full new items
// are dropped and counted.
type FeedbackQueue struct {
	items   []Feedback
	limit   int
	dropped int
}

// NewFeedbackQueue creates a queue holding at most limit items. A
// non-positive limit disables feedback entirely.
func NewFeedbackQueue(limit int) *FeedbackQueue {
	if limit < 0 {
		limit = 0
	}
	return &FeedbackQueue{limit: limit}
}

// Push appends f unless the queue is full.
func (q *FeedbackQueue) Push(f Feedback) {
	if len(q.items) >= q.limit {
		q.dropped++
		return
	}
	q.items = append(q.items, f)
}

// Items returns the queued feedback.
func (q *FeedbackQueue) Items() []Feedback { return q.items }

// Dropped returns how many items did not fit.
func (q *FeedbackQueue) Dropped() int { return q.dropped }

func (q *FeedbackQueue) Len() int { return len(q.items) }

// internal/system/frame.go
package system

import "bastion-defense/internal/event"

// Frame collects everything a tick emits besides the next state.
type Frame struct {
	feedback *event.FeedbackQueue
	events   []event.Event
}

// NewFrame creates a frame whose feedback queue holds at most capacity items.
func NewFrame(capacity int) *Frame {
	return &Frame{feedback: event.NewFeedbackQueue(capacity)}
}

func (f *Frame) emit(t event.EventType, data interface{}) {
	f.events = append(f.events, event.Event{Type: t, Data: data})
}

func (f *Frame) push(fb event.Feedback) {
	f.feedback.Push(fb)
}

// Events returns the lifecycle events emitted so far.
func (f *Frame) Events() []event.Event { return f.events }

// Output freezes the frame into a tick result.
func (f *Frame) Output() Output {
	return Output{
		Feedback:        f.feedback.Items(),
		Events:          f.events,
		DroppedFeedback: f.feedback.Dropped(),
	}
}

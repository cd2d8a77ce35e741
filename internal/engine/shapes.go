package engine

import "github.com/tartampluch/go-clockface/internal/config"

// Hand identifies one of the three clock hands. It doubles as the tag used to
// find and remove a drawn hand before it is replaced.
type Hand int

const (
	HandSecond Hand = iota
	HandMinute
	HandHour
)

// Hands lists every hand in drawing order.
var Hands = [...]Hand{HandSecond, HandMinute, HandHour}

// String returns the tag name of the hand.
func (h Hand) String() string {
	switch h {
	case HandSecond:
		return "second"
	case HandMinute:
		return "minute"
	case HandHour:
		return "hour"
	default:
		return "unknown"
	}
}

// Width returns the stroke width of the hand, zero for an unknown hand.
func (h Hand) Width() float64 {
	switch h {
	case HandSecond:
		return config.SecondHandWidth
	case HandMinute:
		return config.MinuteHandWidth
	case HandHour:
		return config.HourHandWidth
	default:
		return 0
	}
}

// LengthRatio returns the hand length as a fraction of the face radius, zero
// for an unknown hand.
func (h Hand) LengthRatio() float64 {
	switch h {
	case HandSecond, HandMinute:
		return 1
	case HandHour:
		return config.HourHandRatio
	default:
		return 0
	}
}

// Shape is a drawable handed to a Scene. The set of shapes is closed:
// Dot and HandLine are the only implementations.
type Shape interface {
	isShape()
}

// Dot is a small filled circle, used for the tick marks.
type Dot struct {
	At     Point
	Radius float64
}

// HandLine is a straight line from the face center to the tip of a hand.
type HandLine struct {
	Hand  Hand
	From  Point
	To    Point
	Width float64
}

func (Dot) isShape()      {}
func (HandLine) isShape() {}

// Scene is the rendering collaborator the ClockRenderer draws into.
// Implementations must only be called from a single goroutine.
type Scene interface {
	// AddShape inserts a drawable into the scene.
	AddShape(s Shape)

	// FindShapeByTag returns the hand currently drawn for h, if any.
	FindShapeByTag(h Hand) (Shape, bool)

	// RemoveShape deletes a previously added drawable. Removing a shape that
	// is not in the scene is a no-op.
	RemoveShape(s Shape)
}

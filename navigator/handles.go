package navigator

import "reflect"

// Affordance is the visual indication of whether a control is actionable.
type Affordance struct {
	Opacity float64 `json:"opacity"`
	Cursor  string  `json:"cursor"`
}

var (
	// Enabled is the affordance of a control that can be activated.
	Enabled = Affordance{Opacity: 1, Cursor: "pointer"}
	// Disabled is the affordance of a control sitting at a deck boundary.
	Disabled = Affordance{Opacity: 0.5, Cursor: "default"}
)

// Actionable reports whether the affordance signals an active control.
func (a Affordance) Actionable() bool {
	return a == Enabled
}

// SlideHandle is one display unit of the deck.
type SlideHandle interface {
	SetActive(active bool)
}

// Label displays the "position / total" counter.
type Label interface {
	SetText(text string)
}

// Indicator displays progress through the deck as a percentage.
type Indicator interface {
	SetPercent(percent float64)
}

// Control is a directional button whose affordance reflects boundary state.
type Control interface {
	SetAffordance(a Affordance)
}

// isNil catches both untyped nil interfaces and typed nil pointers stored in
// an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

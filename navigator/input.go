package navigator

// Action is a navigation request produced by a host input source.
type Action int

const (
	// ActionNone means the event does not navigate.
	ActionNone Action = iota
	ActionAdvance
	ActionRetreat
)

func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// Key is a logical key name as reported by a browser keydown event.
type Key string

const (
	KeyArrowRight Key = "ArrowRight"
	KeyArrowLeft  Key = "ArrowLeft"
	KeySpace      Key = " "
	KeyEnter      Key = "Enter"
)

// ControlID names one of the two directional controls.
type ControlID string

const (
	ControlAdvance ControlID = "advance"
	ControlRetreat ControlID = "retreat"
)

// ActionForKey maps a logical key to its navigation action.
func ActionForKey(k Key) Action {
	switch k {
	case KeyArrowRight, KeySpace, KeyEnter:
		return ActionAdvance
	case KeyArrowLeft:
		return ActionRetreat
	default:
		return ActionNone
	}
}

// ActionForControl maps a pointer activation on a control to its action.
func ActionForControl(c ControlID) Action {
	switch c {
	case ControlAdvance:
		return ActionAdvance
	case ControlRetreat:
		return ActionRetreat
	default:
		return ActionNone
	}
}

// Handler receives navigation requests from an input source. *Navigator
// implements it.
type Handler interface {
	Advance()
	Retreat()
}

// Dispatch invokes the handler method matching a. It reports whether a was a
// navigation action.
func Dispatch(h Handler, a Action) bool {
	switch a {
	case ActionAdvance:
		h.Advance()
	case ActionRetreat:
		h.Retreat()
	default:
		return false
	}
	return true
}

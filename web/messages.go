package web

import (
	"html/template"

	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/surface"
)

// Message types exchanged over the websocket.
const (
	// client -> server
	MsgKey     = "key"
	MsgControl = "control"

	// server -> client
	MsgState = "state"
	MsgDeck  = "deck"
)

// ClientMessage is an input event from the browser.
type ClientMessage struct {
	Type    string              `json:"type"`
	Key     navigator.Key       `json:"key,omitempty"`
	Control navigator.ControlID `json:"control,omitempty"`
}

// Action maps the event to a navigation action.
func (m ClientMessage) Action() navigator.Action {
	switch m.Type {
	case MsgKey:
		return navigator.ActionForKey(m.Key)
	case MsgControl:
		return navigator.ActionForControl(m.Control)
	}
	return navigator.ActionNone
}

// ServerMessage pushes render state to the browser. Deck messages also
// carry the replacement slides after a reload.
type ServerMessage struct {
	Type   string          `json:"type"`
	State  surface.State   `json:"state"`
	Title  string          `json:"title,omitempty"`
	Slides []template.HTML `json:"slides,omitempty"`
}

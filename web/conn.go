package web

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/surface"
	"github.com/sirupsen/logrus"
)

// conn is one browser. Its navigator is only touched from run.
type conn struct {
	server *Server
	ws     *websocket.Conn
	nav    *navigator.Navigator
	state  *surface.State
	logger *logrus.Entry

	reload    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func (c *conn) notifyReload() {
	select {
	case c.reload <- struct{}{}:
	default:
	}
}

func (c *conn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// run processes events in order until the browser goes away. Reads happen
// on a separate goroutine; every write and every navigator call happens
// here.
func (c *conn) run() {
	defer c.close()

	events := make(chan ClientMessage)
	go func() {
		defer close(events)
		for {
			_, data, err := c.ws.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					c.logger.WithError(err).Debug("Websocket read failed")
				}
				return
			}
			var msg ClientMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				c.logger.WithError(err).Debug("Ignoring malformed client message")
				continue
			}
			select {
			case events <- msg:
			case <-c.done:
				return
			}
		}
	}()

	if err := c.sendState(); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			if !navigator.Dispatch(c.nav, msg.Action()) {
				continue
			}
			if err := c.sendState(); err != nil {
				return
			}

		case <-c.reload:
			d, slides := c.server.current()
			nav, state, err := surface.Resume(d.Len(), c.nav.Cursor(), c.logger)
			if err != nil {
				c.logger.WithError(err).Warn("Reloaded deck rejected")
				continue
			}
			c.nav, c.state = nav, state
			err = c.ws.WriteJSON(ServerMessage{
				Type:   MsgDeck,
				State:  state.Snapshot(),
				Title:  d.Title,
				Slides: slides,
			})
			if err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

func (c *conn) sendState() error {
	return c.ws.WriteJSON(ServerMessage{Type: MsgState, State: c.state.Snapshot()})
}

// Package web is the browser presenter. It serves the deck as a single
// page and gives every websocket connection its own navigator.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/surface"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/deck.html"))

// Server serves one deck to any number of browsers.
type Server struct {
	logger   *logrus.Entry
	server   *http.Server
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	deck   *deck.Deck
	slides []template.HTML
	conns  map[*conn]struct{}
	closed bool
}

// New creates a Server for d. It fails when d has no slides or a slide
// cannot be rendered.
func New(d *deck.Deck, logger *logrus.Entry) (*Server, error) {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = logrus.NewEntry(discard)
	}
	s := &Server{
		logger: logger,
		conns:  make(map[*conn]struct{}),
	}
	if err := s.SetDeck(d); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDeck swaps the deck being served. Open connections rebuild their
// navigator and keep their position, clamped to the new length.
func (s *Server) SetDeck(d *deck.Deck) error {
	if d == nil || d.Len() == 0 {
		return errors.EmptyDeck("web")
	}
	slides, err := renderSlides(d)
	if err != nil {
		return errors.DeckInvalid(d.Source, err)
	}

	s.mu.Lock()
	s.deck = d
	s.slides = slides
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.notifyReload()
	}
	return nil
}

func (s *Server) current() (*deck.Deck, []template.HTML) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck, s.slides
}

// Handler returns the HTTP routes of the presenter.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.handleWebsocket)
	mux.HandleFunc("/api/deck", s.handleDeck)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeServerFailed, "failed to listen").
			WithDetail("addr", addr)
	}
	return s.Serve(listener)
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return nil
	}
	s.server = &http.Server{Handler: s.Handler()}
	srv := s.server
	s.mu.Unlock()

	s.logger.WithField("addr", l.Addr().String()).Info("Presenter listening")
	if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, errors.ErrCodeServerFailed, "server stopped")
	}
	return nil
}

// Shutdown stops accepting requests and closes every open websocket.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down presenter...")

	s.mu.Lock()
	s.closed = true
	srv := s.server
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.close()
	}
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

type pageData struct {
	Title   string
	Author  string
	Slides  []pageSlide
	Counter string
	Percent float64
	Retreat navigator.Affordance
	Advance navigator.Affordance
}

type pageSlide struct {
	HTML   template.HTML
	Active bool
}

// handlePage renders the deck as a fresh navigator draws it, so the page
// is correct before the websocket connects.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	d, slides := s.current()
	_, state, err := surface.Attach(len(slides), s.logger)
	if err != nil {
		s.logger.WithError(err).Error("Failed to render page")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Title:   d.Title,
		Author:  d.Author,
		Counter: state.Counter,
		Percent: state.Percent,
		Retreat: state.Retreat,
		Advance: state.Advance,
	}
	for i, html := range slides {
		data.Slides = append(data.Slides, pageSlide{HTML: html, Active: state.Active[i]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.WithError(err).Error("Failed to render page")
	}
}

type deckInfo struct {
	Title  string   `json:"title"`
	Author string   `json:"author,omitempty"`
	Source string   `json:"source,omitempty"`
	Slides []string `json:"slides"`
}

// handleDeck returns the slide titles as JSON.
func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	d, _ := s.current()
	info := deckInfo{Title: d.Title, Author: d.Author, Source: d.Source}
	for _, sl := range d.Slides {
		info.Slides = append(info.Slides, sl.Title)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Debug("Websocket upgrade failed")
		return
	}

	c := &conn{
		server: s,
		ws:     ws,
		reload: make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: s.logger.WithField("remote", r.RemoteAddr),
	}

	// Register before reading the deck so a concurrent SetDeck is not missed.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ws.Close()
		return
	}
	s.conns[c] = struct{}{}
	total := s.deck.Len()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, c)
		s.mu.Unlock()
	}()

	c.nav, c.state, err = surface.Attach(total, c.logger)
	if err != nil {
		ws.Close()
		return
	}

	c.logger.Debug("Browser connected")
	c.run()
	c.logger.Debug("Browser disconnected")
}

// Package deck loads the ordered slide sequence a presentation is built from.
package deck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/deck/errors"
)

// Slide is one display unit of a deck. Body is Markdown for Markdown decks
// and plain text for HTML documents; HTML holds the original inner markup of
// slides loaded from an HTML document.
type Slide struct {
	Title string
	Body  string
	Notes string
	HTML  string
}

// Deck is an ordered, fixed-length sequence of slides.
type Deck struct {
	Title  string
	Author string
	Source string
	Slides []Slide
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.Slides) }

// Meta is the front matter of a Markdown deck.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Load reads a deck from path, choosing the parser by extension.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DeckNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDeckInvalid, "failed to read deck").
			WithDetail("path", path)
	}

	var d *Deck
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		d, err = ParseMarkdown(string(data))
	case ".html", ".htm":
		d, err = ParseHTML(strings.NewReader(string(data)))
	default:
		return nil, errors.New(errors.ErrCodeDeckInvalid, "unsupported deck format: "+filepath.Ext(path)).
			WithDetail("path", path)
	}
	if err != nil {
		if errors.GetCode(err) == "" {
			return nil, errors.DeckInvalid(path, err)
		}
		if de, ok := err.(*errors.DeckError); ok {
			de.WithDetail("path", path)
		}
		return nil, err
	}

	d.Source = path
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

package deck

import (
	"bytes"
	"io"
	"strings"

	"github.com/grovetools/deck/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Handle names a UI element a pre-rendered HTML deck must contain.
type Handle struct {
	Name  string
	ID    string
	Class string
}

// RequiredHandles are the controls and displays an HTML deck must provide.
var RequiredHandles = []Handle{
	{Name: "prevBtn", ID: "prevBtn"},
	{Name: "nextBtn", ID: "nextBtn"},
	{Name: "slide-counter", ID: "slide-counter"},
	{Name: "progress-bar", Class: "progress-bar"},
}

// ParseHTML reads a pre-rendered presentation document. Every element with
// class "slide" becomes a slide, in document order. The document must carry
// all RequiredHandles; the first one missing is reported.
func ParseHTML(r io.Reader) (*Deck, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	d := &Deck{}
	found := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.DataAtom == atom.Title && d.Title == "" {
				d.Title = collapse(textContent(n))
			}
			for _, h := range RequiredHandles {
				if (h.ID != "" && attr(n, "id") == h.ID) || (h.Class != "" && hasClass(n, h.Class)) {
					found[h.Name] = true
				}
			}
			if hasClass(n, "slide") {
				d.Slides = append(d.Slides, slideFromNode(n))
				// Nested .slide elements are content, not separate slides.
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for _, h := range RequiredHandles {
		if !found[h.Name] {
			return nil, errors.MissingHandle(h.Name)
		}
	}
	if len(d.Slides) == 0 {
		return nil, errors.EmptyDeck("html")
	}
	return d, nil
}

func slideFromNode(n *html.Node) Slide {
	var (
		s     Slide
		lines []string
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, "notes"):
				s.Notes = collapse(textContent(n))
				return
			case s.Title == "" && isHeadingAtom(n.DataAtom):
				s.Title = collapse(textContent(n))
				return
			case isBlockAtom(n.DataAtom):
				if text := collapse(textContent(n)); text != "" && !hasBlockChild(n) {
					lines = append(lines, text)
					return
				}
			}
		}
		if n.Type == html.TextNode {
			if text := collapse(n.Data); text != "" {
				lines = append(lines, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	s.Body = strings.Join(lines, "\n")
	s.HTML = innerHTML(n)
	return s
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(buf.String())
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
		if c.Type == html.ElementNode && isBlockAtom(c.DataAtom) {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlockAtom(c.DataAtom) {
			return true
		}
	}
	return false
}

func isHeadingAtom(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3:
		return true
	}
	return false
}

func isBlockAtom(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Li, atom.Pre, atom.Div, atom.Ul, atom.Ol, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Table, atom.Tr, atom.Section:
		return true
	}
	return false
}

package web

import (
	"bytes"
	"html/template"

	"github.com/grovetools/deck/deck"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderSlides converts every slide to the markup placed inside its
// .slide element. Slides loaded from an HTML document keep their original
// markup; Markdown slides are rendered with goldmark.
func renderSlides(d *deck.Deck) ([]template.HTML, error) {
	out := make([]template.HTML, 0, d.Len())
	for _, s := range d.Slides {
		if s.HTML != "" {
			out = append(out, template.HTML(s.HTML))
			continue
		}
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(s.Body), &buf); err != nil {
			return nil, err
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}

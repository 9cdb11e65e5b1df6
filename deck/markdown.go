package deck

import (
	"fmt"
	"strings"

	"github.com/grovetools/deck/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"
	notesMarker   = "notes:"
)

// ParseMarkdown splits a Markdown document into slides. Slides are separated
// by a line holding only "---"; separators inside fenced code blocks are
// ignored. A document whose first line is "---" or "+++" opens with a YAML or
// TOML front matter block.
func ParseMarkdown(src string) (*Deck, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	d := &Deck{}
	lines, err := parseFrontMatter(lines, d)
	if err != nil {
		return nil, err
	}

	var (
		chunk   []string
		inFence bool
	)
	flush := func() {
		if s, ok := buildSlide(chunk); ok {
			d.Slides = append(d.Slides, s)
		}
		chunk = chunk[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && trimmed == yamlDelimiter {
			flush()
			continue
		}
		chunk = append(chunk, line)
	}
	flush()

	if len(d.Slides) == 0 {
		return nil, errors.EmptyDeck("markdown")
	}
	return d, nil
}

func parseFrontMatter(lines []string, d *Deck) ([]string, error) {
	if len(lines) == 0 {
		return lines, nil
	}
	delim := strings.TrimSpace(lines[0])
	if delim != yamlDelimiter && delim != tomlDelimiter {
		return lines, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, fmt.Errorf("front matter opened with %q is never closed", delim)
	}

	block := strings.Join(lines[1:end], "\n")
	raw := map[string]interface{}{}
	var err error
	if delim == tomlDelimiter {
		err = toml.Unmarshal([]byte(block), &raw)
	} else {
		err = yaml.Unmarshal([]byte(block), &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	var meta Meta
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	d.Title = meta.Title
	d.Author = meta.Author

	return lines[end+1:], nil
}

// buildSlide turns the lines between two separators into a slide. Chunks
// without content are dropped.
func buildSlide(lines []string) (Slide, bool) {
	var (
		s       Slide
		body    []string
		notes   []string
		inNotes bool
		inFence bool
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inNotes && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")) {
			inFence = !inFence
		}
		switch {
		case inNotes:
			notes = append(notes, line)
		case !inFence && strings.EqualFold(trimmed, notesMarker):
			inNotes = true
		case !inFence && s.Title == "" && isHeading(trimmed):
			s.Title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			body = append(body, line)
		default:
			body = append(body, line)
		}
	}
	s.Body = strings.TrimSpace(strings.Join(body, "\n"))
	s.Notes = strings.TrimSpace(strings.Join(notes, "\n"))
	if s.Body == "" {
		return Slide{}, false
	}
	return s, true
}

// isHeading matches the two heading levels that title a slide, mirroring
// the h1/h2 rule for HTML decks.
func isHeading(line string) bool {
	return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ")
}

package deck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/deck/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarkdown(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "talk.md"))
	require.NoError(t, err)

	assert.Equal(t, "Portugol Compiler", d.Title)
	assert.Equal(t, "Compilers Course", d.Author)
	require.Equal(t, 4, d.Len())

	assert.Equal(t, "Portugol Compiler", d.Slides[0].Title)
	assert.Equal(t, "Lexical Analysis", d.Slides[1].Title)
	assert.Equal(t, "Mention the automaton diagram.", d.Slides[1].Notes)
	assert.NotContains(t, d.Slides[1].Body, "Notes:")
	assert.Contains(t, d.Slides[2].Body, "inicio\n---\nfim", "separator inside a code fence stays in the slide")
	assert.Equal(t, "Questions?", d.Slides[3].Title)
}

func TestLoadHTML(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "talk.html"))
	require.NoError(t, err)

	assert.Equal(t, "Compilador Portugol", d.Title)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, "Fases", d.Slides[1].Title)
	assert.Equal(t, "Análise léxica\nAnálise sintática\nAnálise semântica", d.Slides[1].Body)
	assert.Equal(t, "Mostrar o diagrama do autômato.", d.Slides[1].Notes)
	assert.Equal(t, "Dobramento de constantes e eliminação de código morto.", d.Slides[2].Body)
	assert.Contains(t, d.Slides[2].HTML, "<strong>constantes</strong>")
}

func TestParseMarkdownTOMLFrontMatter(t *testing.T) {
	d, err := ParseMarkdown("+++\ntitle = \"Talk\"\nauthor = \"Ana\"\n+++\n# One\n---\n# Two\n")
	require.NoError(t, err)

	assert.Equal(t, "Talk", d.Title)
	assert.Equal(t, "Ana", d.Author)
	assert.Equal(t, 2, d.Len())
}

func TestParseMarkdownDropsBlankSlides(t *testing.T) {
	d, err := ParseMarkdown("# One\n---\n\n---\n   \n---\nplain text slide\n")
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	assert.Equal(t, "", d.Slides[1].Title)
	assert.Equal(t, "plain text slide", d.Slides[1].Body)
}

func TestParseMarkdownErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.ErrorCode
	}{
		{name: "empty", src: "", code: errors.ErrCodeEmptyDeck},
		{name: "single slide", src: "intro\n", code: ""},
		{name: "front matter only", src: "---\ntitle: x\n---\n", code: errors.ErrCodeEmptyDeck},
		{name: "unclosed front matter", src: "---\ntitle: x\n", code: "none"},
		{name: "bad yaml", src: "---\ntitle: [x\n---\n# a\n", code: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMarkdown(tt.src)
			switch tt.code {
			case "":
				assert.NoError(t, err)
			case "none":
				require.Error(t, err)
				assert.Equal(t, errors.ErrorCode(""), errors.GetCode(err))
			default:
				require.Error(t, err)
				assert.Equal(t, tt.code, errors.GetCode(err))
			}
		})
	}
}

func TestParseHTMLMissingHandles(t *testing.T) {
	full, err := os.ReadFile(filepath.Join("testdata", "talk.html"))
	require.NoError(t, err)

	tests := []struct {
		handle string
		remove string
	}{
		{handle: "prevBtn", remove: `id="prevBtn"`},
		{handle: "nextBtn", remove: `id="nextBtn"`},
		{handle: "slide-counter", remove: `id="slide-counter"`},
		{handle: "progress-bar", remove: `class="progress-bar"`},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			src := strings.Replace(string(full), tt.remove, "", 1)
			_, err := ParseHTML(strings.NewReader(src))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeMissingHandle, errors.GetCode(err))
			assert.Equal(t, tt.handle, errors.Details(err)["handle"])
		})
	}

	t.Run("no slides", func(t *testing.T) {
		src := strings.ReplaceAll(string(full), `class="slide`, `class="panel`)
		_, err := ParseHTML(strings.NewReader(src))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeEmptyDeck, errors.GetCode(err))
	})
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.md"))
	assert.Equal(t, errors.ErrCodeDeckNotFound, errors.GetCode(err))

	pdf := filepath.Join(dir, "talk.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0644))
	_, err = Load(pdf)
	assert.Equal(t, errors.ErrCodeDeckInvalid, errors.GetCode(err))

	broken := filepath.Join(dir, "broken.md")
	require.NoError(t, os.WriteFile(broken, []byte("---\ntitle: x\n"), 0644))
	_, err = Load(broken)
	assert.Equal(t, errors.ErrCodeDeckInvalid, errors.GetCode(err))

	empty := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(empty, []byte("\n---\n"), 0644))
	_, err = Load(empty)
	assert.Equal(t, errors.ErrCodeEmptyDeck, errors.GetCode(err))
	assert.Equal(t, empty, errors.Details(err)["path"])
}

func TestSlideTitleFromFirstHeading(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"level one", "# Parsing\n\ntext", "Parsing"},
		{"level two", "## Tokens\n\ntext", "Tokens"},
		{"first wins", "## Outline\n# Later", "Outline"},
		{"deeper levels ignored", "### Detail\n\ntext", ""},
		{"fenced comment ignored", "```sh\n# build it\n```\n\n## Build", "Build"},
		{"no heading", "just text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseMarkdown(tt.src)
			require.NoError(t, err)
			require.Equal(t, 1, d.Len())
			assert.Equal(t, tt.want, d.Slides[0].Title)
		})
	}
}

func TestLoadDefaultsTitleToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intro.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi\n"), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "intro", d.Title)
	assert.Equal(t, path, d.Source)
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0644))

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	w, err := NewWatcher(path, 20*time.Millisecond, logrus.NewEntry(logger))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Deck, 4)
	go w.Start(ctx, func(d *Deck, err error) {
		if err == nil {
			reloads <- d
		}
	})

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("# x\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("# One\n---\n# Two\n"), 0644))

	select {
	case d := <-reloads:
		assert.Equal(t, 2, d.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("deck was not reloaded")
	}
}

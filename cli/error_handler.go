package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/deck/errors"
)

// ErrorHandler prints user-facing messages for structured errors.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle explains err based on its code and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	details := errors.Details(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found: %v\n", details["path"])
		fmt.Fprintf(h.Out, "Create a deck.yml or drop the --config flag.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ %v\n", err)
		fmt.Fprintf(h.Out, "Run 'deck config validate' for details.\n")

	case errors.ErrCodeDeckNotFound:
		fmt.Fprintf(h.Out, "❌ Deck '%v' does not exist\n", details["path"])

	case errors.ErrCodeDeckInvalid:
		fmt.Fprintf(h.Out, "❌ Deck could not be read: %v\n", err)
		fmt.Fprintf(h.Out, "Supported formats are .md, .markdown, .html and .htm.\n")

	case errors.ErrCodeEmptyDeck:
		fmt.Fprintf(h.Out, "❌ The deck has no slides\n")
		fmt.Fprintf(h.Out, "Separate Markdown slides with a line containing only '---', or mark HTML slides with class=\"slide\".\n")

	case errors.ErrCodeMissingHandle:
		fmt.Fprintf(h.Out, "❌ The deck is missing the '%v' element\n", details["handle"])
		fmt.Fprintf(h.Out, "HTML decks need #prevBtn, #nextBtn, #slide-counter and .progress-bar.\n")

	case errors.ErrCodeServerFailed:
		fmt.Fprintf(h.Out, "❌ Presenter server failed: %v\n", err)
		if addr, ok := details["addr"]; ok {
			fmt.Fprintf(h.Out, "Is another process listening on %v? Try --addr.\n", addr)
		}

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if deckErr, ok := err.(*errors.DeckError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", deckErr.ToJSON())
		}
	}
	return err
}

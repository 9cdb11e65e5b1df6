package cli

import (
	"github.com/grovetools/deck/errors"
	"github.com/spf13/cobra"
)

// Execute runs root with styled help. Structured errors get an explanation
// from ErrorHandler; anything else, such as a bad flag, gets a usage hint.
func Execute(root *cobra.Command) error {
	root.SilenceErrors = true
	root.SilenceUsage = true
	ApplyStyledHelpRecursive(root)

	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}
	if cmd == nil {
		cmd = root
	}
	if errors.GetCode(err) == "" {
		PrintError(cmd, err)
		return err
	}
	h := NewErrorHandler(GetOptions(cmd).Verbose)
	h.Out = cmd.ErrOrStderr()
	return h.Handle(err)
}

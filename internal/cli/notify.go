package cli

import (
	"fmt"
	"io"
)

// terminalNotifier renders session notifications on the terminal, the CLI
// stand-in for toast popups.
type terminalNotifier struct {
	w io.Writer
}

func newTerminalNotifier(w io.Writer) *terminalNotifier {
	return &terminalNotifier{w: w}
}

func (n *terminalNotifier) Success(msg string) {
	fmt.Fprintln(n.w, msg)
}

func (n *terminalNotifier) Error(msg string) {
	fmt.Fprintln(n.w, "Error:", msg)
}

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const clearScreen = "\033[H\033[2J"

var (
	symCheck = "✔"
	symCross = "✖"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Clear wipes the screen and homes the cursor.
func Clear(w io.Writer) { fmt.Fprint(w, clearScreen) }

func (s Styles) OK(w io.Writer, msg string)   { fmt.Fprintln(w, s.Success.Render(symCheck+" "+msg)) }
func (s Styles) Fail(w io.Writer, msg string) { fmt.Fprintln(w, s.Error.Render(symCross+" "+msg)) }

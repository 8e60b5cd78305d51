package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Makepad-fr/budget/internal/ui"
)

// Options tune the line-mode loop.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Styles ui.Styles
	Clear  bool // wipe the screen before every menu
}

// Run drives the menu one line at a time until exit is chosen or input ends,
// and returns the process exit code.
func Run(r *Router, opt Options) int {
	sc := bufio.NewScanner(opt.In)
	read := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		if err := sc.Err(); err != nil {
			r.log.Warn().Err(err).Msg("reading input")
		}
		return "", false
	}

	var last Status
	for {
		if opt.Clear {
			ui.Clear(opt.Out)
		}
		fmt.Fprintln(opt.Out, opt.Styles.Panel(Screen(r, opt.Styles, last)))
		fmt.Fprint(opt.Out, r.Prompt())

		line, ok := read()
		if !ok {
			// End of input behaves like the exit entry.
			fmt.Fprintln(opt.Out)
			line = OpExit.Key()
		}
		last = r.Handle(line)

		// Name and amount questions are answered in place.
		for r.State() == AwaitingName || r.State() == AwaitingAmount {
			fmt.Fprint(opt.Out, r.Prompt())
			line, ok := read()
			if !ok {
				fmt.Fprintln(opt.Out)
			}
			last = r.Handle(line)
		}

		if r.State() == Done {
			opt.Styles.OK(opt.Out, last.Message)
			return 0
		}
	}
}

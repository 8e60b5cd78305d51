package cli

import (
	"fmt"

	"github.com/Makepad-fr/budget/internal/input"
	"github.com/Makepad-fr/budget/internal/ui"
)

// Op is a menu entry.
type Op int

const (
	OpNone Op = iota
	OpRegister
	OpSearch
	OpEdit
	OpDelete
	OpExit
)

// Menu is the display order; an entry's key is its position, 1-based.
var Menu = []Op{OpRegister, OpSearch, OpEdit, OpDelete, OpExit}

func (o Op) String() string {
	switch o {
	case OpRegister:
		return "register"
	case OpSearch:
		return "search"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	case OpExit:
		return "exit"
	}
	return "none"
}

// Label is the menu text.
func (o Op) Label() string {
	switch o {
	case OpRegister:
		return "Register item"
	case OpSearch:
		return "Search item"
	case OpEdit:
		return "Edit item"
	case OpDelete:
		return "Delete item"
	case OpExit:
		return "Exit"
	}
	return ""
}

// Key is the menu input that selects o, or "" when o is not on the menu.
func (o Op) Key() string {
	for i, m := range Menu {
		if m == o {
			return fmt.Sprint(i + 1)
		}
	}
	return ""
}

// ParseChoice maps "1".."5" to a menu entry.
func ParseChoice(s string) (Op, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > byte('0'+len(Menu)) {
		return OpNone, false
	}
	return Menu[s[0]-'1'], true
}

// Screen is the menu panel content: header, entries and the last status.
func Screen(r *Router, st ui.Styles, last Status) []string {
	count, total := r.Summary()
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %s",
			st.Title.Render("Budget"),
			st.Accent.Render("Items"), count,
			st.Accent.Render("Total"), input.Format(total),
		),
		"",
	}
	for _, op := range Menu {
		lines = append(lines, fmt.Sprintf("%s %s", st.Muted.Render(op.Key()+")"), op.Label()))
	}
	if !last.Empty() {
		lines = append(lines, "", last.Render(st))
	}
	return lines
}

package ui

import "strings"

// Panel frames lines in the theme border.
func (s Styles) Panel(lines []string) string {
	return s.Border.Render(strings.Join(lines, "\n"))
}

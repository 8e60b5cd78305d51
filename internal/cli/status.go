package cli

import "github.com/Makepad-fr/budget/internal/ui"

// Kind classifies a status for display.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindFound
	KindCanceled
	KindNotFound
	KindDuplicate
	KindInvalid
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFound:
		return "found"
	case KindCanceled:
		return "canceled"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindInvalid:
		return "invalid"
	case KindError:
		return "error"
	}
	return "none"
}

// Status is the outcome of the last input, shown on the next redraw.
// The zero Status means there is nothing to report.
type Status struct {
	Kind    Kind
	Message string
}

func (s Status) Empty() bool { return s.Kind == KindNone && s.Message == "" }

// Render colors the message by kind.
func (s Status) Render(st ui.Styles) string {
	switch s.Kind {
	case KindNone:
		return s.Message
	case KindSuccess, KindFound:
		return st.Success.Render(s.Message)
	case KindCanceled:
		return st.Muted.Render(s.Message)
	case KindNotFound, KindDuplicate, KindInvalid:
		return st.Pending.Render(s.Message)
	}
	return st.Error.Render(s.Message)
}

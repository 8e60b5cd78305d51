package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Makepad-fr/budget/internal/input"
	"github.com/Makepad-fr/budget/internal/items"
	"github.com/Makepad-fr/budget/internal/logger"
	"github.com/Makepad-fr/budget/internal/model"
)

// State is where the router is inside a flow.
type State int

const (
	MenuIdle State = iota
	AwaitingName
	AwaitingAmount
	Done
)

func (s State) String() string {
	switch s {
	case MenuIdle:
		return "menu"
	case AwaitingName:
		return "awaiting-name"
	case AwaitingAmount:
		return "awaiting-amount"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Repository is what the flows need from the item store.
type Repository interface {
	Exists(name string) bool
	Register(name string, amount float64) (model.Item, error)
	Search(name string) (model.Item, bool)
	Edit(name string, amount float64) (model.Item, error)
	Delete(name string) (int, error)
	Len() int
	Total() float64
}

// Router turns one line of input at a time into flow transitions and
// repository calls. Each call to Handle returns the status to show next.
type Router struct {
	repo   Repository
	log    zerolog.Logger
	state  State
	op     Op
	name   string
	amount float64
}

// NewRouter starts at the menu.
func NewRouter(repo Repository, log zerolog.Logger) *Router {
	return &Router{repo: repo, log: logger.Component(log, "router")}
}

// State is the current step of the flow.
func (r *Router) State() State { return r.state }

// Op is the flow in progress, OpNone at the menu.
func (r *Router) Op() Op { return r.op }

// Summary is the item count and amount total for the menu header.
func (r *Router) Summary() (count int, total float64) {
	return r.repo.Len(), r.repo.Total()
}

// Prompt is the question for the current state.
func (r *Router) Prompt() string {
	switch r.state {
	case AwaitingName:
		return "Item name (blank to cancel): "
	case AwaitingAmount:
		if r.op == OpEdit {
			return fmt.Sprintf("New amount for %q (blank to cancel): ", r.name)
		}
		return fmt.Sprintf("Amount for %q (blank to cancel): ", r.name)
	case Done:
		return ""
	}
	return "Choose an option [1-5]: "
}

// Handle feeds one line to the router. A panic inside a flow is turned into
// an error status and the router goes back to the menu.
func (r *Router) Handle(line string) (st Status) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().
				Str(logger.FieldOperation, r.op.String()).
				Interface("panic", rec).
				Msg("flow panicked")
			r.reset()
			st = failure()
		}
	}()

	line = strings.TrimSpace(line)
	switch r.state {
	case MenuIdle:
		return r.choose(line)
	case AwaitingName:
		return r.acceptName(line)
	case AwaitingAmount:
		return r.acceptAmount(line)
	}
	return Status{}
}

func (r *Router) choose(line string) Status {
	op, ok := ParseChoice(line)
	if !ok {
		r.log.Info().Str("choice", line).Str(logger.FieldOutcome, "invalid").Msg("menu choice rejected")
		return Status{Kind: KindInvalid, Message: fmt.Sprintf("Invalid choice %q. Pick an option from 1 to 5.", line)}
	}
	if op == OpExit {
		r.state = Done
		r.log.Info().Str(logger.FieldOperation, op.String()).Msg("exit requested")
		return Status{Kind: KindSuccess, Message: "Goodbye!"}
	}
	r.op = op
	r.state = AwaitingName
	return Status{}
}

func (r *Router) acceptName(name string) Status {
	if name == "" {
		return r.cancel()
	}
	r.name = name
	switch r.op {
	case OpRegister:
		if r.repo.Exists(name) {
			return r.finish(duplicate(name), nil)
		}
		r.state = AwaitingAmount
		return Status{}
	case OpEdit:
		if !r.repo.Exists(name) {
			return r.finish(notFound(name), nil)
		}
		r.state = AwaitingAmount
		return Status{}
	case OpSearch:
		return r.search()
	case OpDelete:
		return r.remove()
	}
	return r.finish(failure(), fmt.Errorf("no flow for %s", r.op))
}

func (r *Router) acceptAmount(raw string) Status {
	amount, ok := input.Sanitize(raw)
	if !ok {
		return r.cancel()
	}
	r.amount = amount
	switch r.op {
	case OpRegister:
		return r.register(amount)
	case OpEdit:
		return r.edit(amount)
	}
	return r.finish(failure(), fmt.Errorf("%s takes no amount", r.op))
}

func (r *Router) register(amount float64) Status {
	it, err := r.repo.Register(r.name, amount)
	switch {
	case errors.Is(err, items.ErrDuplicate):
		return r.finish(duplicate(r.name), nil)
	case err != nil:
		return r.finish(failure(), err)
	}
	return r.finish(Status{
		Kind:    KindSuccess,
		Message: fmt.Sprintf("Item %q registered with amount %s.", it.Name, input.Format(it.Amount)),
	}, nil)
}

func (r *Router) search() Status {
	it, ok := r.repo.Search(r.name)
	if !ok {
		return r.finish(notFound(r.name), nil)
	}
	return r.finish(Status{
		Kind:    KindFound,
		Message: fmt.Sprintf("Found %q with amount %s.", it.Name, input.Format(it.Amount)),
	}, nil)
}

func (r *Router) edit(amount float64) Status {
	it, err := r.repo.Edit(r.name, amount)
	switch {
	case errors.Is(err, items.ErrNotFound):
		return r.finish(notFound(r.name), nil)
	case err != nil:
		return r.finish(failure(), err)
	}
	return r.finish(Status{
		Kind:    KindSuccess,
		Message: fmt.Sprintf("Item %q updated to %s.", it.Name, input.Format(it.Amount)),
	}, nil)
}

func (r *Router) remove() Status {
	n, err := r.repo.Delete(r.name)
	if err != nil {
		return r.finish(failure(), err)
	}
	if n == 0 {
		return r.finish(notFound(r.name), nil)
	}
	msg := fmt.Sprintf("Item %q deleted.", r.name)
	if n > 1 {
		msg = fmt.Sprintf("Deleted %d items named %q.", n, r.name)
	}
	return r.finish(Status{Kind: KindSuccess, Message: msg}, nil)
}

func (r *Router) cancel() Status {
	r.log.Info().Str(logger.FieldOperation, r.op.String()).Str(logger.FieldOutcome, "canceled").Msg("flow canceled")
	r.reset()
	return Status{Kind: KindCanceled, Message: "Operation canceled."}
}

// finish logs the outcome of the flow and returns to the menu.
func (r *Router) finish(st Status, err error) Status {
	ev := r.log.Info()
	if err != nil {
		ev = r.log.Error().Err(err)
	}
	if r.state == AwaitingAmount {
		ev = ev.Float64(logger.FieldAmount, r.amount)
	}
	ev.Str(logger.FieldOperation, r.op.String()).
		Str(logger.FieldName, r.name).
		Str(logger.FieldOutcome, st.Kind.String()).
		Msg(st.Message)
	r.reset()
	return st
}

func (r *Router) reset() {
	r.state = MenuIdle
	r.op = OpNone
	r.name = ""
	r.amount = 0
}

func notFound(name string) Status {
	return Status{Kind: KindNotFound, Message: fmt.Sprintf("Item %q not found.", name)}
}

func duplicate(name string) Status {
	return Status{Kind: KindDuplicate, Message: fmt.Sprintf("Item %q already exists.", name)}
}

func failure() Status {
	return Status{Kind: KindError, Message: "Something went wrong. See the log for details."}
}

// Package confirm implements the confirmation gate placed in front of
// destructive control actions.
package confirm

import (
	"sync"

	"github.com/alexisbeaulieu97/tokenkit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

// Default labels for the two choices of a prompt.
const (
	DefaultConfirmLabel = "OK"
	DefaultCancelLabel  = "Cancel"
)

// Request is attached to a control whose action must be confirmed before it
// runs. OnCancel is optional.
type Request struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	OnCancel    func()
}

// Prompt is what a Presenter shows: the request text with labels defaulted.
type Prompt struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

// Prompt returns the presentable form of r.
func (r *Request) Prompt() Prompt {
	p := Prompt{
		Title:        r.Title,
		Message:      r.Message,
		ConfirmLabel: r.ConfirmText,
		CancelLabel:  r.CancelText,
	}
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = DefaultConfirmLabel
	}
	if p.CancelLabel == "" {
		p.CancelLabel = DefaultCancelLabel
	}
	return p
}

// Decision is the user's answer to a prompt.
type Decision int

const (
	Confirmed Decision = iota
	Cancelled
	// Dismissed means the prompt was closed without choosing. It is handled
	// as Cancelled.
	Dismissed
)

func (d Decision) String() string {
	switch d {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Presenter shows a prompt and reports the decision through decide, once.
// Present must not block waiting for the user; decide may be called later
// from the presenter's own event loop.
type Presenter interface {
	Present(p Prompt, decide func(Decision))
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(p Prompt, decide func(Decision))

// Present implements Presenter.
func (f PresenterFunc) Present(p Prompt, decide func(Decision)) {
	f(p, decide)
}

// Outcome reports what Guard did with an action.
type Outcome int

const (
	// Invoked means the action ran synchronously.
	Invoked Outcome = iota
	// Suspended means a prompt is open and the action waits for its decision.
	Suspended
	// Dropped means a prompt was already open and the press was ignored.
	Dropped
	// Declined means the request was resolved as dismissed on the spot, with
	// no prompt left open; OnCancel has already run.
	Declined
)

// Gate guards the action of one control. At most one prompt is open per gate.
type Gate struct {
	presenter Presenter
	control   string
	log       *logger.Logger
	onError   func(error)

	mu      sync.Mutex
	pending bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(g *Gate) { g.log = log }
}

// WithControl names the control the gate belongs to in logs and errors.
func WithControl(name string) Option {
	return func(g *Gate) { g.control = name }
}

// WithErrorHandler receives failures of actions that ran after a
// confirmation, as *errors.ActionError. The default logs them.
func WithErrorHandler(fn func(error)) Option {
	return func(g *Gate) { g.onError = fn }
}

// New creates a gate that shows prompts through presenter. Without a
// presenter every guarded action is treated as dismissed.
func New(presenter Presenter, opts ...Option) *Gate {
	g := &Gate{presenter: presenter}
	for _, opt := range opts {
		opt(g)
	}
	if g.control != "" {
		g.log = g.log.WithField("control", g.control)
	}
	if g.onError == nil {
		g.onError = func(err error) { g.log.Error(err, "confirmed action failed") }
	}
	return g
}

// Pending reports whether a prompt is open.
func (g *Gate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Guard runs action directly when req is nil and returns its error
// unchanged. Otherwise it presents req and returns Suspended; the action runs
// once if the user confirms, and req.OnCancel runs once if they cancel or
// dismiss the prompt. Without a presenter the request is dismissed at once
// and Guard returns Declined.
func (g *Gate) Guard(action func() error, req *Request) (Outcome, error) {
	if req == nil {
		if action == nil {
			return Invoked, nil
		}
		return Invoked, action()
	}

	g.mu.Lock()
	if g.pending {
		g.mu.Unlock()
		g.log.Debug("confirmation already pending, press dropped")
		return Dropped, nil
	}
	g.pending = true
	g.mu.Unlock()

	var once sync.Once
	decide := func(d Decision) {
		once.Do(func() { g.resolve(d, action, req) })
	}

	if g.presenter == nil {
		g.log.Warn("no confirmation presenter, dismissing")
		decide(Dismissed)
		return Declined, nil
	}

	g.log.WithField("title", req.Title).Debug("confirmation requested")
	g.presenter.Present(req.Prompt(), decide)
	return Suspended, nil
}

func (g *Gate) resolve(d Decision, action func() error, req *Request) {
	g.mu.Lock()
	g.pending = false
	g.mu.Unlock()

	g.log.WithField("decision", d.String()).Debug("confirmation resolved")

	if d != Confirmed {
		if req.OnCancel != nil {
			req.OnCancel()
		}
		return
	}
	if action == nil {
		return
	}
	if err := action(); err != nil {
		g.onError(tkerrors.NewActionError(g.control, err))
	}
}

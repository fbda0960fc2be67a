// Package control implements the interaction state machine behind a
// pressable control: press feedback (haptic pulse, spring scale), the
// disabled and loading overrides, and the optional confirmation gate in
// front of the action.
//
// A Control is owned by one rendered control and driven from that control's
// event loop. It is not safe for concurrent use.
package control

import (
	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
	"github.com/alexisbeaulieu97/tokenkit/internal/logger"
)

// DefaultPressedScale is the scale a control compresses to while pressed.
const DefaultPressedScale = 0.98

// Options configures the press feedback of a control. Haptics and animation
// are independent: turning one off never affects the other.
type Options struct {
	Haptic          bool
	HapticIntensity Intensity
	AnimateOnPress  bool
	Spring          SpringConfig
	PressedScale    float64
}

// DefaultOptions enables both feedback channels with the default spring.
func DefaultOptions() Options {
	return Options{
		Haptic:          true,
		HapticIntensity: IntensityLight,
		AnimateOnPress:  true,
		Spring:          DefaultSpring,
		PressedScale:    DefaultPressedScale,
	}
}

// Deps are the collaborators a control talks to. Every field is optional.
type Deps struct {
	Haptics   Haptics
	Animator  Animator
	Presenter confirm.Presenter
	Logger    *logger.Logger
	// OnError receives failures of actions that ran after a confirmation.
	OnError func(error)
}

// State is the runtime state of a control.
type State struct {
	Disabled bool
	Loading  bool
	Pressed  bool
}

// Interactive reports whether gestures reach the control.
func (s State) Interactive() bool {
	return !s.Disabled && !s.Loading
}

// Handlers are the gesture callbacks a renderer forwards raw events to.
type Handlers struct {
	OnPressIn  func() bool
	OnPressOut func()
	OnCancel   func()
	OnPress    func() error
}

// Control is the state machine of one control.
type Control struct {
	name    string
	action  func() error
	request *confirm.Request
	opts    Options

	haptics  Haptics
	animator Animator
	gate     *confirm.Gate
	log      *logger.Logger

	state State
	// displaced is set while the last commanded scale target is not 1.
	displaced bool
}

// New creates a control named name that runs action on a completed press.
// When request is non-nil the action is guarded by a confirmation prompt.
func New(name string, action func() error, request *confirm.Request, opts Options, deps Deps) *Control {
	if opts.PressedScale <= 0 || opts.PressedScale > 1 {
		opts.PressedScale = DefaultPressedScale
	}
	opts.Spring = opts.Spring.orDefault()
	if opts.HapticIntensity == "" {
		opts.HapticIntensity = IntensityLight
	}

	log := deps.Logger.WithField("control", name)
	gateOpts := []confirm.Option{confirm.WithControl(name), confirm.WithLogger(deps.Logger)}
	if deps.OnError != nil {
		gateOpts = append(gateOpts, confirm.WithErrorHandler(deps.OnError))
	}

	return &Control{
		name:     name,
		action:   action,
		request:  request,
		opts:     opts,
		haptics:  deps.Haptics,
		animator: deps.Animator,
		gate:     confirm.New(deps.Presenter, gateOpts...),
		log:      log,
	}
}

// Name returns the control name.
func (c *Control) Name() string {
	return c.name
}

// State returns a copy of the current state.
func (c *Control) State() State {
	return c.state
}

// Options returns the feedback options in effect.
func (c *Control) Options() Options {
	return c.opts
}

// ConfirmationPending reports whether a confirmation prompt is open.
func (c *Control) ConfirmationPending() bool {
	return c.gate.Pending()
}

// Handlers returns the gesture callbacks bound to c.
func (c *Control) Handlers() Handlers {
	return Handlers{
		OnPressIn:  c.PressIn,
		OnPressOut: c.PressOut,
		OnCancel:   c.Cancel,
		OnPress:    c.Press,
	}
}

// PressIn starts a gesture. It is rejected while disabled or loading, in
// which case nothing fires and false is returned. Otherwise the haptic pulse
// is issued before the scale-down animation starts.
func (c *Control) PressIn() bool {
	if !c.state.Interactive() {
		c.log.Debug("press-in ignored while disabled or loading")
		return false
	}
	c.state.Pressed = true
	if c.opts.Haptic {
		c.pulse()
	}
	if c.opts.AnimateOnPress {
		c.animateTo(c.opts.PressedScale)
	}
	return true
}

// PressOut ends a gesture and springs the scale back to 1.
func (c *Control) PressOut() {
	c.state.Pressed = false
	c.settle()
}

// Cancel abandons a gesture without invoking the action. The scale reset
// still happens.
func (c *Control) Cancel() {
	c.PressOut()
}

// Press invokes the action for a completed gesture. While disabled or loading
// the press is dropped and nil is returned. With a confirmation request the
// action is suspended behind the prompt and Press returns nil; otherwise the
// action runs synchronously and its error is returned unchanged. Either way
// the scale is left settled.
func (c *Control) Press() error {
	if !c.state.Interactive() {
		c.log.Debug("press dropped while disabled or loading")
		return nil
	}
	defer c.settle()

	outcome, err := c.gate.Guard(c.action, c.request)
	switch outcome {
	case confirm.Suspended:
		c.log.Debug("press awaiting confirmation")
	case confirm.Dropped:
		c.log.Debug("press dropped while confirmation pending")
	case confirm.Declined:
		c.log.Debug("press declined without a confirmation presenter")
	}
	return err
}

// Tap runs a full gesture: press-in, press-out, then invoke. It returns the
// action error, or nil if the press-in was rejected.
func (c *Control) Tap() error {
	if !c.PressIn() {
		return nil
	}
	c.PressOut()
	return c.Press()
}

// SetLoading updates the caller-driven loading flag. Entering loading while
// the scale is displaced resets it to 1 once.
func (c *Control) SetLoading(loading bool) {
	entering := loading && !c.state.Loading
	c.state.Loading = loading
	if entering && c.displaced {
		c.log.Debug("loading started mid-press, resetting scale")
		c.animateTo(1)
	}
}

// SetDisabled updates the caller-driven disabled flag.
func (c *Control) SetDisabled(disabled bool) {
	c.state.Disabled = disabled
}

func (c *Control) settle() {
	if c.displaced {
		c.animateTo(1)
	}
}

func (c *Control) animateTo(target float64) {
	c.displaced = target != 1
	if c.animator == nil {
		return
	}
	c.animator.AnimateTo(target, c.opts.Spring)
}

func (c *Control) pulse() {
	if c.haptics == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.WithField("panic", r).Warn("haptic pulse failed")
		}
	}()
	c.haptics.Pulse(c.opts.HapticIntensity)
}

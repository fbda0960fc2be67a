package control

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/harmonica"
)

// Intensity is the strength of a haptic pulse.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
)

// ParseIntensity parses an intensity name, defaulting to IntensityLight.
func ParseIntensity(s string) Intensity {
	switch Intensity(strings.ToLower(strings.TrimSpace(s))) {
	case IntensityMedium:
		return IntensityMedium
	case IntensityHeavy:
		return IntensityHeavy
	default:
		return IntensityLight
	}
}

// Haptics emits an impact pulse. Pulse must return promptly; the control
// does not wait on the device.
type Haptics interface {
	Pulse(intensity Intensity)
}

// HapticsFunc adapts a function to Haptics.
type HapticsFunc func(Intensity)

// Pulse implements Haptics.
func (f HapticsFunc) Pulse(intensity Intensity) { f(intensity) }

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Damping   float64 `yaml:"damping" validate:"gt=0"`
	Stiffness float64 `yaml:"stiffness" validate:"gt=0"`
	Mass      float64 `yaml:"mass" validate:"gt=0"`
}

// DefaultSpring is a stiff, light spring that settles a press in a few frames.
var DefaultSpring = SpringConfig{Damping: 20, Stiffness: 600, Mass: 0.5}

func (s SpringConfig) orDefault() SpringConfig {
	if s.Damping <= 0 || s.Stiffness <= 0 || s.Mass <= 0 {
		return DefaultSpring
	}
	return s
}

// AngularFrequency is sqrt(stiffness/mass).
func (s SpringConfig) AngularFrequency() float64 {
	s = s.orDefault()
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is damping / (2*sqrt(stiffness*mass)).
func (s SpringConfig) DampingRatio() float64 {
	s = s.orDefault()
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Animator drives the control's scale factor. AnimateTo starts a new
// animation or redirects the running one; the control never reads frames.
type Animator interface {
	AnimateTo(target float64, spring SpringConfig)
}

// SpringAnimator is an Animator integrated frame by frame with a harmonica
// spring. The owner calls Step once per frame and renders Scale.
type SpringAnimator struct {
	mu     sync.Mutex
	fps    int
	config SpringConfig
	spring harmonica.Spring

	pos    float64
	vel    float64
	target float64
}

const settleEpsilon = 1e-3

// NewSpringAnimator creates an animator at rest at scale 1 that steps at fps.
func NewSpringAnimator(fps int) *SpringAnimator {
	if fps <= 0 {
		fps = 60
	}
	a := &SpringAnimator{fps: fps, pos: 1, target: 1}
	a.configure(DefaultSpring)
	return a
}

func (a *SpringAnimator) configure(cfg SpringConfig) {
	a.config = cfg
	a.spring = harmonica.NewSpring(harmonica.FPS(a.fps), cfg.AngularFrequency(), cfg.DampingRatio())
}

// AnimateTo implements Animator. The current velocity is kept so a redirect
// mid-flight stays continuous.
func (a *SpringAnimator) AnimateTo(target float64, spring SpringConfig) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if spring = spring.orDefault(); spring != a.config {
		a.configure(spring)
	}
	a.target = target
}

// Step advances one frame and reports whether the spring has settled.
func (a *SpringAnimator) Step() (scale float64, settled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.restingLocked() {
		return a.pos, true
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.restingLocked() || (math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon) {
		a.pos, a.vel = a.target, 0
		return a.pos, true
	}
	return a.pos, false
}

func (a *SpringAnimator) restingLocked() bool {
	return a.pos == a.target && a.vel == 0
}

// Scale returns the current scale factor.
func (a *SpringAnimator) Scale() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pos
}

// Settled reports whether the animator is at rest on its target.
func (a *SpringAnimator) Settled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.restingLocked()
}

// FPS returns the frame rate the animator integrates at.
func (a *SpringAnimator) FPS() int {
	return a.fps
}

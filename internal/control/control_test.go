package control

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokenkit/internal/confirm"
)

type recorder struct {
	events  []string
	pulses  []Intensity
	targets []float64
}

func (r *recorder) Pulse(intensity Intensity) {
	r.events = append(r.events, "pulse")
	r.pulses = append(r.pulses, intensity)
}

func (r *recorder) AnimateTo(target float64, _ SpringConfig) {
	r.events = append(r.events, "animate")
	r.targets = append(r.targets, target)
}

type modal struct {
	prompt confirm.Prompt
	decide func(confirm.Decision)
}

func (m *modal) Present(p confirm.Prompt, decide func(confirm.Decision)) {
	m.prompt = p
	m.decide = decide
}

func newControl(t *testing.T, action func() error, req *confirm.Request, opts Options) (*Control, *recorder, *modal) {
	t.Helper()
	rec := &recorder{}
	m := &modal{}
	c := New("test", action, req, opts, Deps{Haptics: rec, Animator: rec, Presenter: m})
	return c, rec, m
}

func TestPressInFiresPulseBeforeAnimation(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.HapticIntensity = IntensityHeavy
	c, rec, _ := newControl(t, nil, nil, opts)

	require.True(t, c.PressIn())
	assert.True(t, c.State().Pressed)
	assert.Equal(t, []string{"pulse", "animate"}, rec.events)
	assert.Equal(t, []Intensity{IntensityHeavy}, rec.pulses)
	assert.Equal(t, []float64{DefaultPressedScale}, rec.targets)

	c.PressOut()
	assert.False(t, c.State().Pressed)
	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets)
}

func TestPressInWhileDisabledHasNoSideEffects(t *testing.T) {
	t.Parallel()

	c, rec, _ := newControl(t, nil, nil, DefaultOptions())
	c.SetDisabled(true)

	assert.False(t, c.PressIn())
	assert.False(t, c.State().Pressed)
	assert.Empty(t, rec.events)
}

func TestPressInWhileLoadingHasNoSideEffects(t *testing.T) {
	t.Parallel()

	c, rec, _ := newControl(t, nil, nil, DefaultOptions())
	c.SetLoading(true)

	assert.False(t, c.PressIn())
	assert.Empty(t, rec.events)
}

func TestHapticsAndAnimationAreIndependent(t *testing.T) {
	t.Parallel()

	noHaptic := DefaultOptions()
	noHaptic.Haptic = false
	c, rec, _ := newControl(t, nil, nil, noHaptic)
	c.PressIn()
	assert.Empty(t, rec.pulses)
	assert.Equal(t, []float64{DefaultPressedScale}, rec.targets)

	noAnimation := DefaultOptions()
	noAnimation.AnimateOnPress = false
	c, rec, _ = newControl(t, nil, nil, noAnimation)
	c.PressIn()
	c.PressOut()
	assert.Len(t, rec.pulses, 1)
	assert.Empty(t, rec.targets)
}

func TestLoadingResetsDisplacedScaleOnce(t *testing.T) {
	t.Parallel()

	c, rec, _ := newControl(t, nil, nil, DefaultOptions())
	c.PressIn()

	c.SetLoading(true)
	c.SetLoading(true)
	c.SetLoading(true)

	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets)

	c.PressOut()
	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets, "already settled")
}

func TestLoadingAtRestDoesNotAnimate(t *testing.T) {
	t.Parallel()

	c, rec, _ := newControl(t, nil, nil, DefaultOptions())
	c.SetLoading(true)
	c.SetLoading(false)
	c.SetLoading(true)

	assert.Empty(t, rec.targets)
}

func TestTapWithoutConfirmationRunsActionOnce(t *testing.T) {
	t.Parallel()

	var order []string
	calls := 0
	rec := &recorder{}
	c := New("save", func() error {
		calls++
		order = append(order, "action")
		return nil
	}, nil, DefaultOptions(), Deps{
		Haptics:  HapticsFunc(func(Intensity) { order = append(order, "pulse") }),
		Animator: rec,
	})

	require.NoError(t, c.Tap())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"pulse", "action"}, order)
	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets)
}

func TestPressWhileLoadingIsDropped(t *testing.T) {
	t.Parallel()

	calls := 0
	c, _, _ := newControl(t, func() error { calls++; return nil }, nil, DefaultOptions())
	c.SetLoading(true)

	require.NoError(t, c.Press())
	require.NoError(t, c.Tap())
	assert.Equal(t, 0, calls)
}

func TestPressPropagatesActionErrorAndSettles(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c, rec, _ := newControl(t, func() error { return boom }, nil, DefaultOptions())

	require.True(t, c.PressIn())
	err := c.Press()

	assert.Same(t, boom, err)
	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets)
}

func TestCancelResetsScaleWithoutInvoking(t *testing.T) {
	t.Parallel()

	calls := 0
	c, rec, _ := newControl(t, func() error { calls++; return nil }, nil, DefaultOptions())

	c.PressIn()
	c.Cancel()

	assert.Equal(t, 0, calls)
	assert.False(t, c.State().Pressed)
	assert.Equal(t, []float64{DefaultPressedScale, 1}, rec.targets)
}

func TestConfirmedPressRunsActionOnce(t *testing.T) {
	t.Parallel()

	calls, cancels := 0, 0
	req := &confirm.Request{Title: "Delete account", OnCancel: func() { cancels++ }}
	c, _, m := newControl(t, func() error { calls++; return nil }, req, DefaultOptions())

	require.NoError(t, c.Tap())
	assert.Equal(t, 0, calls)
	assert.True(t, c.ConfirmationPending())
	assert.Equal(t, "Delete account", m.prompt.Title)
	assert.Equal(t, "OK", m.prompt.ConfirmLabel)

	require.NoError(t, c.Tap())
	m.decide(confirm.Confirmed)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, cancels)
	assert.False(t, c.ConfirmationPending())
}

func TestCancelledPressRunsOnCancelOnce(t *testing.T) {
	t.Parallel()

	calls, cancels := 0, 0
	req := &confirm.Request{OnCancel: func() { cancels++ }}
	c, _, m := newControl(t, func() error { calls++; return nil }, req, DefaultOptions())

	require.NoError(t, c.Tap())
	m.decide(confirm.Cancelled)
	m.decide(confirm.Confirmed)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, cancels)
}

func TestConfirmedActionErrorGoesToHandler(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var reported error
	m := &modal{}
	c := New("purge", func() error { return boom }, &confirm.Request{}, DefaultOptions(), Deps{
		Presenter: m,
		OnError:   func(err error) { reported = err },
	})

	require.NoError(t, c.Tap())
	m.decide(confirm.Confirmed)

	assert.ErrorIs(t, reported, boom)
}

func TestPanickingHapticsDoesNotBlockAnimation(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := New("x", nil, nil, DefaultOptions(), Deps{
		Haptics:  HapticsFunc(func(Intensity) { panic("device gone") }),
		Animator: rec,
	})

	assert.True(t, c.PressIn())
	assert.Equal(t, []float64{DefaultPressedScale}, rec.targets)
}

func TestNewNormalisesOptions(t *testing.T) {
	t.Parallel()

	c := New("x", nil, nil, Options{PressedScale: 3}, Deps{})
	assert.Equal(t, DefaultPressedScale, c.Options().PressedScale)
	assert.Equal(t, DefaultSpring, c.Options().Spring)
	assert.Equal(t, IntensityLight, c.Options().HapticIntensity)
}

func TestConfirmationWithoutPresenterCancels(t *testing.T) {
	t.Parallel()

	calls, cancels := 0, 0
	req := &confirm.Request{Title: "Delete?", OnCancel: func() { cancels++ }}
	c := New("delete", func() error { calls++; return nil }, req, DefaultOptions(), Deps{})

	require.NoError(t, c.Tap())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, cancels)
	assert.False(t, c.ConfirmationPending())
}

func TestHandlersAreBound(t *testing.T) {
	t.Parallel()

	calls := 0
	c, _, _ := newControl(t, func() error { calls++; return nil }, nil, DefaultOptions())
	h := c.Handlers()

	require.True(t, h.OnPressIn())
	h.OnPressOut()
	require.NoError(t, h.OnPress())
	assert.Equal(t, 1, calls)
}

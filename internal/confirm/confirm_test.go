package confirm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

// recordingPresenter keeps the last prompt and its decide callback so the
// test can answer later, like a real modal would.
type recordingPresenter struct {
	prompts []Prompt
	decide  func(Decision)
}

func (p *recordingPresenter) Present(prompt Prompt, decide func(Decision)) {
	p.prompts = append(p.prompts, prompt)
	p.decide = decide
}

func TestGuardWithoutRequestRunsSynchronously(t *testing.T) {
	t.Parallel()

	calls := 0
	gate := New(&recordingPresenter{})
	outcome, err := gate.Guard(func() error { calls++; return nil }, nil)

	require.NoError(t, err)
	assert.Equal(t, Invoked, outcome)
	assert.Equal(t, 1, calls)
}

func TestGuardWithoutRequestPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	gate := New(nil)
	_, err := gate.Guard(func() error { return boom }, nil)

	assert.Same(t, boom, err)
}

func TestGuardConfirmRunsActionOnce(t *testing.T) {
	t.Parallel()

	presenter := &recordingPresenter{}
	gate := New(presenter)
	calls, cancels := 0, 0
	req := &Request{Title: "Delete", Message: "Really?", OnCancel: func() { cancels++ }}

	outcome, err := gate.Guard(func() error { calls++; return nil }, req)
	require.NoError(t, err)
	assert.Equal(t, Suspended, outcome)
	assert.Equal(t, 0, calls)
	assert.True(t, gate.Pending())

	presenter.decide(Confirmed)
	presenter.decide(Confirmed)
	presenter.decide(Cancelled)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, cancels)
	assert.False(t, gate.Pending())
}

func TestGuardCancelRunsOnCancelOnce(t *testing.T) {
	t.Parallel()

	for _, decision := range []Decision{Cancelled, Dismissed} {
		presenter := &recordingPresenter{}
		gate := New(presenter)
		calls, cancels := 0, 0
		req := &Request{OnCancel: func() { cancels++ }}

		_, err := gate.Guard(func() error { calls++; return nil }, req)
		require.NoError(t, err)

		presenter.decide(decision)
		presenter.decide(decision)

		assert.Equal(t, 0, calls, decision.String())
		assert.Equal(t, 1, cancels, decision.String())
	}
}

func TestGuardDropsPressWhilePending(t *testing.T) {
	t.Parallel()

	presenter := &recordingPresenter{}
	gate := New(presenter)
	calls := 0
	action := func() error { calls++; return nil }
	req := &Request{Title: "Delete"}

	_, _ = gate.Guard(action, req)
	outcome, err := gate.Guard(action, req)

	require.NoError(t, err)
	assert.Equal(t, Dropped, outcome)
	assert.Len(t, presenter.prompts, 1)

	presenter.decide(Confirmed)
	assert.Equal(t, 1, calls)

	outcome, _ = gate.Guard(action, req)
	assert.Equal(t, Suspended, outcome)
}

func TestGuardReportsConfirmedActionFailure(t *testing.T) {
	t.Parallel()

	presenter := &recordingPresenter{}
	var reported error
	gate := New(presenter, WithControl("delete"), WithErrorHandler(func(err error) { reported = err }))
	boom := errors.New("boom")

	_, err := gate.Guard(func() error { return boom }, &Request{})
	require.NoError(t, err)
	presenter.decide(Confirmed)

	var actionErr *tkerrors.ActionError
	require.ErrorAs(t, reported, &actionErr)
	assert.Equal(t, "delete", actionErr.Control)
	assert.ErrorIs(t, reported, boom)
}

func TestGuardWithoutPresenterDismisses(t *testing.T) {
	t.Parallel()

	calls, cancels := 0, 0
	gate := New(nil)
	outcome, err := gate.Guard(func() error { calls++; return nil }, &Request{OnCancel: func() { cancels++ }})

	require.NoError(t, err)
	assert.Equal(t, Declined, outcome)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, cancels)
	assert.False(t, gate.Pending())
}

func TestRequestPromptDefaultsLabels(t *testing.T) {
	t.Parallel()

	p := (&Request{Title: "Sign out"}).Prompt()
	assert.Equal(t, Prompt{Title: "Sign out", ConfirmLabel: "OK", CancelLabel: "Cancel"}, p)

	p = (&Request{ConfirmText: "Delete", CancelText: "Keep"}).Prompt()
	assert.Equal(t, "Delete", p.ConfirmLabel)
	assert.Equal(t, "Keep", p.CancelLabel)
}

func TestPresenterFunc(t *testing.T) {
	t.Parallel()

	gate := New(PresenterFunc(func(_ Prompt, decide func(Decision)) { decide(Confirmed) }))
	calls := 0
	outcome, err := gate.Guard(func() error { calls++; return nil }, &Request{})

	require.NoError(t, err)
	assert.Equal(t, Suspended, outcome)
	assert.Equal(t, 1, calls)
}

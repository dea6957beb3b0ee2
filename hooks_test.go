package uncover_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jonwillia.ms/uncover"
)

func TestDisabledHooksAreNoOps(t *testing.T) {
	s := uncover.NewStore()
	cov := uncover.EnableIf(func() bool { return false }).WithStore(s)
	func() {
		defer cov.Covers(t, "quux")()
		cov.CoveredBy("quux")
	}()
	require.Zero(t, s.Get("quux"), "disabled hooks must never touch the store")
}

func TestZeroValueHooksAreDisabled(t *testing.T) {
	var cov uncover.Hooks
	defer cov.Covers(t, "quux")()
	cov.CoveredBy("quux")
}

func TestEnabledHooksRoundTrip(t *testing.T) {
	s := uncover.NewStore()
	cov := uncover.EnableIf(func() bool { return true }).WithStore(s)
	func() {
		defer cov.Covers(t, "bar")()
		cov.CoveredBy("bar")
	}()
	require.EqualValues(t, 1, s.Get("bar"))
}

func TestCoversFailureNamesMark(t *testing.T) {
	cov := uncover.EnableIf(func() bool { return true }).WithStore(uncover.NewStore())
	ft := &fakeTB{}
	done := cov.Covers(ft, "bar")
	noop()
	done()
	require.True(t, ft.failed)
	require.Equal(t, `not covered: "bar"`, ft.msg)
}

func noop() {}

func TestCoversSuppressedDuringUnrelatedPanic(t *testing.T) {
	cov := uncover.EnableIf(func() bool { return true }).WithStore(uncover.NewStore())
	ft := &fakeTB{}
	require.PanicsWithValue(t, "boom", func() {
		defer cov.Covers(ft, "never recorded")()
		panic("boom")
	})
	require.False(t, ft.failed)
}

func TestConditionEvaluatedPerCall(t *testing.T) {
	s := uncover.NewStore()
	on := false
	cov := uncover.EnableIf(func() bool { return on }).WithStore(s)

	cov.CoveredBy("toggle")
	require.Zero(t, s.Get("toggle"))

	on = true
	cov.CoveredBy("toggle")
	require.EqualValues(t, 1, s.Get("toggle"))

	on = false
	cov.CoveredBy("toggle")
	require.EqualValues(t, 1, s.Get("toggle"))
}

func TestHooksShareGlobalStore(t *testing.T) {
	a := uncover.EnableIf(func() bool { return true })
	b := uncover.EnableIf(func() bool { return true })
	defer b.Covers(t, "hooks shared mark")()
	a.CoveredBy("hooks shared mark")
}

package uncover

import "testing"

// Hooks is a pair of call-site operations, Covers and CoveredBy, bound to
// one shared Store and gated by an enablement condition. Each consuming
// package defines its own Hooks once:
//
//	var cov = uncover.EnableIf(func() bool { return debug })
//
// All Hooks built with EnableIf share the Global store, so a CoveredBy in
// one package satisfies a Covers for the same mark anywhere else in the
// process. The zero value is permanently disabled.
type Hooks struct {
	enabled func() bool
	store   *Store
}

// EnableIf returns Hooks bound to the Global store. The condition is
// evaluated on every Covers and CoveredBy call, never cached, so it may
// consult a runtime-checked debug or CI flag. While the condition is
// false both operations are complete no-ops: no lock, no store access,
// and a disabled Covers can never fail.
func EnableIf(enabled func() bool) Hooks {
	return Hooks{enabled: enabled, store: Global()}
}

// WithStore rebinds the hooks to s instead of the Global store.
func (h Hooks) WithStore(s *Store) Hooks {
	h.store = s
	return h
}

func (h Hooks) on() bool {
	return h.enabled != nil && h.enabled()
}

// CoveredBy records one hit for mark. Call it from the code path a test
// declares an expectation for.
func (h Hooks) CoveredBy(mark string) {
	if !h.on() {
		return
	}
	h.store.Record(mark)
}

// Covers begins an expectation scope for mark, to be used in statement
// position at the top of the scope:
//
//	defer cov.Covers(t, "wrong dashes")()
//
// The returned func performs the guard's check and must be the deferred
// call itself, as shown, so that an unrelated in-flight panic suppresses
// the check instead of being shadowed by it. Failure is reported through
// t and names the unmet mark.
func (h Hooks) Covers(t testing.TB, mark string) func() {
	if !h.on() {
		return func() {}
	}
	g := h.store.Covers(mark)
	return func() {
		if r := recover(); r != nil {
			panic(r)
		}
		g.check(t)
	}
}

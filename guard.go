package uncover

import (
	"fmt"
	"testing"
)

// A Guard is the scoped half of a coverage expectation. It snapshots a
// mark's hit count at creation; releasing it verifies the count grew,
// i.e. that the mark was recorded at some point during the guard's scope.
// A Guard belongs to the scope that created it and must not be shared
// across goroutines.
type Guard struct {
	store *Store
	mark  string
	seen  uint64
}

// Covers begins an expectation scope for mark. Release the guard at the
// end of the same scope with a single deferred Done or DoneT call.
func (s *Store) Covers(mark string) *Guard {
	return &Guard{store: s, mark: mark, seen: s.Get(mark)}
}

// Done verifies the guard's mark was recorded since the guard was
// created, panicking with `not covered: "<mark>"` if it was not. It must
// be deferred directly (defer g.Done()): if the scope is already
// unwinding from an unrelated panic, Done re-raises that panic untouched
// instead of adding a second failure.
func (g *Guard) Done() {
	if r := recover(); r != nil {
		panic(r)
	}
	g.check(nil)
}

// DoneT is Done for test scopes: the failure is reported through
// t.Fatalf, so it aborts the owning test rather than the process. The
// check is skipped when t has already failed. Like Done it must be
// deferred directly.
func (g *Guard) DoneT(t testing.TB) {
	if r := recover(); r != nil {
		panic(r)
	}
	g.check(t)
}

func (g *Guard) check(t testing.TB) {
	if t != nil && t.Failed() {
		return
	}
	if g.seen < g.store.Get(g.mark) {
		return
	}
	if t != nil {
		t.Helper()
		t.Fatalf("not covered: %q", g.mark)
		return
	}
	panic(fmt.Sprintf("not covered: %q", g.mark))
}

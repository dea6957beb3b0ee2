// Package uncover makes tests easier to maintain by letting code and tests
// answer two questions about each other:
//
//   - Which code is exercised by this test?
//   - Which test covers this bit of code?
//
// Code under test announces a named mark with CoveredBy; a test declares
// that it expects the mark with Covers. At the end of the declaring scope
// the expectation is checked, which catches tests that look like they
// exercise a branch but do not:
//
//	var cov = uncover.EnableIf(func() bool { return os.Getenv("CI") == "1" })
//
//	func parseDate(s string) (y, m, d int, ok bool) {
//		if len(s) != 10 {
//			cov.CoveredBy("short date")
//			return 0, 0, 0, false
//		}
//		// ...
//	}
//
//	func TestParseDate(t *testing.T) {
//		defer cov.Covers(t, "short date")()
//		_, _, _, ok := parseDate("92")
//		// fails with `not covered: "short date"` if the branch never ran
//	}
//
// Coverage is tracked in shared mutable state keyed only by mark name, so
// one caveat applies: a Covers in one test might be satisfied by another
// test's goroutine recording the same mark concurrently. A test can
// therefore pass when it should have failed. The error in the opposite
// direction never happens: counts only move forward, so code that covers
// everything single-threaded covers it under concurrency as well.
package uncover

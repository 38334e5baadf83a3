// Package mockstore provides a programmable test double for structured
// data-access (Store) surfaces.
//
// A MockStore is seeded during test setup with an ordered list of the
// read and type-lookup requests the system under test is expected to
// issue, together with the tabular results they should yield. During the
// exercise phase the double consumes those expectations strictly first-in
// first-out per request kind: each incoming request is compared against
// the head expectation and either answered with a synthesized Result or
// reported as a fatal test failure. At teardown, Verify fails the test if
// any expectation was never consumed.
//
// CRITICAL PATTERNS:
//
// Strict FIFO consumption:
// Expectations are matched in registration order, never searched. A
// request that would match a later expectation but not the head one is a
// mismatch. This keeps test failures pointing at the first divergence
// between the expected and actual call sequence.
//
// Fail fast:
// Every violation (unexpected call, mismatched call, unmet expectation,
// unsupported mutation) is surfaced through T.Fatalf at the point of
// detection, so the triggering call site is visible in the test output.
// No violation is buffered or retried.
//
// Single-threaded ownership:
// One MockStore belongs to one test goroutine for one test case. There is
// no locking; concurrent use is undefined.
//
// Expectation fixtures can also be declared in YAML files and registered
// in bulk; see the scenario subpackage.
package mockstore

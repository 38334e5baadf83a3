package mockstore

// T is the subset of testing.T the double reports violations through.
// *testing.T satisfies it; tests of the double itself substitute a
// recording fake.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Store is the structured data-access surface the double stands in for.
// The system under test reads rows and resource types through it; the
// mutation endpoints exist only to satisfy the interface contract and are
// not supported by the double.
type Store interface {
	// Query reads rows from a target resource. Absent fields are the
	// zero value: a nil projection, an empty selection, nil selection
	// arguments, an empty sort order.
	Query(target string, projection []string, selection string, selectionArgs []string, sortOrder string) *Result

	// GetType looks up the type string of a target resource.
	GetType(target string) string

	// Insert adds a row and returns the identifier of the created resource.
	Insert(target string, values map[string]Value) string

	// Update modifies matching rows and returns the affected row count.
	Update(target string, values map[string]Value, selection string, selectionArgs []string) int

	// Delete removes matching rows and returns the affected row count.
	Delete(target string, selection string, selectionArgs []string) int
}

// MockStore is a programmable Store double.
//
// Tests register expectations in the order the system under test will
// issue them, exercise the code with the double substituted for the real
// store, and call Verify at teardown:
//
//	m := mockstore.New(t)
//	m.ExpectQuery("res://contacts/1").
//		WithProjection("id", "name").
//		ReturnRow(mockstore.NewInt(1), mockstore.NewString("alice"))
//	m.ExpectTypeQuery("res://contacts/1", "vnd.example/contact")
//
//	// exercise the system under test against m ...
//
//	m.Verify()
//
// Expectations are consumed strictly first-in first-out per request kind.
// Every violation - an unexpected call, a mismatched call, an unconsumed
// expectation at Verify, or a mutation call - is fatal to the running
// test at the point of detection.
//
// A MockStore must be owned by a single goroutine for the lifetime of one
// test case; concurrent use is undefined. Create one double per test and
// discard it after Verify.
type MockStore struct {
	t           T
	queries     expectationQueue[*ExpectedQuery]
	typeQueries expectationQueue[*ExpectedTypeQuery]
}

var _ Store = (*MockStore)(nil)

// New creates a MockStore reporting violations through t.
func New(t T) *MockStore {
	return &MockStore{t: t}
}

// ExpectQuery registers an expected read against target and returns its
// builder for further configuration. Registration order is match order.
func (m *MockStore) ExpectQuery(target string) *ExpectedQuery {
	q := newExpectedQuery(target)
	m.queries.enqueue(q)
	return q
}

// ExpectTypeQuery registers an expected type lookup against target,
// answering with typ.
func (m *MockStore) ExpectTypeQuery(target, typ string) {
	m.typeQueries.enqueue(newExpectedTypeQuery(target, typ))
}

// Query consumes the head query expectation. The request must match it
// exactly (subject to the expectation's wildcards); otherwise the running
// test fails with both requests rendered. An exhausted queue fails the
// test immediately.
func (m *MockStore) Query(target string, projection []string, selection string, selectionArgs []string, sortOrder string) *Result {
	m.t.Helper()

	actual := RenderQuery(target, projection, selection, selectionArgs, sortOrder)

	expected, ok := m.queries.dequeue()
	if !ok {
		m.fail(newUnexpectedCall("query", actual))
		return nil
	}

	if !expected.matches(target, projection, selection, selectionArgs, sortOrder) {
		m.fail(newMismatchedCall("query", expected.String(), actual))
		return nil
	}

	result, err := expected.buildResult()
	if err != nil {
		m.fail(newInvalidExpectation(expected.String(), err))
		return nil
	}
	return result
}

// GetType consumes the head type-query expectation and returns its
// registered type string. Target mismatches and an exhausted queue fail
// the running test.
func (m *MockStore) GetType(target string) string {
	m.t.Helper()

	expected, ok := m.typeQueries.dequeue()
	if !ok {
		m.fail(newUnexpectedCall("type query", target))
		return ""
	}

	if !expected.matches(target) {
		m.fail(newMismatchedCall("type query", expected.String(), target))
		return ""
	}

	return expected.Type()
}

// Insert always fails: mutation endpoints are out of scope for
// expectation-based mocking and exist only to satisfy Store.
func (m *MockStore) Insert(target string, values map[string]Value) string {
	m.t.Helper()
	m.fail(newUnsupportedOperation("insert", target))
	return ""
}

// Update always fails; see Insert.
func (m *MockStore) Update(target string, values map[string]Value, selection string, selectionArgs []string) int {
	m.t.Helper()
	m.fail(newUnsupportedOperation("update", RenderQuery(target, nil, selection, selectionArgs, "")))
	return 0
}

// Delete always fails; see Insert.
func (m *MockStore) Delete(target string, selection string, selectionArgs []string) int {
	m.t.Helper()
	m.fail(newUnsupportedOperation("delete", RenderQuery(target, nil, selection, selectionArgs, "")))
	return 0
}

// Verify asserts that every registered expectation was consumed. Call it
// at teardown. Verifying a fully-consumed double never fails, any number
// of times.
func (m *MockStore) Verify() {
	m.t.Helper()

	if m.queries.len() > 0 {
		m.fail(newUnmetExpectations("queries", m.queries.pending()))
		return
	}
	if m.typeQueries.len() > 0 {
		m.fail(newUnmetExpectations("type queries", m.typeQueries.pending()))
	}
}

func (m *MockStore) fail(err *FailureError) {
	m.t.Helper()
	m.t.Fatalf("%v", err)
}

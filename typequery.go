package mockstore

// ExpectedTypeQuery describes one anticipated metadata lookup: the target
// it must be issued against and the literal type string it returns.
// Matching is target equality only; there is no wildcard for this kind.
type ExpectedTypeQuery struct {
	target string
	typ    string
}

func newExpectedTypeQuery(target, typ string) *ExpectedTypeQuery {
	return &ExpectedTypeQuery{target: target, typ: typ}
}

// Target returns the expected target identifier.
func (q *ExpectedTypeQuery) Target() string {
	return q.target
}

// Type returns the pre-registered type string.
func (q *ExpectedTypeQuery) Type() string {
	return q.typ
}

// matches compares an incoming lookup against this expectation.
func (q *ExpectedTypeQuery) matches(target string) bool {
	return target == q.target
}

// String renders the expectation for failure messages.
func (q *ExpectedTypeQuery) String() string {
	return q.target + " --> " + q.typ
}

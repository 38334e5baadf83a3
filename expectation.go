package mockstore

import (
	"fmt"
	"strconv"
)

// ExpectedQuery describes one anticipated read request and the tabular
// result it should produce. Instances are created by MockStore.ExpectQuery
// and configured through the fluent With*/Return* methods, each of which
// returns the same ExpectedQuery for chaining. Configuration for a concern
// overwrites any earlier configuration of that concern; there are no merge
// semantics. Once the exercise phase begins issuing requests, an
// expectation must not be reconfigured.
type ExpectedQuery struct {
	target            string
	projection        []string
	defaultProjection []string
	selection         string
	selectionArgs     []string
	sortOrder         string
	rows              [][]Value
	anyProjection     bool
	anySelection      bool
	anySortOrder      bool
}

func newExpectedQuery(target string) *ExpectedQuery {
	return &ExpectedQuery{target: target}
}

// WithProjection requires the incoming request to carry exactly these
// columns. Disables any-projection matching.
func (q *ExpectedQuery) WithProjection(columns ...string) *ExpectedQuery {
	q.projection = columns
	q.anyProjection = false
	return q
}

// WithDefaultProjection sets the column names used for the result when the
// incoming request does not specify a projection and the expectation is
// not wildcarded.
func (q *ExpectedQuery) WithDefaultProjection(columns ...string) *ExpectedQuery {
	q.defaultProjection = columns
	return q
}

// WithAnyProjection accepts any projection. Result column names are then
// synthesized from the registered rows (see MockStore.Query).
func (q *ExpectedQuery) WithAnyProjection() *ExpectedQuery {
	q.anyProjection = true
	return q
}

// WithSelection requires the incoming request to carry exactly this
// selection expression and these positional arguments. Disables
// any-selection matching.
func (q *ExpectedQuery) WithSelection(selection string, args ...string) *ExpectedQuery {
	q.selection = selection
	q.selectionArgs = args
	q.anySelection = false
	return q
}

// WithAnySelection accepts any selection expression and arguments.
func (q *ExpectedQuery) WithAnySelection() *ExpectedQuery {
	q.anySelection = true
	return q
}

// WithSortOrder requires the incoming request to carry exactly this sort
// order. Disables any-sort matching.
func (q *ExpectedQuery) WithSortOrder(order string) *ExpectedQuery {
	q.sortOrder = order
	q.anySortOrder = false
	return q
}

// WithAnySortOrder accepts any sort order.
func (q *ExpectedQuery) WithAnySortOrder() *ExpectedQuery {
	q.anySortOrder = true
	return q
}

// ReturnRow appends one result row. Call order is preserved as row order.
// Every row must carry one cell per result column; the arity is checked
// when the result is synthesized on match.
func (q *ExpectedQuery) ReturnRow(cells ...Value) *ExpectedQuery {
	q.rows = append(q.rows, cells)
	return q
}

// ReturnEmpty clears any previously appended rows so the expectation
// yields an empty result set. Match configuration is unaffected.
func (q *ExpectedQuery) ReturnEmpty() *ExpectedQuery {
	q.rows = nil
	return q
}

// matches compares an incoming request against this expectation.
//
// The match requires:
//  1. Target: exact equality, never wildcarded
//  2. Projection: element-wise equality with the both-empty rule,
//     unless WithAnyProjection was set
//  3. Selection: string equality AND element-wise argument equality,
//     unless WithAnySelection was set
//  4. Sort order: string equality, unless WithAnySortOrder was set
//
// Returns true only if ALL conditions are satisfied.
func (q *ExpectedQuery) matches(target string, projection []string, selection string, selectionArgs []string, sortOrder string) bool {
	if target != q.target {
		return false
	}

	if !q.anyProjection && !stringListsEqual(projection, q.projection) {
		return false
	}

	if !q.anySelection {
		if selection != q.selection {
			return false
		}
		if !stringListsEqual(selectionArgs, q.selectionArgs) {
			return false
		}
	}

	if !q.anySortOrder && sortOrder != q.sortOrder {
		return false
	}

	return true
}

// buildResult synthesizes the tabular result for a matched request.
//
// With any-projection set, column names are synthesized as "column1".."columnN"
// sized to the first row's arity, or a single "unspecified" column when no
// rows were registered. Otherwise the explicit projection names the
// columns, falling back to the default projection.
func (q *ExpectedQuery) buildResult() (*Result, error) {
	var columns []string
	if q.anyProjection {
		if len(q.rows) > 0 {
			columns = make([]string, len(q.rows[0]))
			for i := range columns {
				columns[i] = "column" + strconv.Itoa(i+1)
			}
		} else {
			columns = []string{"unspecified"}
		}
	} else if q.projection != nil {
		columns = q.projection
	} else {
		columns = q.defaultProjection
	}

	result := NewResult(columns...)
	for i, row := range q.rows {
		if err := result.AddRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return result, nil
}

// String renders the expectation in the shared query form used in failure
// messages.
func (q *ExpectedQuery) String() string {
	return RenderQuery(q.target, q.projection, q.selection, q.selectionArgs, q.sortOrder)
}

package scenario

import (
	"fmt"

	"github.com/roach88/mockstore"
)

// Apply registers every expectation in the scenario onto m, preserving
// file order so fixture order is FIFO match order. Row cells are converted
// to mockstore values; a cell the double cannot represent aborts the whole
// registration.
func (s *Scenario) Apply(m *mockstore.MockStore) error {
	for i, qf := range s.Queries {
		q := m.ExpectQuery(qf.Target)

		if qf.Projection != nil {
			q.WithProjection(qf.Projection...)
		}
		if qf.DefaultProjection != nil {
			q.WithDefaultProjection(qf.DefaultProjection...)
		}
		if qf.AnyProjection {
			q.WithAnyProjection()
		}
		if qf.Selection != "" {
			q.WithSelection(qf.Selection, qf.SelectionArgs...)
		}
		if qf.AnySelection {
			q.WithAnySelection()
		}
		if qf.SortOrder != "" {
			q.WithSortOrder(qf.SortOrder)
		}
		if qf.AnySortOrder {
			q.WithAnySortOrder()
		}

		for r, row := range qf.Rows {
			cells := make([]mockstore.Value, len(row))
			for c, raw := range row {
				cell, err := mockstore.ConvertValue(raw)
				if err != nil {
					return fmt.Errorf("queries[%d] rows[%d][%d]: %w", i, r, c, err)
				}
				cells[c] = cell
			}
			q.ReturnRow(cells...)
		}
	}

	for _, tqf := range s.TypeQueries {
		m.ExpectTypeQuery(tqf.Target, tqf.Type)
	}

	return nil
}

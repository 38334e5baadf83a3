package mockstore

import "strings"

// RenderQuery produces the stable human-readable form of a query, used
// verbatim in failure messages and shared by expectations and incoming
// requests so the two sides of a mismatch render identically:
//
//	<target> [col1, col2] selection: '<expr>' [arg1] sort: '<order>'
//
// An absent projection or argument list renders as the literal "[]"; the
// selection and sort fragments are omitted entirely when absent.
func RenderQuery(target string, projection []string, selection string, selectionArgs []string, sortOrder string) string {
	var b strings.Builder
	b.WriteString(target)
	b.WriteString(" ")
	b.WriteString(renderStringList(projection))
	if selection != "" {
		b.WriteString(" selection: '")
		b.WriteString(selection)
		b.WriteString("' ")
		b.WriteString(renderStringList(selectionArgs))
	}
	if sortOrder != "" {
		b.WriteString(" sort: '")
		b.WriteString(sortOrder)
		b.WriteString("'")
	}
	return b.String()
}

// renderStringList renders a list as "[a, b, c]", or "[]" when nil/empty.
func renderStringList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// stringListsEqual reports element-wise equality with the both-empty rule:
// a nil list and an empty list are interchangeable, but an empty list
// never equals a non-empty one.
func stringListsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

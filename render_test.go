package mockstore

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderQuery_TargetOnly(t *testing.T) {
	got := RenderQuery("res://contacts", nil, "", nil, "")
	assert.Equal(t, "res://contacts []", got)
}

func TestRenderQuery_Projection(t *testing.T) {
	got := RenderQuery("res://contacts", []string{"id", "name"}, "", nil, "")
	assert.Equal(t, "res://contacts [id, name]", got)
}

func TestRenderQuery_SelectionWithoutArgs(t *testing.T) {
	got := RenderQuery("res://contacts", nil, "deleted = 0", nil, "")
	assert.Equal(t, "res://contacts [] selection: 'deleted = 0' []", got)
}

func TestRenderQuery_Full(t *testing.T) {
	got := RenderQuery("res://contacts", []string{"id"}, "name = ?", []string{"alice"}, "name ASC")
	assert.Equal(t, "res://contacts [id] selection: 'name = ?' [alice] sort: 'name ASC'", got)
}

func TestRenderQuery_SortWithoutSelection(t *testing.T) {
	got := RenderQuery("res://contacts", nil, "", nil, "name DESC")
	assert.Equal(t, "res://contacts [] sort: 'name DESC'", got)
}

func TestStringListsEqual(t *testing.T) {
	// Both-empty rule: nil and empty are interchangeable
	assert.True(t, stringListsEqual(nil, nil))
	assert.True(t, stringListsEqual(nil, []string{}))
	assert.True(t, stringListsEqual([]string{}, nil))

	assert.True(t, stringListsEqual([]string{"a", "b"}, []string{"a", "b"}))

	// Present-vs-absent asymmetry is a mismatch
	assert.False(t, stringListsEqual(nil, []string{"a"}))
	assert.False(t, stringListsEqual([]string{"a"}, nil))
	assert.False(t, stringListsEqual([]string{}, []string{"a"}))

	assert.False(t, stringListsEqual([]string{"a"}, []string{"b"}))
	assert.False(t, stringListsEqual([]string{"a"}, []string{"a", "b"}))
	assert.False(t, stringListsEqual([]string{"a", "b"}, []string{"b", "a"}))
}

// Failure messages embed renderings verbatim, so the exact text is pinned
// with a golden file.
//
// To regenerate: go test . -run TestRenderQuery_Golden -update
func TestRenderQuery_Golden(t *testing.T) {
	renderings := []string{
		RenderQuery("res://contacts", nil, "", nil, ""),
		RenderQuery("res://contacts", []string{"id", "name"}, "", nil, ""),
		RenderQuery("res://contacts", []string{"id"}, "name = ?", []string{"alice"}, ""),
		RenderQuery("res://contacts", nil, "age > ?", []string{"30"}, "age ASC"),
		RenderQuery("res://contacts/7", []string{"id", "name", "email"}, "deleted = 0", nil, "name DESC"),
		newExpectedTypeQuery("res://contacts/7", "vnd.example/contact").String(),
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render_query", []byte(strings.Join(renderings, "\n")+"\n"))
}

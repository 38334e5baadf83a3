package mockstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesEqual_SameVariant(t *testing.T) {
	assert.True(t, ValuesEqual(NewString("a"), NewString("a")))
	assert.True(t, ValuesEqual(NewInt(42), NewInt(42)))
	assert.True(t, ValuesEqual(NewBool(true), NewBool(true)))
	assert.True(t, ValuesEqual(Null{}, Null{}))

	assert.False(t, ValuesEqual(NewString("a"), NewString("b")))
	assert.False(t, ValuesEqual(NewInt(1), NewInt(2)))
	assert.False(t, ValuesEqual(NewBool(true), NewBool(false)))
}

func TestValuesEqual_CrossVariant(t *testing.T) {
	// A string "1" and an int 1 are different cells
	assert.False(t, ValuesEqual(NewString("1"), NewInt(1)))
	assert.False(t, ValuesEqual(NewBool(false), Null{}))
	assert.False(t, ValuesEqual(Null{}, NewString("")))
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "alice", RenderValue(NewString("alice")))
	assert.Equal(t, "42", RenderValue(NewInt(42)))
	assert.Equal(t, "-7", RenderValue(NewInt(-7)))
	assert.Equal(t, "true", RenderValue(NewBool(true)))
	assert.Equal(t, "null", RenderValue(Null{}))
}

func TestConvertValue(t *testing.T) {
	v, err := ConvertValue(nil)
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)

	v, err = ConvertValue("hello")
	require.NoError(t, err)
	assert.Equal(t, NewString("hello"), v)

	v, err = ConvertValue(7)
	require.NoError(t, err)
	assert.Equal(t, NewInt(7), v)

	v, err = ConvertValue(int64(9))
	require.NoError(t, err)
	assert.Equal(t, NewInt(9), v)

	v, err = ConvertValue(false)
	require.NoError(t, err)
	assert.Equal(t, NewBool(false), v)
}

func TestConvertValue_PassesThroughValues(t *testing.T) {
	v, err := ConvertValue(NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, NewInt(3), v)
}

func TestConvertValue_RejectsFloats(t *testing.T) {
	_, err := ConvertValue(1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are not supported")
}

func TestConvertValue_RejectsUnsupportedTypes(t *testing.T) {
	_, err := ConvertValue([]string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported row value type")
}

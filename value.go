package mockstore

import (
	"fmt"
	"strconv"
)

// Value is a sealed interface representing the cell types a registered
// row may hold. Only Null, String, Int, and Bool implement it.
// NO floats - row values must compare deterministically across runs.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents an absent cell value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// String represents a string cell value.
type String string

func (String) value() {}

// Int represents an integer cell value. Always int64, never float64.
type Int int64

func (Int) value() {}

// Bool represents a boolean cell value.
type Bool bool

func (Bool) value() {}

// NewString creates a String value.
func NewString(s string) String {
	return String(s)
}

// NewInt creates an Int value.
func NewInt(n int64) Int {
	return Int(n)
}

// NewBool creates a Bool value.
func NewBool(b bool) Bool {
	return Bool(b)
}

// ValuesEqual compares two cell values for equality.
// Values of different variant types are never equal.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return false
	}
}

// RenderValue returns the stable human-readable form of a cell value,
// used in diagnostics and golden files.
func RenderValue(v Value) string {
	switch val := v.(type) {
	case Null:
		return "null"
	case String:
		return string(val)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Bool:
		return strconv.FormatBool(bool(val))
	default:
		return fmt.Sprintf("<unknown %T>", v)
	}
}

// ConvertValue converts a plain Go value (as produced by YAML or JSON
// decoding) into a Value. Floats are rejected - row values must compare
// deterministically, and a test that needs fractional cells should
// register them as strings.
func ConvertValue(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint64:
		if val > 1<<63-1 {
			return nil, fmt.Errorf("integer out of int64 range: %d", val)
		}
		return Int(val), nil
	case float64:
		return nil, fmt.Errorf("floats are not supported in row values: %v", val)
	case Value:
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported row value type: %T", v)
	}
}

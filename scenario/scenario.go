package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is an ordered set of expectations to register on a double.
type Scenario struct {
	// Name uniquely identifies this fixture.
	Name string `yaml:"name"`

	// Description explains what the expectations cover.
	Description string `yaml:"description,omitempty"`

	// Queries lists expected read requests in issue order.
	Queries []QueryFixture `yaml:"queries,omitempty"`

	// TypeQueries lists expected type lookups in issue order.
	TypeQueries []TypeQueryFixture `yaml:"type_queries,omitempty"`
}

// QueryFixture declares one expected read request and its result rows.
// The fields mirror the ExpectedQuery builder; a zero field leaves the
// corresponding concern unconfigured.
type QueryFixture struct {
	// Target is the resource identifier, always compared exactly.
	Target string `yaml:"target"`

	// Projection requires the request to carry exactly these columns.
	Projection []string `yaml:"projection,omitempty"`

	// DefaultProjection names result columns when the request carries no
	// projection and AnyProjection is not set.
	DefaultProjection []string `yaml:"default_projection,omitempty"`

	// AnyProjection accepts any projection. Mutually exclusive with
	// Projection.
	AnyProjection bool `yaml:"any_projection,omitempty"`

	// Selection and SelectionArgs require an exact selection match.
	Selection     string   `yaml:"selection,omitempty"`
	SelectionArgs []string `yaml:"selection_args,omitempty"`

	// AnySelection accepts any selection and arguments. Mutually
	// exclusive with Selection.
	AnySelection bool `yaml:"any_selection,omitempty"`

	// SortOrder requires an exact sort-order match.
	SortOrder string `yaml:"sort_order,omitempty"`

	// AnySortOrder accepts any sort order. Mutually exclusive with
	// SortOrder.
	AnySortOrder bool `yaml:"any_sort_order,omitempty"`

	// Rows holds the literal result rows in return order. Cells may be
	// strings, integers, booleans, or null; floats are rejected.
	Rows [][]any `yaml:"rows,omitempty"`
}

// TypeQueryFixture declares one expected type lookup and its answer.
type TypeQueryFixture struct {
	Target string `yaml:"target"`
	Type   string `yaml:"type"`
}

// Load reads, schema-checks, and parses a fixture file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return parse(path, data)
}

// Parse schema-checks and parses fixture bytes. The name is used in
// schema diagnostics only.
func Parse(name string, data []byte) (*Scenario, error) {
	return parse(name, data)
}

func parse(name string, data []byte) (*Scenario, error) {
	// Schema validation first: CUE reports shape errors (wrong cell
	// types, floats, missing targets) with positions.
	if err := validateSchema(name, data); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like
	// "querys:" vs "queries:")
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	return &s, nil
}

// validateScenario checks the constraints the schema cannot express.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Queries) == 0 && len(s.TypeQueries) == 0 {
		return fmt.Errorf("at least one query or type query is required")
	}

	for i, q := range s.Queries {
		if q.Target == "" {
			return fmt.Errorf("queries[%d]: target is required", i)
		}
		if q.AnyProjection && len(q.Projection) > 0 {
			return fmt.Errorf("queries[%d]: projection and any_projection are mutually exclusive", i)
		}
		if q.AnySelection && q.Selection != "" {
			return fmt.Errorf("queries[%d]: selection and any_selection are mutually exclusive", i)
		}
		if q.AnySortOrder && q.SortOrder != "" {
			return fmt.Errorf("queries[%d]: sort_order and any_sort_order are mutually exclusive", i)
		}
		if len(q.SelectionArgs) > 0 && q.Selection == "" {
			return fmt.Errorf("queries[%d]: selection_args requires selection", i)
		}
	}

	for i, tq := range s.TypeQueries {
		if tq.Target == "" {
			return fmt.Errorf("type_queries[%d]: target is required", i)
		}
		if tq.Type == "" {
			return fmt.Errorf("type_queries[%d]: type is required", i)
		}
	}

	return nil
}

package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The render command's text output is what fixture reviews and failure
// messages rely on, so it is pinned with a golden file.
//
// To regenerate: go test ./internal/cli -run TestRenderFixture -update
func TestRenderFixture(t *testing.T) {
	fixture := filepath.Join("testdata", "contact_lookup.yaml")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixture})

	err := cmd.Execute()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render_contact_lookup", buf.Bytes())
}

func TestRenderFixtureJSON(t *testing.T) {
	fixture := filepath.Join("testdata", "contact_lookup.yaml")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixture})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var rendering Rendering
	require.NoError(t, json.Unmarshal(data, &rendering))
	assert.Equal(t, "contact_lookup", rendering.Name)
	require.Len(t, rendering.Queries, 2)
	assert.Equal(t, "res://contacts/1 [id, name]", rendering.Queries[0])
	assert.Equal(t, "res://contacts/1/phones [] selection: 'deleted = ?' [0] sort: 'number ASC'", rendering.Queries[1])
	require.Len(t, rendering.TypeQueries, 1)
	assert.Equal(t, "res://contacts/1 --> vnd.example/contact", rendering.TypeQueries[0])
}

func TestRenderInvalidFixture(t *testing.T) {
	fixture := filepath.Join("testdata", "invalid_conflict.yaml")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{fixture})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E_INVALID_FIXTURE")
}

func TestRenderMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRenderCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "does_not_exist.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

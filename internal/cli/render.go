package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/mockstore"
	"github.com/roach88/mockstore/scenario"
)

// Rendering holds the diagnostic renderings of one fixture's expectations,
// exactly as failure messages would embed them.
type Rendering struct {
	Name        string   `json:"name"`
	Queries     []string `json:"queries,omitempty"`
	TypeQueries []string `json:"type_queries,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <fixture.yaml>",
		Short: "Print the diagnostic renderings of a fixture's expectations",
		Long: `Print each expectation of a fixture in the stable rendered form used
verbatim in failure messages. Useful for reviewing fixtures and for
pinning renderings in golden files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRender(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := scenario.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("cannot read %s", path), Err: err}
		}
		if outErr := formatter.Error("E_INVALID_FIXTURE", err.Error(), nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, fmt.Sprintf("fixture %s is invalid", path))
	}

	rendering := Rendering{Name: s.Name}
	for _, q := range s.Queries {
		rendering.Queries = append(rendering.Queries,
			mockstore.RenderQuery(q.Target, q.Projection, q.Selection, q.SelectionArgs, q.SortOrder))
	}
	for _, tq := range s.TypeQueries {
		rendering.TypeQueries = append(rendering.TypeQueries, tq.Target+" --> "+tq.Type)
	}

	if formatter.Format == "json" {
		return formatter.Success(rendering)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "fixture: %s", rendering.Name)
	for _, line := range rendering.Queries {
		fmt.Fprintf(&b, "\nquery: %s", line)
	}
	for _, line := range rendering.TypeQueries {
		fmt.Fprintf(&b, "\ntype query: %s", line)
	}
	return formatter.Success(b.String())
}

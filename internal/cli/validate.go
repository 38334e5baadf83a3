package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/mockstore/scenario"
)

// FixtureResult holds the validation outcome for one fixture file.
type FixtureResult struct {
	Path        string `json:"path"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name,omitempty"`
	Queries     int    `json:"queries"`
	TypeQueries int    `json:"type_queries"`
	Error       string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <fixture.yaml>...",
		Short: "Validate expectation fixture files",
		Long: `Validate mockstore expectation fixtures without registering them.

Performs schema validation, strict YAML decoding, and structural checks
(required fields, wildcard conflicts) for each fixture file.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	results := make([]FixtureResult, 0, len(paths))
	invalid := 0

	for _, path := range paths {
		formatter.VerboseLog("validating %s", path)

		s, err := scenario.Load(path)
		if err != nil {
			// Unreadable files are command errors, not fixture failures.
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("cannot read %s", path), Err: err}
			}
			invalid++
			results = append(results, FixtureResult{Path: path, Valid: false, Error: err.Error()})
			continue
		}

		results = append(results, FixtureResult{
			Path:        path,
			Valid:       true,
			Name:        s.Name,
			Queries:     len(s.Queries),
			TypeQueries: len(s.TypeQueries),
		})
	}

	if err := outputValidateResults(formatter, results, invalid); err != nil {
		return err
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d fixture(s) invalid", invalid, len(paths)))
	}
	return nil
}

func outputValidateResults(f *OutputFormatter, results []FixtureResult, invalid int) error {
	if f.Format == "json" {
		if invalid > 0 {
			return f.Error("E_INVALID_FIXTURE", fmt.Sprintf("%d fixture(s) invalid", invalid), results)
		}
		return f.Success(results)
	}

	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		if r.Valid {
			fmt.Fprintf(&b, "✓ %s: %s (%d queries, %d type queries)", r.Path, r.Name, r.Queries, r.TypeQueries)
		} else {
			fmt.Fprintf(&b, "✗ %s: %s", r.Path, r.Error)
		}
	}
	return f.Success(b.String())
}

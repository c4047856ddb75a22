package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/decisionlog"
	"github.com/roach88/relcheck/internal/sema"
	"github.com/roach88/relcheck/internal/sqltype"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	LogPath string // optional decision log database
}

// CaseResult holds the outcome of one checked case.
type CaseResult struct {
	Name       string `json:"name"`
	Operator   string `json:"operator"`
	Left       string `json:"left"`
	Right      string `json:"right"`
	Compatible bool   `json:"compatible"`
	Code       string `json:"code,omitempty"`
	Ordinal    int    `json:"ordinal,omitempty"` // 1-based failing column, 0 when n/a
	Detail     string `json:"detail,omitempty"`
}

// CheckSummary is the aggregate payload for JSON output.
type CheckSummary struct {
	Cases        []CaseResult `json:"cases"`
	Total        int          `json:"total"`
	Compatible   int          `json:"compatible"`
	Incompatible int          `json:"incompatible"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <cases-dir>",
		Short: "Check set-operation operand compatibility for CUE cases",
		Long: `Check loads compatibility cases from CUE files and decides, for each,
whether the two operand row types are union-compatible under the type
promotion lattice.

Exits 1 when any case is incompatible, 2 on load errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LogPath, "log", "", "append decisions to a decision log database")

	return cmd
}

func runCheck(opts *CheckOptions, casesDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cases, err := LoadCases(casesDir)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			formatter.Error(loadErr.Code, loadErr.Message, nil)
		} else {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return NewExitError(ExitCommandError, "loading cases failed")
	}

	formatter.VerboseLog("Loaded %d case(s) from %s", len(cases), casesDir)

	var log *decisionlog.Log
	if opts.LogPath != "" {
		log, err = decisionlog.Open(opts.LogPath)
		if err != nil {
			formatter.Error(ErrCodeNotFound, err.Error(), nil)
			return NewExitError(ExitCommandError, "opening decision log failed")
		}
		defer log.Close()
	}

	summary := CheckSummary{}
	for _, c := range cases {
		result, rows, err := checkCase(c)
		if err != nil {
			formatter.Error(ErrCodeBadCase, fmt.Sprintf("case %q: %v", c.Name, err), nil)
			return NewExitError(ExitCommandError, "invalid case")
		}

		summary.Cases = append(summary.Cases, result)
		summary.Total++
		if result.Compatible {
			summary.Compatible++
		} else {
			summary.Incompatible++
		}

		if log != nil {
			if err := appendDecision(cmd.Context(), log, rows, result); err != nil {
				formatter.Error(ErrCodeGeneric, err.Error(), nil)
				return NewExitError(ExitCommandError, "writing decision log failed")
			}
		}
	}

	if opts.Format == "json" {
		if err := formatter.JSON(summary); err != nil {
			return err
		}
	} else {
		for _, r := range summary.Cases {
			if r.Compatible {
				formatter.Textf("ok   %s: %s %s %s", r.Name, r.Left, r.Operator, r.Right)
			} else {
				formatter.Textf("FAIL %s: %s", r.Name, r.Detail)
			}
		}
		formatter.Textf("%d case(s): %d compatible, %d incompatible",
			summary.Total, summary.Compatible, summary.Incompatible)
	}

	if summary.Incompatible > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d incompatible case(s)", summary.Incompatible))
	}
	return nil
}

// checkCase resolves the case's operator and runs its checker in strict
// mode against the two operand rows. The parsed rows are returned for
// decision logging.
func checkCase(c Case) (CaseResult, [2]*sqltype.Row, error) {
	var rows [2]*sqltype.Row

	left, err := sqltype.RowFromSpecs(c.Left)
	if err != nil {
		return CaseResult{}, rows, fmt.Errorf("left operand: %w", err)
	}
	right, err := sqltype.RowFromSpecs(c.Right)
	if err != nil {
		return CaseResult{}, rows, fmt.Errorf("right operand: %w", err)
	}
	rows = [2]*sqltype.Row{left, right}

	ops := sema.DefaultTable().Lookup(c.Op)
	if len(ops) == 0 {
		return CaseResult{}, rows, fmt.Errorf("unknown operator %q", c.Op)
	}
	op := ops[0]
	if op.Kind != sema.SetOperator {
		return CaseResult{}, rows, fmt.Errorf("operator %q is not a set operator", c.Op)
	}

	binding := sema.NewCallBinding(op.Name, nil,
		sema.Operand{Node: &algebra.TableRef{Name: "left", Position: algebra.Position{Line: 1, Col: 1}}, Type: left},
		sema.Operand{Node: &algebra.TableRef{Name: "right", Position: algebra.Position{Line: 2, Col: 1}}, Type: right},
	)

	result := CaseResult{
		Name:     c.Name,
		Operator: op.Name,
		Left:     sqltype.Canonical(left),
		Right:    sqltype.Canonical(right),
	}

	ok, checkErr := op.Checker.Check(binding, true)
	result.Compatible = ok
	if checkErr != nil {
		result.Code = sema.CodeOf(checkErr)
		result.Detail = checkErr.Error()
		var ve *sema.ValidationError
		if errors.As(checkErr, &ve) {
			result.Ordinal = ve.Ordinal
		}
	}
	return result, rows, nil
}

// appendDecision records a case outcome in the decision log. The logged
// column specs come from the checked rows, not the raw case file, so type
// synonyms (INTEGER, BOOL) are stored in their canonical spelling.
func appendDecision(ctx context.Context, log *decisionlog.Log, rows [2]*sqltype.Row, r CaseResult) error {
	if ctx == nil {
		ctx = context.Background()
	}

	outcome := decisionlog.OutcomeCompatible
	if !r.Compatible {
		outcome = r.Code
	}

	_, err := log.Append(ctx, decisionlog.Decision{
		Operator: r.Operator,
		Left:     sqltype.SpecsFromRow(rows[0]),
		Right:    sqltype.SpecsFromRow(rows[1]),
		Outcome:  outcome,
		Ordinal:  r.Ordinal,
		Message:  r.Detail,
	})
	return err
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/decisionlog"
	"github.com/roach88/relcheck/internal/sqltype"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Replay bool // re-run logged decisions against the current lattice
}

// TraceResult is the JSON payload of the trace command.
type TraceResult struct {
	Decisions   []decisionlog.Decision   `json:"decisions"`
	Divergences []decisionlog.Divergence `json:"divergences,omitempty"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <decision-log>",
		Short: "List logged compatibility decisions",
		Long: `Trace lists the decisions recorded in a decision log database.

With --replay, every logged operand pair is re-checked against the current
promotion lattice and decisions whose outcome changed are reported; the
command exits 1 when any divergence is found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Replay, "replay", false, "re-check logged decisions against the current lattice")

	return cmd
}

func runTrace(opts *TraceOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("decision log not found: %s", dbPath), nil)
		return NewExitError(ExitCommandError, "decision log not found")
	}

	log, err := decisionlog.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, "opening decision log failed")
	}
	defer log.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	decisions, err := log.List(ctx)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, "reading decision log failed")
	}

	result := TraceResult{Decisions: decisions}
	if opts.Replay {
		divergences, err := log.Replay(ctx, sqltype.DefaultLattice{})
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return NewExitError(ExitCommandError, "replay failed")
		}
		result.Divergences = divergences
	}

	if opts.Format == "json" {
		if err := formatter.JSON(result); err != nil {
			return err
		}
	} else {
		for _, d := range result.Decisions {
			formatter.Textf("%d %s %s: %s", d.Seq, d.RecordedAt.Format("2006-01-02T15:04:05Z"), d.Operator, d.Outcome)
		}
		formatter.Textf("%d decision(s)", len(result.Decisions))
		for _, div := range result.Divergences {
			formatter.Textf("DIVERGED seq %d: logged %s, now %s", div.Decision.Seq, div.Decision.Outcome, div.Outcome)
		}
	}

	if len(result.Divergences) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d diverged decision(s)", len(result.Divergences)))
	}
	return nil
}

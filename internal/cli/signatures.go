package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relcheck/internal/sema"
)

// SignatureInfo is the payload of the signatures command.
type SignatureInfo struct {
	Operator     string `json:"operator"`
	Kind         string `json:"kind"`
	OperandCount string `json:"operand_count"`
	Signature    string `json:"signature"`
}

// NewSignaturesCommand creates the signatures command.
func NewSignaturesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signatures <operator>",
		Short: "Print the allowed signatures of an operator",
		Long: `Signatures prints the operand count contract and the generic signature
template of a registered operator, e.g.:

    relcheck signatures UNION`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignatures(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSignatures(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ops := sema.DefaultTable().Lookup(name)
	if len(ops) == 0 {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("unknown operator %q", name), nil)
		return NewExitError(ExitCommandError, "unknown operator")
	}

	infos := make([]SignatureInfo, len(ops))
	for i, op := range ops {
		infos[i] = SignatureInfo{
			Operator:     op.Name,
			Kind:         op.Kind.String(),
			OperandCount: op.Checker.OperandCountRange().String(),
			Signature:    op.Checker.AllowedSignatures(op.Name),
		}
	}

	if opts.Format == "json" {
		return formatter.JSON(infos)
	}
	for _, info := range infos {
		formatter.Textf("%s (%s operator)", info.Operator, info.Kind)
		formatter.Textf("  operands:  %s", info.OperandCount)
		formatter.Textf("  signature: %s", info.Signature)
	}
	return nil
}

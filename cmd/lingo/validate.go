package main

import (
	"fmt"

	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/aretw0/lingo/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <automaton>",
		Short: "Check an automaton document",
		Long: `Decodes the automaton and checks its structure. Unreachable states and
states that cannot reach a terminal state are reported as warnings; --strict
turns them into a failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, err := env.Load(ctx, args[0])
				if err != nil {
					return err
				}

				report := validator.Inspect(a)
				if strict {
					if err := report.Err(); err != nil {
						return fmt.Errorf("validation failed: %w", err)
					}
				}

				facts := [][2]string{
					{"automaton", args[0]},
					{"states", fmt.Sprint(a.Len())},
					{"edges", fmt.Sprint(a.NumEdges())},
					{"alphabet", string(a.Alphabet())},
				}
				if done, err := emitReport(cmd, tui.Report{Title: "Validate", Facts: facts, Warnings: report.Issues()}); done {
					return err
				}

				p := tui.NewPrinter(cmd.OutOrStdout())
				for _, issue := range report.Issues() {
					p.Warn(issue)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Automaton is valid: %d states, %d edges ✅\n", a.Len(), a.NumEdges())
				return nil
			})
		},
	}

	cmd.Flags().Bool("strict", false, "Fail on structural warnings")
	return cmd
}

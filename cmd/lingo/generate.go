package main

import (
	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <automaton>",
		Short: "List the accepted words up to the bound",
		Long: `Enumerates every distinct word the automaton accepts, in depth-first order.
The empty word is printed as ε.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, err := env.Load(ctx, args[0])
				if err != nil {
					return err
				}

				var words []string
				if cmd.Flags().Changed("from") {
					from, _ := cmd.Flags().GetInt("from")
					words, err = env.Engine.GenerateFrom(ctx, a, from)
				} else {
					words, err = env.Engine.Generate(ctx, a)
				}
				if err != nil {
					return err
				}

				facts := append([][2]string{{"automaton", args[0]}}, limitFacts(env)...)
				if done, err := emitReport(cmd, tui.Report{Title: "Generate", Facts: facts, Words: words}); done {
					return err
				}
				tui.NewPrinter(cmd.OutOrStdout()).Words(words)
				return nil
			})
		},
	}

	cmd.Flags().Int("from", 0, "Start state index (default: the initial state)")
	return cmd
}

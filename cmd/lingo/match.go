package main

import (
	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <automaton> <word>",
		Short: "Check whether a word is accepted",
		Long:  `Prints "accepted" with the state path that accepts the word, or "rejected".`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, err := env.Load(ctx, args[0])
				if err != nil {
					return err
				}

				found, path, err := env.Engine.Match(ctx, args[1], a)
				if err != nil {
					return err
				}

				result := "rejected"
				if found {
					result = "accepted"
				}
				facts := append([][2]string{
					{"automaton", args[0]},
					{"word", tui.DisplayWord(args[1])},
					{"result", result},
				}, limitFacts(env)...)
				if found {
					facts = append(facts, [2]string{"path", path.String()})
				}
				if done, err := emitReport(cmd, tui.Report{Title: "Match", Facts: facts}); done {
					return err
				}
				tui.NewPrinter(cmd.OutOrStdout()).Match(found, path)
				return nil
			})
		},
	}
}

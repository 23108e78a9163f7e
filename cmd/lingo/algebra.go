package main

import (
	"fmt"

	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/spf13/cobra"
)

func newUnionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "union <a> <b>",
		Short: "List the words of a followed by the words of b",
		Long: `Concatenates the languages of two automata. Words accepted by both appear
twice unless --set is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _ := cmd.Flags().GetBool("set")
			return runAlgebra(cmd, args, "Union", func(ctx *cli.SignalContext, env *cli.Env, lang *pair) ([]string, error) {
				if set {
					return env.Engine.UnionSet(ctx, lang.a, lang.b)
				}
				return env.Engine.Union(ctx, lang.a, lang.b)
			})
		},
	}

	cmd.Flags().Bool("set", false, "Remove duplicates (mathematical union)")
	return cmd
}

func newIntersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <a> <b>",
		Short: "List the words accepted by both automata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgebra(cmd, args, "Intersect", func(ctx *cli.SignalContext, env *cli.Env, lang *pair) ([]string, error) {
				return env.Engine.Intersect(ctx, lang.a, lang.b)
			})
		},
	}
}

func runAlgebra(cmd *cobra.Command, args []string, title string, op func(*cli.SignalContext, *cli.Env, *pair) ([]string, error)) error {
	return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
		lang, err := loadPair(ctx, env, args[0], args[1])
		if err != nil {
			return err
		}
		words, err := op(ctx, env, lang)
		if err != nil {
			return err
		}

		facts := append([][2]string{{"left", args[0]}, {"right", args[1]}}, limitFacts(env)...)
		if done, err := emitReport(cmd, tui.Report{Title: title, Facts: facts, Words: words}); done {
			return err
		}
		tui.NewPrinter(cmd.OutOrStdout()).Words(words)
		return nil
	})
}

// pair holds the two operands of a set operation.
type pair struct {
	a, b *domain.Automaton
}

func loadPair(ctx *cli.SignalContext, env *cli.Env, left, right string) (*pair, error) {
	a, err := env.Load(ctx, left)
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	b, err := env.Load(ctx, right)
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	return &pair{a: a, b: b}, nil
}

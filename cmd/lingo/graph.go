package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <automaton>",
		Short: "Export the automaton as a diagram",
		Long: `Outputs a Graphviz DOT digraph (default) or a Mermaid flowchart.
With --highlight, the states and edges of the path accepting the word are styled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("out")
			highlight, _ := cmd.Flags().GetString("highlight")

			if format != "dot" && format != "mermaid" {
				return fmt.Errorf("unknown format %q (want dot or mermaid)", format)
			}

			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, err := env.Load(ctx, args[0])
				if err != nil {
					return err
				}

				var overlay *graph.Overlay
				if cmd.Flags().Changed("highlight") {
					found, path, err := env.Engine.Match(ctx, highlight, a)
					if err != nil {
						return err
					}
					if !found {
						env.Logger.Warn("highlight word rejected, exporting without overlay", "word", highlight)
					} else {
						overlay = graph.PathOverlay(path)
					}
				}

				var output string
				switch format {
				case "mermaid":
					output = graph.GenerateMermaid(a, overlay)
				default:
					output = graph.GenerateDOT(a, args[0], overlay)
				}

				var w io.Writer = cmd.OutOrStdout()
				if outPath != "" {
					f, err := os.Create(outPath)
					if err != nil {
						return fmt.Errorf("failed to create output file: %w", err)
					}
					defer f.Close()
					w = f
				}
				_, err = io.WriteString(w, output)
				return err
			})
		},
	}

	cmd.Flags().StringP("format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	cmd.Flags().String("highlight", "", "Highlight the path accepting this word")
	return cmd
}

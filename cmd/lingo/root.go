package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/lingo"
	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lingo",
		Short: "Lingo explores the language of finite-state automata",
		Long: `Lingo enumerates the words a finite-state automaton accepts up to a bound,
checks single words against it, and composes the languages of two automata.

Automata are JSON or YAML documents; with --redis they are names in a Redis store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tui.PrintBanner(cmd.OutOrStdout(), lingo.Version)
			return cmd.Help()
		},
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.IntP("bound", "b", lingo.DefaultBound, "Maximum word length explored")
	flags.Bool("capacities", false, "Enforce per-edge traversal capacities")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.Bool("metrics", false, "Print prometheus metrics after the run")
	flags.Bool("report", false, "Print a markdown report (rendered on a terminal)")
	flags.String("redis", "", "Redis address; automaton arguments become store names")
	flags.String("redis-password", "", "Redis password")
	flags.Int("redis-db", 0, "Redis database")
	flags.String("store-dir", filepath.Join(".lingo", "automata"), "Directory of the automaton store")
	flags.String("store-backend", cli.BackendLoam, "Directory store backend (loam or file)")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newMatchCmd(),
		newUnionCmd(),
		newIntersectCmd(),
		newGraphCmd(),
		newValidateCmd(),
		newStoreCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func configFromFlags(cmd *cobra.Command) cli.Config {
	flags := cmd.Flags()
	bound, _ := flags.GetInt("bound")
	capacities, _ := flags.GetBool("capacities")
	debug, _ := flags.GetBool("debug")
	metrics, _ := flags.GetBool("metrics")
	storeDir, _ := flags.GetString("store-dir")
	storeBackend, _ := flags.GetString("store-backend")
	redisAddr, _ := flags.GetString("redis")
	redisPassword, _ := flags.GetString("redis-password")
	redisDB, _ := flags.GetInt("redis-db")

	return cli.Config{
		Bound:         bound,
		Capacities:    capacities,
		Debug:         debug,
		Metrics:       metrics,
		StoreDir:      storeDir,
		StoreBackend:  storeBackend,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
	}
}

// withEnv wires the application, runs fn under a signal-aware context and
// prints the metrics once fn succeeds.
func withEnv(cmd *cobra.Command, fn func(ctx *cli.SignalContext, env *cli.Env) error) error {
	env, err := cli.Setup(configFromFlags(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cli.NewSignalContext(cmd.Context())
	defer ctx.Cancel()

	if err := fn(ctx, env); err != nil {
		if sig := ctx.Signal(); sig != nil {
			return fmt.Errorf("interrupted by %s: %w", sig, err)
		}
		return err
	}
	return env.FlushMetrics(cmd.OutOrStdout())
}

// emitReport prints r when --report is set and reports whether it did.
// On a terminal the markdown is rendered through glamour.
func emitReport(cmd *cobra.Command, r tui.Report) (bool, error) {
	if on, _ := cmd.Flags().GetBool("report"); !on {
		return false, nil
	}
	md := r.Markdown()
	out := cmd.OutOrStdout()

	if f, ok := out.(*os.File); ok && tui.IsTerminal(f) {
		render, err := tui.NewRenderer()
		if err != nil {
			return true, fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := render(md)
		if err != nil {
			return true, fmt.Errorf("failed to render report: %w", err)
		}
		md = rendered
	}
	_, err := io.WriteString(out, md)
	return true, err
}

func limitFacts(env *cli.Env) [][2]string {
	limits := env.Engine.Limits()
	return [][2]string{
		{"bound", fmt.Sprint(limits.MaxLength)},
		{"capacities", fmt.Sprint(limits.Capacities)},
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/aretw0/lingo/internal/cli"
	"github.com/aretw0/lingo/pkg/adapters/file"
	"github.com/aretw0/lingo/pkg/codec"
	"github.com/spf13/cobra"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stored automata",
		Long: `Saves, prints, lists and removes automata in the store: Redis when --redis is
set, otherwise the directory given by --store-dir (a Loam vault by default,
plain files with --store-backend file).`,
	}

	put := &cobra.Command{
		Use:   "put <name> <file>",
		Short: "Save an automaton document under name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, _, err := file.LoadFile(args[1])
				if err != nil {
					return err
				}
				if err := env.Store.Save(ctx, args[0], a); err != nil {
					return err
				}
				env.Logger.Info("automaton stored", "name", args[0], "states", a.Len())
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", args[0])
				return nil
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != string(codec.FormatJSON) && format != string(codec.FormatYAML) {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				a, err := env.Store.Load(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to load %q: %w", args[0], err)
				}
				data, err := codec.Encode(a, args[0], codec.Format(format))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
	get.Flags().StringP("format", "f", string(codec.FormatJSON), "Output format: json or yaml")

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List stored automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				names, err := env.Store.List(ctx)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Remove stored automata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx *cli.SignalContext, env *cli.Env) error {
				return removeAll(ctx, env, cmd.OutOrStdout(), args)
			})
		},
	}

	cmd.AddCommand(put, get, ls, rm)
	return cmd
}

func removeAll(ctx *cli.SignalContext, env *cli.Env, w io.Writer, names []string) error {
	for _, name := range names {
		if err := env.Store.Delete(ctx, name); err != nil {
			return fmt.Errorf("failed to remove %q: %w", name, err)
		}
		fmt.Fprintf(w, "removed %s\n", name)
	}
	return nil
}

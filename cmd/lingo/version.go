package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/lingo"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lingo",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lingo version %s\n", strings.TrimSpace(lingo.Version))
		},
	}
}

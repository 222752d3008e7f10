package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/pkg/components"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
	"github.com/alexisbeaulieu97/designsystem/pkg/tokens"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dsys %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			fmt.Fprintf(out, "tokens: %s\nprimitives: %s\ncomponents: %s\n", tokens.Version, primitives.Version, components.Version)
			return nil
		},
	}

	return cmd
}

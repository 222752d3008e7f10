package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Inspect design tokens",
	}

	cmd.AddCommand(newTokensCSSCmd(app))

	return cmd
}

func newTokensCSSCmd(app *appContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print design tokens as CSS custom properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := app.tokens(file)
			if err != nil {
				return newCommandError("load tokens", valueOrFallback(file, "configured token file"), err, "Token names must be lowercase and may contain digits, '-' and '.'.")
			}
			fmt.Fprint(cmd.OutOrStdout(), tok.CSS())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Token YAML file (defaults to storybook.tokens_file)")

	return cmd
}

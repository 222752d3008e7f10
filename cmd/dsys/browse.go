package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/internal/tui/browser"
)

func newBrowseCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse stories in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) || !isTerminal(cmd.InOrStdin()) {
				return fmt.Errorf("browse requires an interactive terminal; use 'dsys stories render' instead")
			}
			return runBrowse(cmd, app)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, app *appContext) error {
	reg, err := stories.Default(app.log)
	if err != nil {
		return err
	}
	app.log.With("stories", reg.Len()).Info("launching story browser")

	p := tea.NewProgram(browser.NewModel(reg, app.log),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run story browser: %w", err)
	}

	app.log.Info("story browser closed")
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

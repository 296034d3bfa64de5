package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gurtar/gurtarctl/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive admin dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication()
			if err != nil {
				return err
			}

			// The dashboard handles login itself; no requireAuth here.
			p := tea.NewProgram(tui.NewAppModel(app.svc), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

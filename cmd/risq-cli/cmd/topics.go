package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nfrund/risq/internal/app"
	"github.com/nfrund/risq/internal/topicmgr"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the event topics published by the modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := topicmgr.NewRegistry()
		if err := app.RegisterTopics(reg); err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("TOPIC", "MODULE", "DESCRIPTION")
		for _, e := range reg.List() {
			t.Row(e.Name, e.Module, e.Description)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

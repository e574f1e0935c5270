package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

var noColor bool

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the landing page sections and what each displays",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), sectionsTable(noColor))
	},
}

func init() {
	sectionsCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.AddCommand(sectionsCmd)
}

func sectionsTable(plain bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "SECTION", "ITEM", "DETAIL").
		Rows(sectionRows()...)

	if !plain {
		header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				return cell
			})
	}
	return t.String()
}

// sectionRows flattens every section's display items in page order.
func sectionRows() [][]string {
	title := cases.Title(language.English)
	var rows [][]string
	for i, s := range content.Sections() {
		name := title.String(string(s))
		switch s {
		case domain.SectionQA:
			name = "Q&A"
		case domain.SectionCTA:
			name = "CTA"
		}
		for _, item := range sectionItems(s) {
			rows = append(rows, []string{strconv.Itoa(i + 1), name, item[0], item[1]})
		}
	}
	return rows
}

func sectionItems(s domain.Section) [][2]string {
	var items [][2]string
	switch s {
	case domain.SectionHero:
		for _, h := range content.HeroHighlights() {
			items = append(items, [2]string{h.Label, string(h.Icon)})
		}
	case domain.SectionProblem:
		for _, p := range content.Problems() {
			items = append(items, [2]string{p.Title, p.Description})
		}
	case domain.SectionFeatures:
		for _, f := range content.Features() {
			items = append(items, [2]string{f.Title, f.Description})
		}
	case domain.SectionBenefits:
		for _, o := range content.Outcomes() {
			items = append(items, [2]string{o.Title, o.Stat + " " + o.StatLabel})
		}
	case domain.SectionQA:
		for _, q := range content.FAQ() {
			items = append(items, [2]string{q.Question, q.CreatedAt.Format("1/2/2006")})
		}
	case domain.SectionCTA:
		for _, h := range content.CTAHighlights() {
			items = append(items, [2]string{h.Label, string(h.Icon)})
		}
	}
	return items
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/forgeworks/stackforge/internal/catalog"
	"github.com/forgeworks/stackforge/internal/config"
	"github.com/forgeworks/stackforge/internal/matrix"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skill catalog",
	Long: `List every category, subcategory, and skill in the catalog.

With --with, skills are annotated against the given selection: selected
skills are marked and skills with unmet requirements show why they are
unavailable.

Examples:
  stackforge list
  stackforge list --with react --with tailwind`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringArray("with", nil, "Annotate availability against this selection (repeatable)")
}

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subcatStyle   = lipgloss.NewStyle().Bold(true)
	aliasStyle    = lipgloss.NewStyle().Faint(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	reasonStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m, err := catalog.Build(cfg.Catalog.Extends...)
	if err != nil {
		return err
	}

	with, _ := cmd.Flags().GetStringArray("with")
	var sel matrix.Selection
	for _, name := range with {
		id, ok := m.Resolve(name)
		if !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		sel = sel.Add(id)
	}

	out, err := renderCatalog(m, sel)
	if err != nil {
		return err
	}
	fmt.Print(out)

	return nil
}

func renderCatalog(m *matrix.Matrix, sel matrix.Selection) (string, error) {
	var b strings.Builder

	for _, cat := range m.Categories() {
		b.WriteString(categoryStyle.Render(cat.Name) + "\n")

		subs, err := m.Subcategories(cat.ID)
		if err != nil {
			return "", err
		}
		for _, sub := range subs {
			b.WriteString("  " + subcatStyle.Render(sub.Name) + "\n")

			opts, err := m.AvailableSkills(sub.ID, sel)
			if err != nil {
				return "", err
			}
			for _, opt := range opts {
				b.WriteString("    " + renderSkill(opt) + "\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func renderSkill(opt matrix.SkillOption) string {
	label := opt.Skill.Name
	if len(opt.Skill.Aliases) > 0 {
		label += " " + aliasStyle.Render("("+strings.Join(opt.Skill.Aliases, ", ")+")")
	}

	switch {
	case opt.Selected:
		return selectedStyle.Render("◉ ") + label
	case opt.Disabled:
		return disabledStyle.Render("○ "+opt.Skill.Name) + " " + reasonStyle.Render(opt.DisabledReason)
	default:
		return "○ " + label
	}
}

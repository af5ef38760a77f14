// Package wizard provides the interactive stack-selection flow for CLI
// commands. It owns the mutable selection; the matrix is only queried.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/forgeworks/stackforge/internal/matrix"
)

// Run walks the user through every category and subcategory of the matrix,
// re-validating the accumulated selection and re-prompting until it is
// consistent. The returned selection is valid under m.Validate.
func Run(m *matrix.Matrix, preselected matrix.Selection) (matrix.Selection, error) {
	sel := append(matrix.Selection(nil), preselected...)

	for {
		var err error
		sel, err = selectSkills(m, sel)
		if err != nil {
			return nil, err
		}

		result := m.Validate(sel)
		if result.Valid {
			break
		}

		retry, err := confirmRetry(result)
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, fmt.Errorf("selection is invalid: %s", result.Errors[0])
		}
	}

	confirmed, err := confirmSummary(m, sel)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, fmt.Errorf("scaffold cancelled")
	}

	return sel, nil
}

// selectSkills runs one prompt pass over all subcategories. Skills disabled
// by unmet requirements are shown with their reason but are not pickable;
// picking order across subcategories means earlier choices (e.g. a
// framework) unlock later ones (e.g. its state library).
func selectSkills(m *matrix.Matrix, sel matrix.Selection) (matrix.Selection, error) {
	for _, cat := range m.Categories() {
		subs, err := m.Subcategories(cat.ID)
		if err != nil {
			return nil, err
		}

		for _, sub := range subs {
			opts, err := m.AvailableSkills(sub.ID, sel)
			if err != nil {
				return nil, err
			}
			if len(opts) == 0 {
				continue
			}

			var offered []string
			var choices []huh.Option[string]
			for _, opt := range opts {
				if opt.Disabled {
					continue
				}
				offered = append(offered, opt.Skill.ID)
				choices = append(choices, huh.NewOption(optionLabel(opt), opt.Skill.ID).Selected(opt.Selected))
			}
			if len(choices) == 0 {
				continue
			}

			var fields []huh.Field
			if locked := disabledLines(opts); locked != "" {
				fields = append(fields, huh.NewNote().
					Title("Unavailable").
					Description(locked))
			}

			var picked []string
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("%s: %s", cat.Name, sub.Name)).
				Options(choices...).
				Value(&picked))

			form := huh.NewForm(huh.NewGroup(fields...))
			if err := form.Run(); err != nil {
				return nil, fmt.Errorf("prompt cancelled: %w", err)
			}

			sel = applyPicks(sel, offered, picked)
		}
	}

	return sel, nil
}

func confirmRetry(result matrix.ValidationResult) (bool, error) {
	var lines []string
	for _, e := range result.Errors {
		lines = append(lines, "✗ "+e.Error())
	}

	var retry bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Selection Has Problems").
				Description(strings.Join(lines, "\n")),

			huh.NewConfirm().
				Title("Adjust selection?").
				Value(&retry),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}

	return retry, nil
}

func confirmSummary(m *matrix.Matrix, sel matrix.Selection) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Selected Stack").
				Description(formatStack(m, sel)),

			huh.NewConfirm().
				Title("Scaffold with this stack?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}

	return confirmed, nil
}

// applyPicks replaces the selection's members from the offered set with the
// picked ones, keeping everything outside the offered set untouched.
func applyPicks(sel matrix.Selection, offered, picked []string) matrix.Selection {
	keep := make(map[string]bool, len(picked))
	for _, id := range picked {
		keep[id] = true
	}
	for _, id := range offered {
		if sel.Contains(id) && !keep[id] {
			sel = sel.Remove(id)
		}
	}
	for _, id := range picked {
		sel = sel.Add(id)
	}
	return sel
}

func optionLabel(opt matrix.SkillOption) string {
	if len(opt.Skill.Aliases) == 0 {
		return opt.Skill.Name
	}
	return fmt.Sprintf("%s (%s)", opt.Skill.Name, strings.Join(opt.Skill.Aliases, ", "))
}

func disabledLines(opts []matrix.SkillOption) string {
	var lines []string
	for _, opt := range opts {
		if opt.Disabled {
			lines = append(lines, fmt.Sprintf("✗ %s (%s)", opt.Skill.Name, opt.DisabledReason))
		}
	}
	return strings.Join(lines, "\n")
}

func formatStack(m *matrix.Matrix, sel matrix.Selection) string {
	if len(sel) == 0 {
		return "Nothing selected."
	}
	var lines []string
	for _, id := range sel {
		if sk, ok := m.Skill(id); ok {
			lines = append(lines, fmt.Sprintf("%s / %s: %s", sk.Category, sk.Subcategory, sk.Name))
		}
	}
	return strings.Join(lines, "\n")
}

package matrix

import "strings"

// Resolve maps a canonical id or alias to the canonical skill id.
// The boolean is false when the name is unknown.
func (m *Matrix) Resolve(nameOrID string) (string, bool) {
	if _, ok := m.skills[nameOrID]; ok {
		return nameOrID, true
	}
	if id, ok := m.aliases[nameOrID]; ok {
		return id, true
	}
	return "", false
}

// Skill returns the skill for a canonical id or alias.
func (m *Matrix) Skill(nameOrID string) (*Skill, bool) {
	id, ok := m.Resolve(nameOrID)
	if !ok {
		return nil, false
	}
	return m.skills[id], true
}

// Categories returns all categories in source-declared order.
func (m *Matrix) Categories() []Category {
	return m.categories
}

// Subcategories returns the subcategories of a category in source order.
// An unknown category id is a caller bug and returns UnknownCategoryError.
func (m *Matrix) Subcategories(categoryID string) ([]Subcategory, error) {
	for _, c := range m.categories {
		if c.ID == categoryID {
			return c.Subcategories, nil
		}
	}
	return nil, UnknownCategoryError{ID: categoryID}
}

// AvailableSkills returns every skill in the subcategory, in source order,
// with its presentation state for the given selection.
//
// A skill is disabled only by unmet requirements, and only while it is not
// itself selected. Conflicts never disable: they surface as errors from
// Validate when the user actually selects both sides. DisabledReason names
// the missing requirements for UI messaging.
func (m *Matrix) AvailableSkills(subcategoryID string, sel Selection) ([]SkillOption, error) {
	ids, ok := m.bySubcat[subcategoryID]
	if !ok {
		return nil, UnknownSubcategoryError{ID: subcategoryID}
	}

	opts := make([]SkillOption, 0, len(ids))
	for _, id := range ids {
		sk := m.skills[id]
		opt := SkillOption{Skill: sk, Selected: sel.Contains(id)}
		if !opt.Selected {
			if missing := missingRequires(sk, sel); len(missing) > 0 {
				opt.Disabled = true
				opt.DisabledReason = "requires " + strings.Join(missing, ", ")
			}
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// IsDisabled is the single-skill form of the disabling check in
// AvailableSkills. It accepts an alias or canonical id.
func (m *Matrix) IsDisabled(skillID string, sel Selection) (bool, error) {
	id, ok := m.Resolve(skillID)
	if !ok {
		return false, UnknownSkillError{ID: skillID}
	}
	if sel.Contains(id) {
		return false, nil
	}
	return len(missingRequires(m.skills[id], sel)) > 0, nil
}

// Validate checks a full selection and reports every unmet requirement and
// every conflicting pair. It never fails: problems are values in the result.
//
// Ordering is deterministic so identical inputs produce identical output:
// requirement errors first, in selection order (and declared requires order
// within a skill), then conflict pairs ordered by the selection position of
// the first member, each unordered pair reported exactly once. Duplicate
// selection entries are collapsed to their first occurrence; ids not present
// in the matrix are ignored (callers resolve input before building a
// selection).
func (m *Matrix) Validate(sel Selection) ValidationResult {
	member := make(map[string]bool, len(sel))
	ids := make([]string, 0, len(sel))
	for _, id := range sel {
		if member[id] {
			continue
		}
		if _, ok := m.skills[id]; !ok {
			continue
		}
		member[id] = true
		ids = append(ids, id)
	}

	var errs []ValidationError

	for _, id := range ids {
		for _, req := range m.skills[id].Requires {
			if !member[req] {
				errs = append(errs, ValidationError{Kind: MissingRequirement, Skill: id, Other: req})
			}
		}
	}

	for i := 0; i < len(ids); i++ {
		set := m.conflicts[ids[i]]
		if set == nil {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			if _, clash := set[ids[j]]; clash {
				errs = append(errs, ValidationError{Kind: ConflictingSkills, Skill: ids[i], Other: ids[j]})
			}
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func missingRequires(sk *Skill, sel Selection) []string {
	var missing []string
	for _, req := range sk.Requires {
		if !sel.Contains(req) {
			missing = append(missing, req)
		}
	}
	return missing
}

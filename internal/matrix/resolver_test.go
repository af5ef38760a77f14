package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackDoc mirrors the shape of the shipped catalog: three categories with
// the requirement and conflict edges the resolver queries exercise.
func stackDoc() Document {
	return Document{
		Categories: []CategoryDoc{
			{ID: "frontend", Name: "Frontend", Subcategories: []SubcategoryDoc{
				{ID: "framework", Name: "Framework"},
				{ID: "styling", Name: "Styling"},
				{ID: "state", Name: "State Management"},
			}},
			{ID: "backend", Name: "Backend", Subcategories: []SubcategoryDoc{
				{ID: "server", Name: "Server Framework"},
				{ID: "database", Name: "Database / ORM"},
				{ID: "auth", Name: "Authentication"},
			}},
			{ID: "tooling", Name: "Tooling", Subcategories: []SubcategoryDoc{
				{ID: "testing", Name: "Testing"},
			}},
		},
		Skills: []SkillDoc{
			{ID: "react", Name: "React", Category: "frontend", Subcategory: "framework",
				ConflictsWith: []string{"vue"}},
			{ID: "vue", Name: "Vue", Category: "frontend", Subcategory: "framework"},
			{ID: "tailwind", Name: "Tailwind CSS", Category: "frontend", Subcategory: "styling"},
			{ID: "shadcn-ui", Name: "shadcn/ui", Category: "frontend", Subcategory: "styling",
				Aliases: []string{"shadcn"}, Requires: []string{"react", "tailwind"}},
			{ID: "zustand", Name: "Zustand", Category: "frontend", Subcategory: "state",
				Requires: []string{"react"}},
			{ID: "pinia", Name: "Pinia", Category: "frontend", Subcategory: "state",
				Requires: []string{"vue"}},
			{ID: "hono", Name: "Hono", Category: "backend", Subcategory: "server"},
			{ID: "express", Name: "Express", Category: "backend", Subcategory: "server",
				ConflictsWith: []string{"hono"}},
			{ID: "drizzle", Name: "Drizzle ORM", Category: "backend", Subcategory: "database"},
			{ID: "prisma", Name: "Prisma", Category: "backend", Subcategory: "database",
				ConflictsWith: []string{"drizzle"}},
			{ID: "better-auth", Name: "Better Auth", Category: "backend", Subcategory: "auth",
				Requires: []string{"drizzle"}},
			{ID: "vitest", Name: "Vitest", Category: "tooling", Subcategory: "testing"},
		},
	}
}

func stackMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := Load(stackDoc())
	require.NoError(t, err)
	return m
}

func TestSubcategories_UnknownCategory(t *testing.T) {
	m := stackMatrix(t)

	_, err := m.Subcategories("mobile")
	var unknown UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mobile", unknown.ID)
}

func TestAvailableSkills_UnknownSubcategory(t *testing.T) {
	m := stackMatrix(t)

	_, err := m.AvailableSkills("deployment", nil)
	var unknown UnknownSubcategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "deployment", unknown.ID)
}

func TestAvailableSkills_States(t *testing.T) {
	m := stackMatrix(t)
	sel := Selection{"react"}

	opts, err := m.AvailableSkills("state", sel)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	zustand, pinia := opts[0], opts[1]
	assert.Equal(t, "zustand", zustand.Skill.ID)
	assert.False(t, zustand.Disabled)
	assert.False(t, zustand.Selected)

	assert.Equal(t, "pinia", pinia.Skill.ID)
	assert.True(t, pinia.Disabled)
	assert.Equal(t, "requires vue", pinia.DisabledReason)
}

func TestAvailableSkills_MultipleMissingRequirements(t *testing.T) {
	m := stackMatrix(t)

	opts, err := m.AvailableSkills("styling", nil)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	shadcn := opts[1]
	require.Equal(t, "shadcn-ui", shadcn.Skill.ID)
	assert.True(t, shadcn.Disabled)
	assert.Equal(t, "requires react, tailwind", shadcn.DisabledReason)
}

func TestAvailableSkills_SelectedNeverDisabled(t *testing.T) {
	m := stackMatrix(t)

	// zustand is selected while its prerequisite is absent. Selection state
	// is presentational fact; the inconsistency belongs to Validate.
	opts, err := m.AvailableSkills("state", Selection{"zustand"})
	require.NoError(t, err)

	zustand := opts[0]
	require.Equal(t, "zustand", zustand.Skill.ID)
	assert.True(t, zustand.Selected)
	assert.False(t, zustand.Disabled)
	assert.Empty(t, zustand.DisabledReason)
}

func TestAvailableSkills_ConflictsDoNotDisable(t *testing.T) {
	m := stackMatrix(t)

	opts, err := m.AvailableSkills("framework", Selection{"react"})
	require.NoError(t, err)

	vue := opts[1]
	require.Equal(t, "vue", vue.Skill.ID)
	assert.False(t, vue.Disabled, "conflicts surface at validation time, never as disabling")
}

func TestIsDisabled(t *testing.T) {
	m := stackMatrix(t)

	tests := []struct {
		name     string
		skill    string
		sel      Selection
		disabled bool
	}{
		{"requirement missing", "zustand", nil, true},
		{"requirement met", "zustand", Selection{"react"}, false},
		{"no requirements", "react", nil, false},
		{"already selected", "zustand", Selection{"zustand"}, false},
		{"lookup via alias", "shadcn", Selection{"react", "tailwind"}, false},
		{"alias with missing requirement", "shadcn", Selection{"react"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disabled, err := m.IsDisabled(tt.skill, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.disabled, disabled)
		})
	}
}

func TestIsDisabled_UnknownSkill(t *testing.T) {
	m := stackMatrix(t)

	_, err := m.IsDisabled("angular", nil)
	var unknown UnknownSkillError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "angular", unknown.ID)
}

func TestValidate_ValidSelection(t *testing.T) {
	m := stackMatrix(t)

	result := m.Validate(Selection{"hono", "drizzle", "better-auth"})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_MissingRequirement(t *testing.T) {
	m := stackMatrix(t)

	result := m.Validate(Selection{"hono", "better-auth"})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ValidationError{Kind: MissingRequirement, Skill: "better-auth", Other: "drizzle"},
		result.Errors[0])
}

func TestValidate_ConflictIsSymmetric(t *testing.T) {
	m := stackMatrix(t)

	// react declares the conflict with vue; vue declares nothing. Both
	// selection orders must fail, and the pair is reported exactly once
	// with the first-selected member first.
	result := m.Validate(Selection{"react", "vue"})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ValidationError{Kind: ConflictingSkills, Skill: "react", Other: "vue"},
		result.Errors[0])

	result = m.Validate(Selection{"vue", "react"})
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ValidationError{Kind: ConflictingSkills, Skill: "vue", Other: "react"},
		result.Errors[0])
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	m := stackMatrix(t)

	// Two unmet requirements and a conflicting pair at once. The UI renders
	// the complete list, so nothing may short-circuit.
	sel := Selection{"zustand", "pinia", "prisma", "drizzle"}
	result := m.Validate(sel)
	assert.False(t, result.Valid)

	assert.Equal(t, []ValidationError{
		{Kind: MissingRequirement, Skill: "zustand", Other: "react"},
		{Kind: MissingRequirement, Skill: "pinia", Other: "vue"},
		{Kind: ConflictingSkills, Skill: "prisma", Other: "drizzle"},
	}, result.Errors)
}

func TestValidate_Deterministic(t *testing.T) {
	m := stackMatrix(t)
	sel := Selection{"react", "vue", "better-auth", "express", "hono"}

	first := m.Validate(sel)
	second := m.Validate(sel)
	assert.Equal(t, first, second)

	assert.False(t, first.Valid)
	assert.Equal(t, []ValidationError{
		{Kind: MissingRequirement, Skill: "better-auth", Other: "drizzle"},
		{Kind: ConflictingSkills, Skill: "react", Other: "vue"},
		{Kind: ConflictingSkills, Skill: "express", Other: "hono"},
	}, first.Errors)
}

func TestValidate_DuplicateSelectionEntries(t *testing.T) {
	m := stackMatrix(t)

	result := m.Validate(Selection{"react", "react", "vue"})
	require.Len(t, result.Errors, 1, "duplicate entries collapse to one membership")
}

func TestValidate_EmptySelection(t *testing.T) {
	m := stackMatrix(t)

	result := m.Validate(nil)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestDisabling_Monotonic(t *testing.T) {
	m := stackMatrix(t)

	// Adding a skill can only enable, never disable.
	sel := Selection{}
	disabled, err := m.IsDisabled("shadcn-ui", sel)
	require.NoError(t, err)
	assert.True(t, disabled)

	sel = sel.Add("react")
	disabled, err = m.IsDisabled("shadcn-ui", sel)
	require.NoError(t, err)
	assert.True(t, disabled, "still missing tailwind")

	sel = sel.Add("tailwind")
	disabled, err = m.IsDisabled("shadcn-ui", sel)
	require.NoError(t, err)
	assert.False(t, disabled)

	// Removing the prerequisite disables again.
	sel = sel.Remove("react")
	disabled, err = m.IsDisabled("shadcn-ui", sel)
	require.NoError(t, err)
	assert.True(t, disabled)
}

func TestQueries_Idempotent(t *testing.T) {
	m := stackMatrix(t)
	sel := Selection{"react", "tailwind"}

	a, err := m.AvailableSkills("styling", sel)
	require.NoError(t, err)
	b, err := m.AvailableSkills("styling", sel)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSelection_Ops(t *testing.T) {
	var sel Selection

	sel = sel.Add("react")
	sel = sel.Add("react")
	assert.Equal(t, Selection{"react"}, sel)

	sel = sel.Add("tailwind")
	assert.True(t, sel.Contains("tailwind"))

	sel = sel.Remove("react")
	assert.Equal(t, Selection{"tailwind"}, sel)
	assert.False(t, sel.Contains("react"))
}

package matrix

import "fmt"

// Load-time errors indicate a bug in the static catalog data. Loading is
// atomic: any of these means no matrix is returned.

// DuplicateAliasError reports an alias claimed by two different skills.
type DuplicateAliasError struct {
	Alias string
	Skill string
	Other string
}

func (e DuplicateAliasError) Error() string {
	return fmt.Sprintf("matrix: alias %q claimed by both %q and %q", e.Alias, e.Skill, e.Other)
}

// UnknownReferenceError reports a requires or conflicts_with entry that does
// not resolve to any skill in the merged catalog.
type UnknownReferenceError struct {
	Skill string
	Field string
	Ref   string
}

func (e UnknownReferenceError) Error() string {
	return fmt.Sprintf("matrix: skill %q: %s references unknown skill %q", e.Skill, e.Field, e.Ref)
}

// RequireConflictOverlapError reports a skill that both requires and
// conflicts with the same other skill.
type RequireConflictOverlapError struct {
	Skill string
	Ref   string
}

func (e RequireConflictOverlapError) Error() string {
	return fmt.Sprintf("matrix: skill %q both requires and conflicts with %q", e.Skill, e.Ref)
}

// UnassignedCategoryError reports a skill whose category/subcategory pair is
// not declared in the category tree.
type UnassignedCategoryError struct {
	Skill       string
	Category    string
	Subcategory string
}

func (e UnassignedCategoryError) Error() string {
	return fmt.Sprintf("matrix: skill %q assigned to undeclared category %q / subcategory %q",
		e.Skill, e.Category, e.Subcategory)
}

// Query-time errors indicate a caller bug (stale or invented ids), not user
// input. They propagate rather than being swallowed.

// UnknownCategoryError reports a category id not present in the matrix.
type UnknownCategoryError struct {
	ID string
}

func (e UnknownCategoryError) Error() string {
	return fmt.Sprintf("matrix: unknown category %q", e.ID)
}

// UnknownSubcategoryError reports a subcategory id not present in the matrix.
type UnknownSubcategoryError struct {
	ID string
}

func (e UnknownSubcategoryError) Error() string {
	return fmt.Sprintf("matrix: unknown subcategory %q", e.ID)
}

// UnknownSkillError reports a skill id or alias not present in the matrix.
type UnknownSkillError struct {
	ID string
}

func (e UnknownSkillError) Error() string {
	return fmt.Sprintf("matrix: unknown skill %q", e.ID)
}

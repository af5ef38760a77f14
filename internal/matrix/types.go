// Package matrix implements the skill catalog engine: loading declarative
// catalog documents into a single validated, immutable matrix, and answering
// availability and validity queries against a caller-owned selection.
//
// The matrix is built once by Load and never mutated afterwards, so it is
// safe for unsynchronized concurrent reads. A Selection is owned by exactly
// one caller (one wizard session); the query methods never modify it.
package matrix

import "fmt"

// Document is one parsed catalog source. Documents are produced by an
// external collaborator (the catalog package unmarshals them from YAML);
// the loader only requires the nested structure to be materialized.
type Document struct {
	Categories []CategoryDoc `yaml:"categories"`
	Skills     []SkillDoc    `yaml:"skills"`
}

// CategoryDoc declares a category and its subcategories in presentation order.
type CategoryDoc struct {
	ID            string           `yaml:"id"`
	Name          string           `yaml:"name"`
	Subcategories []SubcategoryDoc `yaml:"subcategories"`
}

// SubcategoryDoc declares a subcategory within a category.
type SubcategoryDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// SkillDoc is the raw record for a single skill as it appears in a source
// document. References in Requires and ConflictsWith may be aliases; the
// loader resolves them to canonical ids.
type SkillDoc struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Category      string   `yaml:"category"`
	Subcategory   string   `yaml:"subcategory"`
	Aliases       []string `yaml:"aliases"`
	Requires      []string `yaml:"requires"`
	ConflictsWith []string `yaml:"conflicts_with"`
}

// Skill is a selectable unit of the loaded catalog. Requires and
// ConflictsWith hold canonical skill ids in declared order.
type Skill struct {
	ID            string
	Name          string
	Category      string
	Subcategory   string
	Aliases       []string
	Requires      []string
	ConflictsWith []string
}

// Category is a grouping node with its subcategories in source order.
type Category struct {
	ID            string
	Name          string
	Subcategories []Subcategory
}

// Subcategory is a grouping node under a category.
type Subcategory struct {
	ID   string
	Name string
}

// Matrix is the fully loaded, validated catalog. All maps and slices are
// built once by Load; callers must treat returned values as read-only.
type Matrix struct {
	skills     map[string]*Skill
	aliases    map[string]string
	categories []Category

	// bySubcat maps subcategory id to skill ids in source order. Every
	// declared subcategory has an entry, possibly empty.
	bySubcat map[string][]string

	// conflicts is the symmetric closure of all conflicts_with declarations,
	// so query-time checks are plain membership tests in either direction.
	conflicts map[string]map[string]struct{}
}

// Selection is the caller-owned ordered set of chosen skill ids. Order is
// preserved for presentation; membership tests treat it as a set. Entries
// are canonical ids (callers resolve user input with Matrix.Resolve first).
type Selection []string

// Contains reports whether id is a member of the selection.
func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the selection with id appended, or unchanged if already present.
func (s Selection) Add(id string) Selection {
	if s.Contains(id) {
		return s
	}
	return append(s, id)
}

// Remove returns the selection without id, preserving the order of the rest.
func (s Selection) Remove(id string) Selection {
	out := make(Selection, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// SkillOption is one row of an availability query: a skill in a subcategory
// together with its presentation state for the current selection.
type SkillOption struct {
	Skill          *Skill
	Selected       bool
	Disabled       bool
	DisabledReason string
}

// ValidationKind discriminates the two validation outcomes.
type ValidationKind string

const (
	// MissingRequirement reports a selected skill whose prerequisite is
	// absent from the selection.
	MissingRequirement ValidationKind = "missing_requirement"

	// ConflictingSkills reports two selected skills that exclude each other.
	ConflictingSkills ValidationKind = "conflicting_skills"
)

// ValidationError is a single problem found in a selection. For
// MissingRequirement, Skill is the selected skill and Other the missing
// prerequisite. For ConflictingSkills, Skill is the pair member that appears
// first in the selection and Other the second.
type ValidationError struct {
	Kind  ValidationKind
	Skill string
	Other string
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case MissingRequirement:
		return fmt.Sprintf("%s requires %s", e.Skill, e.Other)
	case ConflictingSkills:
		return fmt.Sprintf("%s conflicts with %s", e.Skill, e.Other)
	default:
		return fmt.Sprintf("invalid selection: %s / %s", e.Skill, e.Other)
	}
}

// ValidationResult is the aggregate outcome of validating a selection.
// An invalid selection is an expected, recoverable state, so problems are
// reported as values here rather than as a failed call.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

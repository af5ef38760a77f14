package matrix

import "errors"

// Load merges one or more catalog documents into a validated Matrix.
//
// Merge policy: a skill id appearing in a later document fully replaces the
// earlier record (no field-level merge), but keeps its original position in
// presentation order. Category order comes from the first document that
// declares the category; later documents may append new subcategories but
// never reorder existing ones.
//
// Loading is atomic: on the first integrity violation a typed error is
// returned and no matrix is produced.
func Load(docs ...Document) (*Matrix, error) {
	if len(docs) == 0 {
		return nil, errors.New("matrix: no catalog documents given")
	}

	m := &Matrix{
		skills:    make(map[string]*Skill),
		aliases:   make(map[string]string),
		bySubcat:  make(map[string][]string),
		conflicts: make(map[string]map[string]struct{}),
	}

	catIndex := make(map[string]int)
	subcatSeen := make(map[string]map[string]bool)
	var order []string // skill ids in first-seen order

	for _, doc := range docs {
		for _, cd := range doc.Categories {
			idx, ok := catIndex[cd.ID]
			if !ok {
				idx = len(m.categories)
				catIndex[cd.ID] = idx
				subcatSeen[cd.ID] = make(map[string]bool)
				m.categories = append(m.categories, Category{ID: cd.ID, Name: cd.Name})
			}
			for _, sd := range cd.Subcategories {
				if subcatSeen[cd.ID][sd.ID] {
					continue
				}
				subcatSeen[cd.ID][sd.ID] = true
				m.categories[idx].Subcategories = append(m.categories[idx].Subcategories,
					Subcategory{ID: sd.ID, Name: sd.Name})
				m.bySubcat[sd.ID] = []string{}
			}
		}

		for _, sd := range doc.Skills {
			if _, ok := m.skills[sd.ID]; !ok {
				order = append(order, sd.ID)
			}
			m.skills[sd.ID] = &Skill{
				ID:            sd.ID,
				Name:          sd.Name,
				Category:      sd.Category,
				Subcategory:   sd.Subcategory,
				Aliases:       append([]string(nil), sd.Aliases...),
				Requires:      append([]string(nil), sd.Requires...),
				ConflictsWith: append([]string(nil), sd.ConflictsWith...),
			}
		}
	}

	// Alias table. Built after the merge so that a replaced skill record
	// does not leave stale alias claims behind. A canonical id of another
	// skill counts as already claimed.
	for _, id := range order {
		for _, alias := range m.skills[id].Aliases {
			if other, ok := m.skills[alias]; ok && other.ID != id {
				return nil, DuplicateAliasError{Alias: alias, Skill: id, Other: other.ID}
			}
			if prev, ok := m.aliases[alias]; ok && prev != id {
				return nil, DuplicateAliasError{Alias: alias, Skill: id, Other: prev}
			}
			m.aliases[alias] = id
		}
	}

	// Resolve requires/conflicts_with references to canonical ids. This must
	// run after every document is merged so forward references work.
	for _, id := range order {
		sk := m.skills[id]
		for i, ref := range sk.Requires {
			canon, ok := m.Resolve(ref)
			if !ok {
				return nil, UnknownReferenceError{Skill: id, Field: "requires", Ref: ref}
			}
			sk.Requires[i] = canon
		}
		for i, ref := range sk.ConflictsWith {
			canon, ok := m.Resolve(ref)
			if !ok {
				return nil, UnknownReferenceError{Skill: id, Field: "conflicts_with", Ref: ref}
			}
			sk.ConflictsWith[i] = canon
		}
	}

	// Integrity pass: requires/conflicts must not overlap, and every skill
	// must sit in a declared (category, subcategory) pair.
	for _, id := range order {
		sk := m.skills[id]

		required := make(map[string]bool, len(sk.Requires))
		for _, req := range sk.Requires {
			required[req] = true
		}
		for _, c := range sk.ConflictsWith {
			if required[c] {
				return nil, RequireConflictOverlapError{Skill: id, Ref: c}
			}
		}

		subs, ok := subcatSeen[sk.Category]
		if !ok || !subs[sk.Subcategory] {
			return nil, UnassignedCategoryError{
				Skill:       id,
				Category:    sk.Category,
				Subcategory: sk.Subcategory,
			}
		}
	}

	// Presentation order within each subcategory and the symmetric conflict
	// closure, both precomputed so queries are lookups only.
	for _, id := range order {
		sk := m.skills[id]
		m.bySubcat[sk.Subcategory] = append(m.bySubcat[sk.Subcategory], id)
		for _, c := range sk.ConflictsWith {
			addConflict(m.conflicts, id, c)
			addConflict(m.conflicts, c, id)
		}
	}

	return m, nil
}

func addConflict(conflicts map[string]map[string]struct{}, a, b string) {
	set, ok := conflicts[a]
	if !ok {
		set = make(map[string]struct{})
		conflicts[a] = set
	}
	set[b] = struct{}{}
}

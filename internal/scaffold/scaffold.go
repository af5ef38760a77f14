// Package scaffold applies a finalized skill selection to disk: it creates
// the project directory, writes the stack manifest, and renders the starter
// README. It assumes the selection has already passed matrix validation.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forgeworks/stackforge/internal/matrix"
	"github.com/forgeworks/stackforge/internal/template"
)

// Options controls where and how a project is generated.
type Options struct {
	Dir      string // project directory, created if missing
	Project  string // project name written into the manifest and README
	Manifest string // manifest filename, e.g. "stack.yaml"
	Force    bool   // overwrite an existing manifest
}

// Manifest is the stack description written into a new project.
type Manifest struct {
	Project string  `yaml:"project"`
	Skills  []Entry `yaml:"skills"`
}

// Entry is one chosen skill in the manifest, in selection order.
type Entry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory"`
}

const readmeTemplate = `# {{project}}

Scaffolded with stackforge.

## Stack

{{stack}}
`

// Apply writes the project skeleton for the given selection.
func Apply(m *matrix.Matrix, sel matrix.Selection, opts Options) error {
	if opts.Project == "" {
		opts.Project = filepath.Base(opts.Dir)
	}
	if opts.Manifest == "" {
		opts.Manifest = "stack.yaml"
	}

	manifestPath := filepath.Join(opts.Dir, opts.Manifest)
	if _, err := os.Stat(manifestPath); err == nil && !opts.Force {
		return fmt.Errorf("manifest already exists at %s (use --force to overwrite)", manifestPath)
	}

	manifest, err := buildManifest(m, sel, opts.Project)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	readme := template.Render(readmeTemplate, map[string]string{
		"project": opts.Project,
		"stack":   stackList(manifest.Skills),
	})
	readmePath := filepath.Join(opts.Dir, "README.md")
	if err := os.WriteFile(readmePath, []byte(readme), 0644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}

	return nil
}

func buildManifest(m *matrix.Matrix, sel matrix.Selection, project string) (*Manifest, error) {
	manifest := &Manifest{Project: project, Skills: make([]Entry, 0, len(sel))}

	for _, id := range sel {
		sk, ok := m.Skill(id)
		if !ok {
			return nil, fmt.Errorf("selection references unknown skill %q", id)
		}
		manifest.Skills = append(manifest.Skills, Entry{
			ID:          sk.ID,
			Name:        sk.Name,
			Category:    sk.Category,
			Subcategory: sk.Subcategory,
		})
	}

	return manifest, nil
}

func stackList(entries []Entry) string {
	if len(entries) == 0 {
		return "_No skills selected._"
	}
	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- **%s** (%s / %s)", e.Name, e.Category, e.Subcategory))
	}
	return strings.Join(lines, "\n")
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forgeworks/stackforge/internal/catalog"
	"github.com/forgeworks/stackforge/internal/cli/wizard"
	"github.com/forgeworks/stackforge/internal/config"
	"github.com/forgeworks/stackforge/internal/matrix"
	"github.com/forgeworks/stackforge/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new [directory]",
	Short: "Scaffold a new project interactively",
	Long: `Scaffold a new project by picking a stack from the skill catalog.

The wizard walks through every category, disables skills whose prerequisites
are missing, and refuses to finish while the selection contains conflicts.

Examples:
  stackforge new my-app
  stackforge new my-app --skill react --skill tailwind
  stackforge new my-app --name "My App" --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("name", "", "Project name (defaults to the directory name)")
	newCmd.Flags().StringArray("skill", nil, "Preselect a skill by id or alias (repeatable)")
	newCmd.Flags().Bool("force", false, "Overwrite an existing stack manifest")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := catalog.Build(cfg.Catalog.Extends...)
	if err != nil {
		return err
	}

	preselect, _ := cmd.Flags().GetStringArray("skill")
	var sel matrix.Selection
	for _, name := range preselect {
		id, ok := m.Resolve(name)
		if !ok {
			return fmt.Errorf("unknown skill %q (try 'stackforge list')", name)
		}
		sel = sel.Add(id)
	}

	sel, err = wizard.Run(m, sel)
	if err != nil {
		return err
	}

	// The wizard only returns validated selections, but it is not the only
	// writer of preselects in the future; validate once more before touching
	// the filesystem.
	if result := m.Validate(sel); !result.Valid {
		return fmt.Errorf("selection is invalid: %s", result.Errors[0])
	}

	dir := cfg.Scaffold.Dir
	if len(args) == 1 {
		dir = filepath.Join(cfg.Scaffold.Dir, args[0])
	}
	name, _ := cmd.Flags().GetString("name")
	force, _ := cmd.Flags().GetBool("force")

	opts := scaffold.Options{
		Dir:      dir,
		Project:  name,
		Manifest: cfg.Scaffold.Manifest,
		Force:    force,
	}
	if err := scaffold.Apply(m, sel, opts); err != nil {
		return err
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Wrote %s and README.md to %s\n", cfg.Scaffold.Manifest, dir)
	}
	fmt.Printf("Scaffolded %s with %d skills\n", dir, len(sel))

	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeworks/stackforge/internal/catalog"
	"github.com/forgeworks/stackforge/internal/config"
	"github.com/forgeworks/stackforge/internal/matrix"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill>...",
	Short: "Check a stack selection for consistency",
	Long: `Check whether a set of skills forms a consistent stack.

Skills may be given by id or alias. Every unmet requirement and every
conflicting pair is reported, not just the first.

Examples:
  stackforge validate react zustand
  stackforge validate hono better-auth`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m, err := catalog.Build(cfg.Catalog.Extends...)
	if err != nil {
		return err
	}

	var sel matrix.Selection
	for _, name := range args {
		id, ok := m.Resolve(name)
		if !ok {
			return fmt.Errorf("unknown skill %q (try 'stackforge list')", name)
		}
		sel = sel.Add(id)
	}

	result := m.Validate(sel)
	if result.Valid {
		fmt.Println("Selection is valid")
		return nil
	}

	for _, e := range result.Errors {
		fmt.Println("✗ " + e.Error())
	}
	return fmt.Errorf("selection has %d problem(s)", len(result.Errors))
}

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// TestAllCommandsHaveShortDescription walks the entire command tree and
// verifies that every command has a non-empty Short description.
func TestAllCommandsHaveShortDescription(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Short, "%s: missing Short description", cmd.CommandPath())
		})
	})
}

// TestAllCommandsHaveLongDescription walks the entire command tree and
// verifies that every command has a non-empty Long description.
func TestAllCommandsHaveLongDescription(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Long, "%s: missing Long description", cmd.CommandPath())
		})
	})
}

// TestLeafCommandsHaveExamples verifies that every leaf command (one with
// RunE or Run) has a non-empty Example field.
func TestLeafCommandsHaveExamples(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		if cmd.RunE == nil && cmd.Run == nil {
			return
		}
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Example, "%s: leaf command missing Example field", cmd.CommandPath())
		})
	})
}

// TestNoEmbeddedExamplesInLong ensures no command embeds "Example:" text
// inside the Long field, since that belongs in the dedicated Example field.
func TestNoEmbeddedExamplesInLong(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.False(t,
				strings.Contains(cmd.Long, "\nExample:") || strings.Contains(cmd.Long, "\nExamples:"),
				"%s: Long contains embedded examples; move to Example field", cmd.CommandPath())
		})
	})
}

// TestAllFlagsHaveDescriptions verifies every registered flag across all
// commands has a non-empty usage description string.
func TestAllFlagsHaveDescriptions(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			t.Run(cmd.CommandPath()+"/--"+f.Name, func(t *testing.T) {
				assert.NotEmpty(t, f.Usage, "%s/--%s: missing usage description", cmd.CommandPath(), f.Name)
			})
		})
	})
}

func TestEnrichParentLongAddsSubcommandList(t *testing.T) {
	parent := &cobra.Command{Use: "parent", Long: "parent description"}
	child := &cobra.Command{Use: "child", Short: "does a thing", Run: func(*cobra.Command, []string) {}}
	parent.AddCommand(child)

	enrichParentLong(parent)

	assert.Contains(t, parent.Long, "Subcommands:")
	assert.Contains(t, parent.Long, "child")
}

func TestWalkCommandsVisitsAllDescendants(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	mid := &cobra.Command{Use: "mid"}
	leaf := &cobra.Command{Use: "leaf"}
	mid.AddCommand(leaf)
	root.AddCommand(mid)

	var visited []string
	walkCommands(root, func(cmd *cobra.Command) {
		visited = append(visited, cmd.Use)
	})

	assert.ElementsMatch(t, []string{"root", "mid", "leaf"}, visited)
}

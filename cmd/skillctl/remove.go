package main

import (
	"fmt"
	"os"

	"github.com/skillctl/skillctl/pkg/installer"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/registry"
	"github.com/skillctl/skillctl/pkg/skills"
	"github.com/spf13/cobra"
)

type RemoveConfig struct {
	Personal bool
	Project  bool
}

func NewRemoveConfig() *RemoveConfig {
	return &RemoveConfig{
		Personal: false,
		Project:  false,
	}
}

var removeCmd = &cobra.Command{
	Use:   "remove <skill-name>",
	Short: "Remove an installed skill from a registry",
	Long: `Remove a skill's registry entry by name. Symbolic links are unlinked
without touching the skill folder they point to.

Examples:
  skillctl remove my-skill --personal
  skillctl remove my-skill --project`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getRemoveConfigFromFlags(cmd)
		runRemove(cmd, args[0], config)
	},
}

func init() {
	defaults := NewRemoveConfig()
	removeCmd.Flags().Bool("personal", defaults.Personal, "Remove from ~/.claude/skills/<skill-name>")
	removeCmd.Flags().Bool("project", defaults.Project, "Remove from ./.claude/skills/<skill-name>")
	rootCmd.AddCommand(removeCmd)
}

func getRemoveConfigFromFlags(cmd *cobra.Command) *RemoveConfig {
	config := NewRemoveConfig()
	if personal, err := cmd.Flags().GetBool("personal"); err == nil {
		config.Personal = personal
	}
	if project, err := cmd.Flags().GetBool("project"); err == nil {
		config.Project = project
	}
	return config
}

func runRemove(cmd *cobra.Command, name string, config *RemoveConfig) {
	scope, err := resolveScope(config.Personal, config.Project)
	if err != nil {
		presenter.Error(err, "Invalid arguments")
		cmd.Usage()
		os.Exit(1)
	}

	reg, err := registry.New()
	if err != nil {
		presenter.Error(err, "Failed to resolve registry location")
		os.Exit(1)
	}

	engine := installer.New(reg, skills.NewValidator(), presenter.Confirm)

	entry, err := engine.Remove(cmd.Context(), name, scope)
	if err != nil {
		presenter.Error(err, "Removal failed")
		os.Exit(1)
	}

	if entry.State == registry.EntryLinked {
		presenter.Success(fmt.Sprintf("Removed skill '%s' from %s registry (link target untouched)", name, scope))
	} else {
		presenter.Success(fmt.Sprintf("Removed skill '%s' from %s registry", name, scope))
	}
}

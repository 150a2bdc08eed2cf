package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/skillctl/skillctl/pkg/installer"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/registry"
	"github.com/skillctl/skillctl/pkg/skills"
	"github.com/spf13/cobra"
)

type InstallConfig struct {
	Personal bool
	Project  bool
}

func NewInstallConfig() *InstallConfig {
	return &InstallConfig{
		Personal: false,
		Project:  false,
	}
}

var installCmd = &cobra.Command{
	Use:   "install <skill-folder-path>",
	Short: "Install a skill by symlinking it into a registry",
	Long: `Install a skill folder into the personal or project registry by
creating a symbolic link. The skill is validated first, and an existing
registry entry is only replaced after interactive confirmation.

Examples:
  skillctl install ./my-skill --personal
  skillctl install ./my-skill --project`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getInstallConfigFromFlags(cmd)
		runInstall(cmd, args[0], config)
	},
}

func init() {
	defaults := NewInstallConfig()
	installCmd.Flags().Bool("personal", defaults.Personal, "Install to ~/.claude/skills/<skill-name>")
	installCmd.Flags().Bool("project", defaults.Project, "Install to ./.claude/skills/<skill-name>")
	rootCmd.AddCommand(installCmd)
}

func getInstallConfigFromFlags(cmd *cobra.Command) *InstallConfig {
	config := NewInstallConfig()
	if personal, err := cmd.Flags().GetBool("personal"); err == nil {
		config.Personal = personal
	}
	if project, err := cmd.Flags().GetBool("project"); err == nil {
		config.Project = project
	}
	return config
}

// resolveScope maps the --personal/--project flag pair to a scope,
// requiring exactly one of them
func resolveScope(personal, project bool) (registry.Scope, error) {
	switch {
	case personal && project:
		return "", errors.New("--personal and --project are mutually exclusive")
	case personal:
		return registry.ScopePersonal, nil
	case project:
		return registry.ScopeProject, nil
	default:
		return "", errors.New("either --personal or --project is required")
	}
}

func runInstall(cmd *cobra.Command, skillPath string, config *InstallConfig) {
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

	presenter.Info(fmt.Sprintf("Installing skill to %s registry: %s", scope, skillPath))

	result, err := engine.Install(cmd.Context(), skillPath, scope)
	if err != nil {
		if errors.Is(err, installer.ErrCancelled) {
			presenter.Warning("Installation cancelled.")
		} else {
			presenter.Error(err, "Installation failed")
		}
		os.Exit(1)
	}

	presenter.Info(result.ValidationMessage)
	if result.Replaced {
		presenter.Info("Replaced existing registry entry")
	}
	presenter.Success(fmt.Sprintf("Installed skill to %s registry:", result.Scope))
	presenter.Info(fmt.Sprintf("  %s -> %s", result.Dest, result.Source))
}

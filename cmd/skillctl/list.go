package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/registry"
	"github.com/skillctl/skillctl/pkg/skills"
	"github.com/spf13/cobra"
)

type ListConfig struct {
	Personal bool
	Project  bool
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Personal: false,
		Project:  false,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List the skills installed in the personal and project registries,
including each entry's link target. Pass --personal or --project to
restrict the listing to one registry.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getListConfigFromFlags(cmd)
		runList(config)
	},
}

func init() {
	defaults := NewListConfig()
	listCmd.Flags().Bool("personal", defaults.Personal, "List only the personal registry")
	listCmd.Flags().Bool("project", defaults.Project, "List only the project registry")
	rootCmd.AddCommand(listCmd)
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if personal, err := cmd.Flags().GetBool("personal"); err == nil {
		config.Personal = personal
	}
	if project, err := cmd.Flags().GetBool("project"); err == nil {
		config.Project = project
	}
	return config
}

func listScopes(config *ListConfig) []registry.Scope {
	switch {
	case config.Personal && !config.Project:
		return []registry.Scope{registry.ScopePersonal}
	case config.Project && !config.Personal:
		return []registry.Scope{registry.ScopeProject}
	default:
		return []registry.Scope{registry.ScopePersonal, registry.ScopeProject}
	}
}

// truncateDescription shortens a description for table display without
// splitting multibyte characters
func truncateDescription(description string, max int) string {
	runes := []rune(description)
	if len(runes) <= max {
		return description
	}
	return string(runes[:max-3]) + "..."
}

func runList(config *ListConfig) {
	reg, err := registry.New()
	if err != nil {
		presenter.Error(err, "Failed to resolve registry location")
		os.Exit(1)
	}

	installed, err := skills.ListInstalled(reg, listScopes(config)...)
	if err != nil {
		presenter.Error(err, "Failed to list installed skills")
		os.Exit(1)
	}

	if len(installed) == 0 {
		presenter.Info("No skills installed")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCOPE\tTYPE\tTARGET\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----\t----\t------\t-----------")

	for _, item := range installed {
		target := item.LinkTarget
		if target == "" {
			target = item.Path
		}
		description := truncateDescription(item.Description, 60)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", item.Name, item.Scope, item.State, target, description)
	}
	tw.Flush()
}

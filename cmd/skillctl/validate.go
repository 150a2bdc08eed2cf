package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillctl/skillctl/pkg/installer"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/skillctl/skillctl/pkg/skills"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill-folder-path>",
	Short: "Validate a skill folder's structure and metadata",
	Long: `Validate a skill folder against the SKILL.md metadata rules without
making any changes.

Examples:
  skillctl validate ./my-skill`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(skillPath string) {
	dir, err := installer.ResolveSkillDir(skillPath)
	if err != nil {
		presenter.Error(err, "Validation failed")
		os.Exit(1)
	}

	presenter.Info(fmt.Sprintf("Validating skill: %s", filepath.Base(dir)))

	ok, message := skills.NewValidator().ValidateSkill(dir)
	if !ok {
		presenter.Error(fmt.Errorf("%s", message), "Validation failed")
		os.Exit(1)
	}

	presenter.Success(message)
}

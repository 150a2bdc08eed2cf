package main

import (
	"fmt"
	"os"

	"github.com/skillctl/skillctl/pkg/logger"
	"github.com/skillctl/skillctl/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "Manage skills in local personal and project registries",
	Long: `skillctl installs, validates, lists, and removes skills.

A skill is a folder containing a SKILL.md file with YAML frontmatter.
Installing a skill places a symbolic link to the folder under
~/.claude/skills (personal) or ./.claude/skills (project).`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Load config file if it exists (ignore errors if it doesn't).
		// Deferred to here so argument and flag errors are reported
		// before anything touches the filesystem.
		_ = viper.ReadInConfig()

		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, using default", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLCTL")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillctl")
	viper.AddConfigPath(".")

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func main() {
	// Usage text goes to stdout, including on usage errors
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

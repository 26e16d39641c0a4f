// Package cmd implements the abroadctl command tree. Each subcommand stands
// in for one screen of the mobile app, wired through the shared session
// manager and API client.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"abroadctl/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "abroadctl",
	Short: "Command-line client for the study-abroad platform",
	Long: `abroadctl talks to the study-abroad management backend: sign in,
track students and their applications, upload documents, and chat with
advisors, all from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.abroadctl/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "backend base URL (overrides api.base_url)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ABROADCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

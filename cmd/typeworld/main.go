// Command typeworld inspects the font catalog and path identities the
// typeworld resolution layer would hand to a typesetting engine.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/typeworld/internal/config"
)

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "typeworld",
	Short:         "Virtual filesystem and font resolution for typesetting engines",
	Long: `Typeworld resolves source files and fonts for a document typesetting
engine: filesystem entities reachable through multiple paths collapse to a
single 128-bit identity, and fonts are discovered across the machine's
font directories with decoding deferred until selection.

This tool exposes the resolution layer for inspection: list the font
catalog a compile would see, or print the identity of a path.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .typeworld.yml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringArray("font-path", nil, "extra font directory to search (repeatable)")
	flags.StringArray("font-file", nil, "extra font file to index (repeatable)")
	flags.Bool("ignore-system-fonts", false, "do not scan the platform font directories")

	bindFlag("log.level", flags.Lookup("log-level"))
	bindFlag("log.format", flags.Lookup("log-format"))
	bindFlag("fonts.paths", flags.Lookup("font-path"))
	bindFlag("fonts.files", flags.Lookup("font-file"))
	bindFlag("fonts.ignore_system", flags.Lookup("ignore-system-fonts"))

	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// initConfig loads configuration with the usual precedence: flags over
// TYPEWORLD_* environment variables over the .typeworld.yml config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".typeworld")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TYPEWORLD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig is shared by the subcommands.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

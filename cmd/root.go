// Package cmd is for command line interactions with the gcplot application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gcplot",
	Short: `Profile the GC content of a DNA sequence.
Slide a window along a FASTA sequence and plot the GC content of each window`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional YAML file that overrides the default settings
	RootCmd.PersistentFlags().String("settings", "", "path to a YAML settings file")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}

// bindFlags binds the settings flags of the command being run to viper. It's done
// before running, rather than in init, since commands share flag names.
func bindFlags(cmd *cobra.Command, args []string) {
	for _, name := range []string{"window", "step", "verbose"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			viper.BindPFlag(name, f)
		}
	}
}

// Package cmd is for command line interactions with the velvetTarget
// application
package cmd

import (
	"log"

	"github.com/atcg/velvetTarget/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "velvetTarget",
	Short: `Pick the velvet k-mer size that best recovers a known set of target sequences.
Trims and joins paired-end reads, assembles them across a range of k-mer
sizes, and scores each assembly by how completely the targets align into it`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(config.Setup)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each external command before running it")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// Command gomces is the CLI harness over mcesapi (spec §6, §10.5): it reads
// molecule-text files through molfile, drives PairwiseMCES/AllProducts/
// Iterative/ShrinkGraphs, and prints the tab-separated result tables the
// original harness scripts produced.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tklehn/gomces/internal/obs"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gomces",
	Short: "Maximum common edge subgraph search over molecule graphs",
	Long: "gomces runs the McGregor pairwise search and the Levi/Barrow-Burstall\n" +
		"clique pipeline over molecule-text and adjacency-list graph files.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .gomces.yaml)")
	rootCmd.PersistentFlags().Bool("molecule", false, "enable atom/bond type filtering")
	rootCmd.PersistentFlags().Bool("limit-pg", true, "restrict the modular product to the anchor's neighbourhood")
	rootCmd.PersistentFlags().Int("radius", -1, "accepted but not read by any command; shrink uses the smallest anchor diameter")
	rootCmd.PersistentFlags().String("format", "table", "output format: table or json")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit structured JSON logs")
	rootCmd.PersistentFlags().String("watch", "", "pairwise only: re-run with each file created in DIR as the H graph")

	_ = viper.BindPFlag("molecule", rootCmd.PersistentFlags().Lookup("molecule"))
	_ = viper.BindPFlag("limit_pg", rootCmd.PersistentFlags().Lookup("limit-pg"))
	_ = viper.BindPFlag("radius", rootCmd.PersistentFlags().Lookup("radius"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
	_ = viper.BindPFlag("watch", rootCmd.PersistentFlags().Lookup("watch"))

	rootCmd.AddCommand(pairwiseCmd)
	rootCmd.AddCommand(multiCmd)
	rootCmd.AddCommand(shrinkCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".gomces")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("GOMCES")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "gomces: config error: %v\n", err)
		}
	}
}

func newLogger() (*zap.Logger, string) {
	runID := obs.RunID()
	logger, err := obs.NewLogger(viper.GetString("log_level"), viper.GetBool("log_json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gomces: logger init failed: %v\n", err)
		os.Exit(1)
	}
	return logger, runID
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

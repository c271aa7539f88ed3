package cmd

import (
	"fmt"
	"log"

	"github.com/atcg/velvetTarget/config"
	"github.com/atcg/velvetTarget/internal/sweep"
	"github.com/spf13/cobra"
)

// classifyCmd reruns target classification on an existing BLAST XML
// report, without touching any external tool.
var classifyCmd = &cobra.Command{
	Use:                        "classify",
	Run:                        runClassify,
	Short:                      "Classify target recovery from an existing BLAST XML report",
	SuggestionsMinimumDistance: 3,
}

func init() {
	classifyCmd.Flags().StringP("in", "i", "", "BLAST XML report (blastn -outfmt 5)")
	classifyCmd.Flags().StringP("name", "n", "report", "name printed in the statistics header")
	classifyCmd.Flags().IntP("kmer", "k", 0, "k-mer value printed in the statistics header")

	classifyCmd.MarkFlagRequired("in")

	RootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	conf := config.New()

	in, _ := cmd.Flags().GetString("in")
	name, _ := cmd.Flags().GetString("name")
	k, _ := cmd.Flags().GetInt("kmer")

	results, err := sweep.ParseBlastXML(in)
	if err != nil {
		log.Fatalf("%v", err)
	}

	stats := sweep.Classify(results, conf.NestedCoverage)
	fmt.Print(sweep.FormatStats(name, k, stats))
}

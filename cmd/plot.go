package cmd

import (
	"log"
	"os"

	"github.com/atcg/velvetTarget/internal/sweep"
	"github.com/spf13/cobra"
)

// plotCmd re-renders the sweep plot from a previously written table,
// so a finished sweep can be replotted without rerunning anything.
var plotCmd = &cobra.Command{
	Use:                        "plot",
	Run:                        runPlot,
	Short:                      "Render the recovery-vs-k plot from a sweep table",
	SuggestionsMinimumDistance: 3,
}

func init() {
	plotCmd.Flags().StringP("in", "i", "", "sweep table written by the sweep command (.tsv)")
	plotCmd.Flags().StringP("out", "o", "sweep.png", "plot file to write (.png, .svg or .pdf)")
	plotCmd.Flags().StringP("title", "t", "sweep", "plot title")

	plotCmd.MarkFlagRequired("in")

	RootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("failed to open sweep table %s: %v", in, err)
	}
	defer f.Close()

	curve, err := sweep.ReadTSV(f)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if path, err := sweep.PlotCurve(curve, title, out); err != nil {
		log.Fatalf("%v", err)
	} else {
		log.Printf("wrote %s", path)
	}
}

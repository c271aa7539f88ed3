package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atcg/velvetTarget/config"
	"github.com/atcg/velvetTarget/internal/sweep"
	"github.com/spf13/cobra"
)

// sweepCmd runs the whole pipeline: read preparation once, then one
// assembly + alignment + classification cycle per odd k-mer value.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Run:   runSweep,
	Short: "Assemble at each odd k-mer size in [from, to] and score target recovery",
	Long: `Assemble at each odd k-mer size in [from, to] and score target recovery.

For every k, velvetTarget assembles the prepared reads with velvet,
BLASTs the target probes against the contigs, and counts how many
targets matched at all, matched a single contig, matched it in a single
segment, and sat fully nested inside a contig. A per-k statistics
report, an aggregate table and a plot of the four counts against k are
written into the run directory.

With --samples, a tab-separated file of "name r1 r2" lines replaces
--r1/--r2/--name and the samples are swept concurrently, each in its
own directory.`,
	SuggestionsMinimumDistance: 3,
}

func init() {
	sweepCmd.Flags().String("r1", "", "FASTQ file with forward reads (.gz ok)")
	sweepCmd.Flags().String("r2", "", "FASTQ file with reverse reads (.gz ok)")
	sweepCmd.Flags().StringP("adapters", "a", "", "FASTA file with adapter sequences")
	sweepCmd.Flags().StringP("probes", "p", "", "FASTA file with target/probe sequences")
	sweepCmd.Flags().Int("from", 0, "low end of the k-mer range, odd")
	sweepCmd.Flags().Int("to", 0, "high end of the k-mer range, odd")
	sweepCmd.Flags().StringP("name", "n", "", "name prefixing all intermediate and output files")
	sweepCmd.Flags().StringP("out", "o", "", "output directory (default: a new <name>-<id> directory)")
	sweepCmd.Flags().BoolP("miseq", "m", false, "long-read mode: skip read joining")
	sweepCmd.Flags().String("samples", "", "tab-separated file of name/r1/r2 rows to sweep concurrently")

	sweepCmd.MarkFlagRequired("adapters")
	sweepCmd.MarkFlagRequired("probes")
	sweepCmd.MarkFlagRequired("from")
	sweepCmd.MarkFlagRequired("to")

	RootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) {
	conf := config.New()

	adapters, _ := cmd.Flags().GetString("adapters")
	probes, _ := cmd.Flags().GetString("probes")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	miseq, _ := cmd.Flags().GetBool("miseq")
	out, _ := cmd.Flags().GetString("out")
	samplesPath, _ := cmd.Flags().GetString("samples")

	// reject a bad k-mer range before any files are touched
	if _, err := sweep.Kmers(from, to); err != nil {
		log.Fatalf("%v", err)
	}

	input := sweep.Input{
		Adapters: adapters,
		Probes:   probes,
		From:     from,
		To:       to,
		Miseq:    miseq,
	}

	tc := sweep.NewToolchain()
	ctx := context.Background()

	if samplesPath != "" {
		samples, err := readSamples(samplesPath, input)
		if err != nil {
			log.Fatalf("%v", err)
		}

		failed := 0
		for _, res := range sweep.SweepAll(ctx, samples, out, conf, tc) {
			if res.Err != nil {
				log.Printf("sample %s failed: %v", res.Name, res.Err)
				failed++
				continue
			}
			finishRun(res.Run, res.Curve)
		}
		if failed > 0 {
			log.Fatalf("%d of %d samples failed", failed, len(samples))
		}
		return
	}

	name, _ := cmd.Flags().GetString("name")
	r1, _ := cmd.Flags().GetString("r1")
	r2, _ := cmd.Flags().GetString("r2")
	if name == "" || r1 == "" || r2 == "" {
		log.Fatalf("--name, --r1 and --r2 are required unless --samples is given")
	}

	run, err := sweep.NewRun(name, out, conf)
	if err != nil {
		log.Fatalf("%v", err)
	}

	input.Reads = sweep.ReadPair{R1: r1, R2: r2}
	curve, err := sweep.Sweep(ctx, run, tc, input)
	if err != nil {
		log.Fatalf("%v", err)
	}

	finishRun(run, curve)
}

// finishRun writes one sample's aggregate outputs and console summary.
func finishRun(run *sweep.Run, curve *sweep.Curve) {
	if path, err := curve.SaveTSV(run); err != nil {
		log.Fatalf("%v", err)
	} else {
		log.Printf("%s: wrote %s", run.Name, path)
	}

	if path, err := sweep.SavePlot(run, curve); err != nil {
		log.Printf("%s: %v", run.Name, err)
	} else {
		log.Printf("%s: wrote %s", run.Name, path)
	}

	sweep.PrintSummary(os.Stdout, run.Name, curve)
}

// readSamples parses a tab-separated samples file: one sample per
// line, "name r1 r2". Blank lines and #-comments are skipped.
func readSamples(path string, input sweep.Input) ([]sweep.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file %s: %v", path, err)
	}
	defer f.Close()

	var samples []sweep.Sample
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cols := strings.Fields(text)
		if len(cols) != 3 {
			return nil, fmt.Errorf("samples file %s line %d has %d columns, want name/r1/r2", path, line, len(cols))
		}

		in := input
		in.Reads = sweep.ReadPair{R1: cols[1], R2: cols[2]}
		samples = append(samples, sweep.Sample{Name: cols[0], Input: in})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples file %s: %v", path, err)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("samples file %s has no samples", path)
	}

	return samples, nil
}

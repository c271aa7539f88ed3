package sweep

import (
	"context"
	"fmt"
	"log"
)

// Toolchain bundles the external-tool collaborators the sweep
// delegates to. Tests swap in fakes so the classification and
// aggregation logic runs against synthetic files.
type Toolchain struct {
	Trimmer
	QualityFilter
	Joiner
	Assembler
	Aligner
}

// NewToolchain returns the production toolchain: fastq-mcf, sickle,
// fastq-join, velvet and BLAST+.
func NewToolchain() Toolchain {
	return Toolchain{
		Trimmer:       NewTrimmer(),
		QualityFilter: NewQualityFilter(),
		Joiner:        NewJoiner(),
		Assembler:     NewAssembler(),
		Aligner:       NewBlastAligner(),
	}
}

// Input is everything one sample's sweep needs.
type Input struct {
	// Reads is the raw paired-end read files
	Reads ReadPair

	// Adapters is a FASTA file of adapter sequences to trim
	Adapters string

	// Probes is a FASTA file of the target sequences whose
	// recovery is being measured
	Probes string

	// From and To bound the k-mer range, both odd, inclusive
	From, To int

	// Miseq skips read joining for long-read libraries
	Miseq bool
}

// Point is one k-mer value's recovery summary.
type Point struct {
	K     int
	Stats Stats
}

// Kmers expands a [from, to] bound pair into the ascending odd k-mer
// values of the sweep. Both bounds must be odd positive integers with
// from <= to; anything else is rejected outright rather than coerced.
func Kmers(from, to int) ([]int, error) {
	if from <= 0 || to <= 0 {
		return nil, fmt.Errorf("k-mer bounds must be positive, got %d and %d", from, to)
	}
	if from%2 == 0 || to%2 == 0 {
		return nil, fmt.Errorf("k-mer bounds must both be odd, got %d and %d", from, to)
	}
	if from > to {
		return nil, fmt.Errorf("k-mer range is inverted: %d > %d", from, to)
	}

	var ks []int
	for k := from; k <= to; k += 2 {
		ks = append(ks, k)
	}

	return ks, nil
}

// Sweep runs one sample end to end: read preparation once, then one
// assembly + alignment + classification cycle per k-mer value. A k
// value whose assembly or alignment fails is recorded and skipped;
// the sweep continues with the next value. Failing to write a per-k
// statistics report aborts the run.
func Sweep(ctx context.Context, run *Run, tc Toolchain, in Input) (*Curve, error) {
	ks, err := Kmers(in.From, in.To)
	if err != nil {
		return nil, err
	}

	probeCount, err := CountFasta(in.Probes)
	if err != nil {
		return nil, err
	}
	if probeCount == 0 {
		return nil, fmt.Errorf("no target sequences in %s", in.Probes)
	}
	log.Printf("%s: %d target sequences in %s", run.Name, probeCount, in.Probes)

	asmIn, err := prepare(ctx, run, tc, in)
	if err != nil {
		return nil, err
	}

	curve := &Curve{}
	for _, k := range ks {
		stats, err := sweepOne(ctx, run, tc, asmIn, in.Probes, k)
		if err != nil {
			log.Printf("%s: k=%d failed, continuing: %v", run.Name, k, err)
			curve.Fail(k)
			continue
		}

		if err := WriteStatsFile(run, k, stats); err != nil {
			return nil, err
		}

		curve.Add(Point{K: k, Stats: stats})
	}

	return curve, nil
}

// prepare runs the per-sample front half of the pipeline: adapter
// trimming, quality filtering and, unless in miseq mode, read
// joining. The joined reads are folded into the singletons file so
// velvet sees them as one single-end library.
func prepare(ctx context.Context, run *Run, tc Toolchain, in Input) (AssemblyInput, error) {
	r1Count, err := CountFastq(in.Reads.R1)
	if err != nil {
		return AssemblyInput{}, err
	}
	if r1Count == 0 {
		return AssemblyInput{}, fmt.Errorf("no reads in %s", in.Reads.R1)
	}
	log.Printf("%s: %d raw read pairs", run.Name, r1Count)

	trimmed, err := tc.Trim(ctx, run, in.Adapters, in.Reads)
	if err != nil {
		return AssemblyInput{}, fmt.Errorf("adapter trimming failed: %v", err)
	}

	filtered, singles, err := tc.Filter(ctx, run, trimmed)
	if err != nil {
		return AssemblyInput{}, fmt.Errorf("quality filtering failed: %v", err)
	}

	if in.Miseq {
		// long reads assemble better unjoined
		return AssemblyInput{Singles: singles, Residual: filtered}, nil
	}

	joined, residual, err := tc.Join(ctx, run, filtered)
	if err != nil {
		return AssemblyInput{}, fmt.Errorf("read joining failed: %v", err)
	}

	merged := run.Path("singles_joined.fastq")
	if err := concat(merged, singles, joined); err != nil {
		return AssemblyInput{}, err
	}
	run.remove(singles, joined)

	return AssemblyInput{Singles: merged, Residual: residual}, nil
}

// sweepOne is one k-mer value's cycle: assemble, align, classify.
func sweepOne(ctx context.Context, run *Run, tc Toolchain, asmIn AssemblyInput, probes string, k int) (Stats, error) {
	contigs, err := tc.Assemble(ctx, run, asmIn, k)
	if err != nil {
		return Stats{}, fmt.Errorf("assembly failed: %v", err)
	}

	if cs, err := ContigStats(contigs); err == nil {
		log.Printf("%s: k=%d assembled %d contigs, %d bp, N50 %d", run.Name, k, cs.Count, cs.TotalLen, cs.N50)
	}

	report, err := tc.Align(ctx, run, contigs, probes, k)
	if err != nil {
		return Stats{}, fmt.Errorf("alignment failed: %v", err)
	}

	CleanupGraph(run, k)

	results, err := ParseBlastXML(report)
	if err != nil {
		return Stats{}, err
	}
	run.remove(report)

	return Classify(results, run.conf.NestedCoverage), nil
}

package sweep

import (
	"context"
	"strconv"
)

// ReadPair is a pair of FASTQ files holding mated reads.
type ReadPair struct {
	R1 string
	R2 string
}

// Trimmer removes adapter sequence from a raw read pair.
type Trimmer interface {
	Trim(ctx context.Context, run *Run, adapters string, raw ReadPair) (ReadPair, error)
}

// QualityFilter trims low-quality read ends and drops short reads,
// emitting the surviving pairs plus a singletons file of reads whose
// mate did not survive.
type QualityFilter interface {
	Filter(ctx context.Context, run *Run, trimmed ReadPair) (filtered ReadPair, singles string, err error)
}

// Joiner overlaps a filtered read pair into joined fragments, leaving
// the pairs that would not join in two residual files.
type Joiner interface {
	Join(ctx context.Context, run *Run, filtered ReadPair) (joined string, residual ReadPair, err error)
}

// fastqMcf runs ea-utils' fastq-mcf for adapter trimming.
type fastqMcf struct{}

// NewTrimmer returns the fastq-mcf-backed Trimmer.
func NewTrimmer() Trimmer {
	return fastqMcf{}
}

func (fastqMcf) Trim(ctx context.Context, run *Run, adapters string, raw ReadPair) (ReadPair, error) {
	out := ReadPair{
		R1: run.Path("trimmed_R1.fastq"),
		R2: run.Path("trimmed_R2.fastq"),
	}

	err := run.command(ctx, run.conf.Tools.FastqMcf,
		adapters, raw.R1, raw.R2,
		"-o", out.R1,
		"-o", out.R2,
	)
	if err != nil {
		return ReadPair{}, err
	}

	return out, nil
}

// sickle runs sickle's paired-end mode for windowed quality trimming.
type sickle struct{}

// NewQualityFilter returns the sickle-backed QualityFilter.
func NewQualityFilter() QualityFilter {
	return sickle{}
}

func (sickle) Filter(ctx context.Context, run *Run, trimmed ReadPair) (ReadPair, string, error) {
	out := ReadPair{
		R1: run.Path("filtered_R1.fastq"),
		R2: run.Path("filtered_R2.fastq"),
	}
	singles := run.Path("filtered_singles.fastq")

	err := run.command(ctx, run.conf.Tools.Sickle, "pe",
		"-t", "sanger",
		"-f", trimmed.R1,
		"-r", trimmed.R2,
		"-o", out.R1,
		"-p", out.R2,
		"-s", singles,
		"-q", strconv.Itoa(run.conf.QualityThreshold),
		"-l", strconv.Itoa(run.conf.QualityMinLength),
	)
	if err != nil {
		return ReadPair{}, "", err
	}

	// the trimmed pair is consumed, only the filtered files move on
	run.remove(trimmed.R1, trimmed.R2)

	return out, singles, nil
}

// fastqJoin runs ea-utils' fastq-join to overlap filtered pairs.
type fastqJoin struct{}

// NewJoiner returns the fastq-join-backed Joiner.
func NewJoiner() Joiner {
	return fastqJoin{}
}

func (fastqJoin) Join(ctx context.Context, run *Run, filtered ReadPair) (string, ReadPair, error) {
	// fastq-join expands % into join, un1 and un2
	template := run.Path("joined.%.fastq")

	err := run.command(ctx, run.conf.Tools.FastqJoin,
		"-p", strconv.Itoa(run.conf.JoinPercMax),
		filtered.R1, filtered.R2,
		"-o", template,
	)
	if err != nil {
		return "", ReadPair{}, err
	}

	run.remove(filtered.R1, filtered.R2)

	return run.Path("joined.join.fastq"), ReadPair{
		R1: run.Path("joined.un1.fastq"),
		R2: run.Path("joined.un2.fastq"),
	}, nil
}

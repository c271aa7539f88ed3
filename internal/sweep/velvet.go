package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AssemblyInput is the read set handed to the assembler: a single-end
// file of quality singletons plus joined fragments, and the residual
// unjoined pair.
type AssemblyInput struct {
	// Singles is the concatenated singletons + joined-reads file
	Singles string

	// Residual is the unjoined read pair
	Residual ReadPair
}

// Assembler builds contigs from an AssemblyInput at one k-mer size.
type Assembler interface {
	Assemble(ctx context.Context, run *Run, in AssemblyInput, k int) (contigs string, err error)
}

// velvet shells out to velveth and velvetg, one working directory per
// k-mer value.
type velvet struct{}

// NewAssembler returns the velvet-backed Assembler.
func NewAssembler() Assembler {
	return velvet{}
}

func (velvet) Assemble(ctx context.Context, run *Run, in AssemblyInput, k int) (string, error) {
	dir := run.KDir(k)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create assembly directory %s: %v", dir, err)
	}

	args := []string{dir, strconv.Itoa(k), "-fastq"}
	if in.Singles != "" {
		args = append(args, "-short", in.Singles)
	}
	if in.Residual.R1 != "" {
		args = append(args, "-shortPaired", "-separate", in.Residual.R1, in.Residual.R2)
	}

	if err := run.command(ctx, run.conf.Tools.Velveth, args...); err != nil {
		return "", err
	}

	err := run.command(ctx, run.conf.Tools.Velvetg, dir,
		"-exp_cov", "auto",
		"-cov_cutoff", "auto",
	)
	if err != nil {
		return "", err
	}

	contigs := filepath.Join(dir, "contigs.fa")
	if _, err := os.Stat(contigs); err != nil {
		return "", fmt.Errorf("velvetg exited cleanly but left no contig file at %s", contigs)
	}

	return contigs, nil
}

// CleanupGraph removes velvet's bulky internal graph files for one
// k-mer value. Called once that k's contigs and alignment report both
// exist; the contig file itself is kept.
func CleanupGraph(run *Run, k int) {
	dir := run.KDir(k)
	for _, f := range []string{"Roadmaps", "Sequences", "PreGraph", "Graph2", "LastGraph"} {
		run.remove(filepath.Join(dir, f))
	}
}

package sweep

import (
	"fmt"
	"os"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// AssemblyStats summarizes one k value's contig file.
type AssemblyStats struct {
	Count    int
	TotalLen int
	N50      int
}

// CountFasta returns the number of sequences in a FASTA file.
func CountFasta(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open FASTA file %s: %v", path, err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	count := 0
	for sc.Next() {
		count++
	}
	if err := sc.Error(); err != nil {
		return 0, fmt.Errorf("failed to read FASTA file %s: %v", path, err)
	}

	return count, nil
}

// ContigStats reads a contig FASTA and reports count, assembly size
// and N50.
func ContigStats(path string) (AssemblyStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return AssemblyStats{}, fmt.Errorf("failed to open contig file %s: %v", path, err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var lens []int
	stats := AssemblyStats{}
	for sc.Next() {
		l := sc.Seq().Len()
		lens = append(lens, l)
		stats.Count++
		stats.TotalLen += l
	}
	if err := sc.Error(); err != nil {
		return AssemblyStats{}, fmt.Errorf("failed to read contig file %s: %v", path, err)
	}

	// N50: length of the contig at which the running sum of the
	// descending lengths first reaches half the assembly size
	sort.Sort(sort.Reverse(sort.IntSlice(lens)))
	sum := 0
	for _, l := range lens {
		sum += l
		if sum*2 >= stats.TotalLen {
			stats.N50 = l
			break
		}
	}

	return stats, nil
}

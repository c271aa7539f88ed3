package sweep

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// Result is one query target's alignment outcome against a single
// assembly: the target's length and its hits among the contigs.
type Result struct {
	// Query is the target's FASTA id
	Query string

	// QueryLen is the target's full length in bp
	QueryLen int

	// Hits, one per contig the target matched
	Hits []Hit
}

// Hit is a match between one target and one assembled contig.
type Hit struct {
	// Subject is the contig's id in the assembly
	Subject string

	// Segments are this hit's aligned regions (HSPs)
	Segments []Segment
}

// Segment is one contiguous aligned region within a Hit.
type Segment struct {
	// Length of the alignment in bp
	Length int

	// SubjectStart and SubjectEnd are 1-based coordinates of the
	// segment on the contig
	SubjectStart int
	SubjectEnd   int
}

// blastOutput maps blastn's XML report (-outfmt 5). One Iteration per
// query target, Hit and Hsp nested beneath it.
type blastOutput struct {
	XMLName    xml.Name         `xml:"BlastOutput"`
	Iterations []blastIteration `xml:"BlastOutput_iterations>Iteration"`
}

type blastIteration struct {
	QueryDef string     `xml:"Iteration_query-def"`
	QueryLen int        `xml:"Iteration_query-len"`
	Hits     []blastHit `xml:"Iteration_hits>Hit"`
}

type blastHit struct {
	Def  string     `xml:"Hit_def"`
	Hsps []blastHsp `xml:"Hit_hsps>Hsp"`
}

type blastHsp struct {
	AlignLen int `xml:"Hsp_align-len"`
	HitFrom  int `xml:"Hsp_hit-from"`
	HitTo    int `xml:"Hsp_hit-to"`
}

// ParseBlastXML reads a blastn XML report into one Result per query
// target. A report with zero iterations is returned as an empty,
// non-nil slice so callers can tell "nothing aligned" from a failure.
func ParseBlastXML(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read BLAST report %s: %v", path, err)
	}

	var out blastOutput
	if err := xml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse BLAST report %s: %v", path, err)
	}

	results := []Result{}
	for _, iter := range out.Iterations {
		if iter.QueryLen <= 0 {
			return nil, fmt.Errorf("query %s has a non-positive length %d in %s", iter.QueryDef, iter.QueryLen, path)
		}

		r := Result{Query: iter.QueryDef, QueryLen: iter.QueryLen}
		for _, h := range iter.Hits {
			hit := Hit{Subject: h.Def}
			for _, hsp := range h.Hsps {
				hit.Segments = append(hit.Segments, Segment{
					Length:       hsp.AlignLen,
					SubjectStart: hsp.HitFrom,
					SubjectEnd:   hsp.HitTo,
				})
			}
			r.Hits = append(r.Hits, hit)
		}
		results = append(results, r)
	}

	return results, nil
}

// Aligner builds a search database from one k value's contigs and
// aligns the target probes against it, producing an XML report.
type Aligner interface {
	Align(ctx context.Context, run *Run, contigs, probes string, k int) (report string, err error)
}

// blastAligner shells out to BLAST+'s makeblastdb and blastn.
type blastAligner struct{}

// NewBlastAligner returns the BLAST+-backed Aligner.
func NewBlastAligner() Aligner {
	return blastAligner{}
}

// Align makes a nucleotide database from the contig file and runs
// blastn with the probes as queries, writing an XML report beside the
// contigs. The database files are removed once the report exists.
func (blastAligner) Align(ctx context.Context, run *Run, contigs, probes string, k int) (string, error) {
	tools := run.conf.Tools

	// the db shares the contig file's path; makeblastdb appends
	// .nhr/.nin/.nsq
	if err := run.command(ctx, tools.MakeBlastDB,
		"-in", contigs,
		"-dbtype", "nucl",
		"-out", contigs,
	); err != nil {
		return "", err
	}

	report := run.Path(fmt.Sprintf("k%d_blast.xml", k))
	err := run.command(ctx, tools.Blastn,
		"-task", run.conf.Blast.Task,
		"-db", contigs,
		"-query", probes,
		"-out", report,
		"-outfmt", "5", // XML, one Iteration per probe
		"-evalue", strconv.FormatFloat(run.conf.Blast.Evalue, 'g', -1, 64),
	)

	run.remove(contigs+".nhr", contigs+".nin", contigs+".nsq")
	if err != nil {
		return "", err
	}

	return report, nil
}

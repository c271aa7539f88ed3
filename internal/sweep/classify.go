package sweep

// Stats summarizes how well one assembly recovered the target set.
// The four counts form a tightening ladder: a target that matches
// several contigs, or matches one contig in several pieces, signals
// fragmentation at that k-mer size even though it "matched".
type Stats struct {
	// Total targets in the alignment report
	Total int

	// WithHits counts targets matching at least one contig
	WithHits int

	// OneHit counts targets matching exactly one contig
	OneHit int

	// OneSegment counts targets matching exactly one contig in
	// exactly one aligned segment
	OneSegment int

	// Nested counts targets whose single segment covers more than
	// the coverage threshold of the target's length without
	// touching contig coordinate 1
	Nested int
}

// Classify derives recovery Stats from one alignment report's
// Results. Each target is judged independently, so the counts do not
// depend on input order. nestedCoverage is the fraction of a target's
// length its single segment must exceed to count as nested (0.98 by
// default; see config).
func Classify(results []Result, nestedCoverage float64) Stats {
	s := Stats{Total: len(results)}

	for _, r := range results {
		if len(r.Hits) == 0 {
			continue
		}
		s.WithHits++

		if len(r.Hits) != 1 {
			continue
		}
		s.OneHit++

		if len(r.Hits[0].Segments) != 1 {
			continue
		}
		s.OneSegment++

		// NOTE: excluding subject coordinate 1 is meant to drop
		// targets hanging off a contig's edge, but only catches
		// one of the contig's two edges. Kept as-is to match the
		// established behavior of this sweep.
		seg := r.Hits[0].Segments[0]
		coverage := float64(seg.Length) / float64(r.QueryLen)
		if coverage > nestedCoverage && seg.SubjectStart != 1 && seg.SubjectEnd != 1 {
			s.Nested++
		}
	}

	return s
}

// Undefined reports whether percentage breakdowns of these Stats are
// meaningless (no targets at all). Report writers print "undefined"
// in that case instead of dividing by zero.
func (s Stats) Undefined() bool {
	return s.Total == 0
}

// Percent returns count as a percentage of the total. Only valid when
// Undefined is false.
func (s Stats) Percent(count int) float64 {
	return 100 * float64(count) / float64(s.Total)
}

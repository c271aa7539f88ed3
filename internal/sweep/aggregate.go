package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Curve accumulates one sample's Points into the four parallel count
// sequences plotted against k. Failed k values are tracked separately
// and never appear in the sequences.
type Curve struct {
	Points []Point
	Failed []int
}

// Add inserts a Point, keeping Points ascending by k.
func (c *Curve) Add(p Point) {
	c.Points = append(c.Points, p)
	sort.Slice(c.Points, func(i, j int) bool { return c.Points[i].K < c.Points[j].K })
}

// Fail records a k value whose assembly or alignment failed.
func (c *Curve) Fail(k int) {
	c.Failed = append(c.Failed, k)
}

// Ks returns the successfully processed k values, ascending.
func (c *Curve) Ks() []int {
	ks := make([]int, len(c.Points))
	for i, p := range c.Points {
		ks[i] = p.K
	}
	return ks
}

// counts applies pick to every Point, preserving order.
func (c *Curve) counts(pick func(Stats) int) []int {
	out := make([]int, len(c.Points))
	for i, p := range c.Points {
		out[i] = pick(p.Stats)
	}
	return out
}

// WithHits returns the targets-with-any-hit counts, ascending by k.
func (c *Curve) WithHits() []int { return c.counts(func(s Stats) int { return s.WithHits }) }

// OneHit returns the exactly-one-hit counts, ascending by k.
func (c *Curve) OneHit() []int { return c.counts(func(s Stats) int { return s.OneHit }) }

// OneSegment returns the one-hit-one-segment counts, ascending by k.
func (c *Curve) OneSegment() []int { return c.counts(func(s Stats) int { return s.OneSegment }) }

// Nested returns the nested-within-a-contig counts, ascending by k.
func (c *Curve) Nested() []int { return c.counts(func(s Stats) int { return s.Nested }) }

// WriteTSV writes the curve as a tab-separated table, one row per
// successful k value.
func (c *Curve) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "k\ttotal\twith_hits\tone_hit\tone_segment\tnested")
	for _, p := range c.Points {
		fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%d\t%d\n",
			p.K, p.Stats.Total, p.Stats.WithHits, p.Stats.OneHit, p.Stats.OneSegment, p.Stats.Nested)
	}
	return bw.Flush()
}

// SaveTSV writes the curve table to the run's output directory.
func (c *Curve) SaveTSV(run *Run) (string, error) {
	path := run.Path("sweep.tsv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to write sweep table %s: %v", path, err)
	}
	defer f.Close()

	if err := c.WriteTSV(f); err != nil {
		return "", fmt.Errorf("failed to write sweep table %s: %v", path, err)
	}
	return path, nil
}

// ReadTSV parses a table written by WriteTSV, for re-plotting an
// earlier sweep without rerunning it.
func ReadTSV(r io.Reader) (*Curve, error) {
	c := &Curve{}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line == 1 || text == "" {
			continue // header
		}

		cols := strings.Fields(text)
		if len(cols) != 6 {
			return nil, fmt.Errorf("sweep table line %d has %d columns, want 6", line, len(cols))
		}

		vals := make([]int, 6)
		for i, col := range cols {
			v, err := strconv.Atoi(col)
			if err != nil {
				return nil, fmt.Errorf("sweep table line %d: %v", line, err)
			}
			vals[i] = v
		}

		c.Add(Point{K: vals[0], Stats: Stats{
			Total:      vals[1],
			WithHits:   vals[2],
			OneHit:     vals[3],
			OneSegment: vals[4],
			Nested:     vals[5],
		}})
	}

	return c, scanner.Err()
}

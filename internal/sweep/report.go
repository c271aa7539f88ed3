package sweep

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// FormatStats renders one k-mer value's statistics as the
// human-readable per-k report: each count with its percentage of the
// total. With zero targets the percentages are printed as undefined
// rather than computed.
func FormatStats(name string, k int, s Stats) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)

	pct := func(count int) string {
		if s.Undefined() {
			return "undefined"
		}
		return fmt.Sprintf("%.1f%%", s.Percent(count))
	}

	fmt.Fprintf(tw, "%s k=%d\n", name, k)
	fmt.Fprintf(tw, "total targets\t%d\t\n", s.Total)
	fmt.Fprintf(tw, "with hits\t%d\t%s\n", s.WithHits, pct(s.WithHits))
	fmt.Fprintf(tw, "one hit\t%d\t%s\n", s.OneHit, pct(s.OneHit))
	fmt.Fprintf(tw, "one segment\t%d\t%s\n", s.OneSegment, pct(s.OneSegment))
	fmt.Fprintf(tw, "nested in contig\t%d\t%s\n", s.Nested, pct(s.Nested))
	tw.Flush()

	return b.String()
}

// WriteStatsFile writes the per-k report into the run directory.
// Losing a report silently would lose results, so any write error is
// returned with the offending path for the caller to treat as fatal.
func WriteStatsFile(run *Run, k int, s Stats) error {
	path := run.Path(fmt.Sprintf("k%d_stats.txt", k))
	if err := os.WriteFile(path, []byte(FormatStats(run.Name, k, s)), 0644); err != nil {
		return fmt.Errorf("failed to write statistics report %s: %v", path, err)
	}
	return nil
}

// PrintSummary writes the whole sweep's curve to the console, nested
// counts highlighted since they are the number the sweep exists to
// maximize.
func PrintSummary(w io.Writer, name string, c *Curve) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", bold(name+" sweep"))

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "k\ttotal\twith hits\tone hit\tone segment\tnested")
	for _, p := range c.Points {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n",
			p.K, p.Stats.Total, p.Stats.WithHits, p.Stats.OneHit, p.Stats.OneSegment,
			green(fmt.Sprintf("%d", p.Stats.Nested)))
	}
	tw.Flush()

	if len(c.Failed) > 0 {
		ks := make([]string, len(c.Failed))
		for i, k := range c.Failed {
			ks[i] = fmt.Sprintf("%d", k)
		}
		fmt.Fprintf(w, "%s %s\n", red("failed k values:"), strings.Join(ks, ", "))
	}
}

package sweep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CountFastq(t *testing.T) {
	path := writeFixture(t, "reads.fastq", strings.Repeat(fastqRead, 3))

	n, err := CountFastq(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func Test_CountFastq_gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fastq.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Repeat(fastqRead, 5)))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	n, err := CountFastq(path)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func Test_CountFastq_truncated(t *testing.T) {
	path := writeFixture(t, "truncated.fastq", "@read_1\nACGT\n+\n")

	_, err := CountFastq(path)
	assert.Error(t, err)
}

func Test_concat(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fastq")
	b := filepath.Join(dir, "b.fastq")
	require.NoError(t, os.WriteFile(a, []byte("first\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("second\n"), 0644))

	merged := filepath.Join(dir, "merged.fastq")
	require.NoError(t, concat(merged, a, b))

	data, err := os.ReadFile(merged)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func Test_CountFasta(t *testing.T) {
	path := writeFixture(t, "probes.fa", ">p1\nACGTACGT\n>p2\nACGT\nACGT\n")

	n, err := CountFasta(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func Test_ContigStats(t *testing.T) {
	path := writeFixture(t, "contigs.fa", ">c1\nACGTACGTAC\n>c2\nACGTAC\n>c3\nACGT\n")

	stats, err := ContigStats(path)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 20, stats.TotalLen)
	assert.Equal(t, 10, stats.N50)
}

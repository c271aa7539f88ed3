package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blastFixture = `<?xml version="1.0"?>
<!DOCTYPE BlastOutput PUBLIC "-//NCBI//NCBI BlastOutput/EN" "http://www.ncbi.nlm.nih.gov/dtd/NCBI_BlastOutput.dtd">
<BlastOutput>
  <BlastOutput_program>blastn</BlastOutput_program>
  <BlastOutput_iterations>
    <Iteration>
      <Iteration_iter-num>1</Iteration_iter-num>
      <Iteration_query-def>probe_1</Iteration_query-def>
      <Iteration_query-len>100</Iteration_query-len>
      <Iteration_hits>
        <Hit>
          <Hit_num>1</Hit_num>
          <Hit_def>NODE_7_length_2310_cov_14</Hit_def>
          <Hit_hsps>
            <Hsp>
              <Hsp_num>1</Hsp_num>
              <Hsp_hit-from>5</Hsp_hit-from>
              <Hsp_hit-to>103</Hsp_hit-to>
              <Hsp_align-len>99</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
      </Iteration_hits>
    </Iteration>
    <Iteration>
      <Iteration_iter-num>2</Iteration_iter-num>
      <Iteration_query-def>probe_2</Iteration_query-def>
      <Iteration_query-len>80</Iteration_query-len>
      <Iteration_hits>
      </Iteration_hits>
    </Iteration>
    <Iteration>
      <Iteration_iter-num>3</Iteration_iter-num>
      <Iteration_query-def>probe_3</Iteration_query-def>
      <Iteration_query-len>120</Iteration_query-len>
      <Iteration_hits>
        <Hit>
          <Hit_num>1</Hit_num>
          <Hit_def>NODE_2_length_410_cov_9</Hit_def>
          <Hit_hsps>
            <Hsp>
              <Hsp_num>1</Hsp_num>
              <Hsp_hit-from>1</Hsp_hit-from>
              <Hsp_hit-to>60</Hsp_hit-to>
              <Hsp_align-len>60</Hsp_align-len>
            </Hsp>
            <Hsp>
              <Hsp_num>2</Hsp_num>
              <Hsp_hit-from>200</Hsp_hit-from>
              <Hsp_hit-to>255</Hsp_hit-to>
              <Hsp_align-len>56</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
        <Hit>
          <Hit_num>2</Hit_num>
          <Hit_def>NODE_9_length_210_cov_4</Hit_def>
          <Hit_hsps>
            <Hsp>
              <Hsp_num>1</Hsp_num>
              <Hsp_hit-from>10</Hsp_hit-from>
              <Hsp_hit-to>69</Hsp_hit-to>
              <Hsp_align-len>60</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
      </Iteration_hits>
    </Iteration>
  </BlastOutput_iterations>
</BlastOutput>
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_ParseBlastXML(t *testing.T) {
	results, err := ParseBlastXML(writeFixture(t, "report.xml", blastFixture))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "probe_1", results[0].Query)
	assert.Equal(t, 100, results[0].QueryLen)
	require.Len(t, results[0].Hits, 1)
	require.Len(t, results[0].Hits[0].Segments, 1)
	assert.Equal(t, Segment{Length: 99, SubjectStart: 5, SubjectEnd: 103}, results[0].Hits[0].Segments[0])

	assert.Empty(t, results[1].Hits)

	require.Len(t, results[2].Hits, 2)
	assert.Len(t, results[2].Hits[0].Segments, 2)
	assert.Equal(t, "NODE_9_length_210_cov_4", results[2].Hits[1].Subject)
}

func Test_ParseBlastXML_classified(t *testing.T) {
	results, err := ParseBlastXML(writeFixture(t, "report.xml", blastFixture))
	require.NoError(t, err)

	s := Classify(results, 0.98)
	assert.Equal(t, Stats{Total: 3, WithHits: 2, OneHit: 1, OneSegment: 1, Nested: 1}, s)
}

func Test_ParseBlastXML_empty(t *testing.T) {
	empty := `<?xml version="1.0"?>
<BlastOutput>
  <BlastOutput_iterations>
  </BlastOutput_iterations>
</BlastOutput>
`
	results, err := ParseBlastXML(writeFixture(t, "empty.xml", empty))
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	s := Classify(results, 0.98)
	assert.True(t, s.Undefined())
	assert.Equal(t, Stats{}, s)
}

func Test_ParseBlastXML_malformed(t *testing.T) {
	_, err := ParseBlastXML(writeFixture(t, "bad.xml", "<BlastOutput><unterminated"))
	assert.Error(t, err)

	badLen := `<?xml version="1.0"?>
<BlastOutput>
  <BlastOutput_iterations>
    <Iteration>
      <Iteration_query-def>p</Iteration_query-def>
      <Iteration_query-len>0</Iteration_query-len>
    </Iteration>
  </BlastOutput_iterations>
</BlastOutput>
`
	_, err = ParseBlastXML(writeFixture(t, "badlen.xml", badLen))
	assert.Error(t, err)
}

package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// CountFastq returns the number of reads in a FASTQ file, opening
// gzipped inputs transparently.
func CountFastq(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open FASTQ file %s: %v", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("failed to open gzipped FASTQ file %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}

	lines := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read FASTQ file %s: %v", path, err)
	}

	if lines%4 != 0 {
		return 0, fmt.Errorf("FASTQ file %s has %d lines, not a multiple of 4", path, lines)
	}

	return lines / 4, nil
}

// concat writes the given source files, in order, into dst.
func concat(dst string, srcs ...string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", dst, err)
	}

	for _, src := range srcs {
		in, err := os.Open(src)
		if err != nil {
			out.Close()
			return fmt.Errorf("failed to open %s: %v", src, err)
		}
		if _, err := io.Copy(out, in); err != nil {
			in.Close()
			out.Close()
			return fmt.Errorf("failed to append %s to %s: %v", src, dst, err)
		}
		in.Close()
	}

	return out.Close()
}

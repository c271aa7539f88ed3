// Package sweep drives a velvet k-mer parameter sweep for targeted
// sequencing: it trims and joins paired-end reads, assembles them at
// each odd k-mer size in a configured range, searches a set of target
// probes against each assembly, and classifies how completely every
// target was recovered at that k.
package sweep

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atcg/velvetTarget/config"
	"github.com/google/uuid"
)

// Run is the working context for a single sample's sweep: a name that
// prefixes every intermediate and output file, and the directory that
// holds them. All collaborator calls take their file locations from a
// Run instead of relying on the process working directory.
type Run struct {
	// Name prefixes all of this run's files
	Name string

	// Dir is the directory all of this run's files live in
	Dir string

	conf config.Config
}

// NewRun creates a working context beneath outDir. An empty outDir
// creates a uniquely named directory in the current directory so
// concurrent runs cannot collide.
func NewRun(name, outDir string, conf config.Config) (*Run, error) {
	if name == "" {
		return nil, fmt.Errorf("a run name is required to namespace output files")
	}

	if outDir == "" {
		outDir = fmt.Sprintf("%s-%s", name, uuid.New().String()[:8])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory %s: %v", outDir, err)
	}

	return &Run{Name: name, Dir: outDir, conf: conf}, nil
}

// Path returns a run-scoped file path: the file name is prefixed with
// the run's name and placed in the run's directory.
func (r *Run) Path(file string) string {
	return filepath.Join(r.Dir, r.Name+"_"+file)
}

// KDir returns the working directory for one k-mer value's assembly.
// Each k gets its own directory so k values can run side by side.
func (r *Run) KDir(k int) string {
	return filepath.Join(r.Dir, fmt.Sprintf("%s_k%d", r.Name, k))
}

// command runs an external tool under the configured timeout,
// capturing its combined output for error reporting. A nonzero exit
// is reported distinctly from a tool that succeeded but wrote nothing.
func (r *Run) command(ctx context.Context, name string, args ...string) error {
	if r.conf.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.conf.ToolTimeout)
		defer cancel()
	}

	if r.conf.Verbose {
		log.Printf("%s: %s %s", r.Name, name, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s timed out after %v", name, r.conf.ToolTimeout)
		}
		return fmt.Errorf("failed to execute %s: %v: %s", name, err, string(output))
	}

	return nil
}

// remove deletes intermediate files once the next stage has consumed
// them. Removal failures are logged, not fatal: a leftover file never
// invalidates results.
func (r *Run) remove(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove intermediate file %s: %v", p, err)
		}
	}
}

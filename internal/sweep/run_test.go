package sweep

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atcg/velvetTarget/config"
)

func Test_Run_paths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	run, err := NewRun("lizard", dir, config.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if got := run.Path("sweep.tsv"); got != filepath.Join(dir, "lizard_sweep.tsv") {
		t.Errorf("Path() = %s", got)
	}
	if got := run.KDir(21); got != filepath.Join(dir, "lizard_k21") {
		t.Errorf("KDir() = %s", got)
	}
}

func Test_NewRun_requiresName(t *testing.T) {
	if _, err := NewRun("", t.TempDir(), config.Config{}); err == nil {
		t.Error("expected an error for an empty run name")
	}
}

func Test_NewRun_uniqueDirs(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	a, err := NewRun("x", "", config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRun("x", "", config.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if a.Dir == b.Dir {
		t.Errorf("two unnamed runs share the directory %s", a.Dir)
	}
}

func Test_command_failure(t *testing.T) {
	run, err := NewRun("x", t.TempDir(), config.Config{})
	if err != nil {
		t.Fatal(err)
	}

	if err := run.command(context.Background(), "false"); err == nil {
		t.Error("expected an error from a nonzero exit")
	}
	if err := run.command(context.Background(), "true"); err != nil {
		t.Errorf("true exited nonzero: %v", err)
	}
}

func Test_command_timeout(t *testing.T) {
	run, err := NewRun("x", t.TempDir(), config.Config{ToolTimeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	err = run.command(context.Background(), "sleep", "5")
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("expected a timeout error, got %v", err)
	}
}

package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestRunAllPassesForWritableDirectory(t *testing.T) {
	dir := t.TempDir()
	results := RunAll(dir)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if !strings.Contains(results[0].Detail, "rx ok") || !strings.Contains(results[1].Detail, "wx ok") {
		t.Fatalf("unexpected details: %+v", results)
	}
}

func TestCheckDirectoryAccessMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	res := CheckDirectoryAccess("Scan directory", missing, unix.R_OK)
	if res.Passed || !strings.Contains(res.Detail, "does not exist") {
		t.Fatalf("unexpected result: %+v", res)
	}
	err := FirstFailure([]Result{res})
	if err == nil || !strings.Contains(err.Error(), "Scan directory") {
		t.Fatalf("expected named failure, got %v", err)
	}
}

func TestCheckDirectoryAccessRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.dcm")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	res := CheckDirectoryAccess("Scan directory", path, unix.R_OK)
	if res.Passed || !strings.Contains(res.Detail, "is not a directory") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

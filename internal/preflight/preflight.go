package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks required before scanning root and writing the
// table into it.
func RunAll(root string) []Result {
	return []Result{
		CheckDirectoryAccess("Scan directory", root, unix.R_OK|unix.X_OK),
		CheckDirectoryAccess("Output directory", root, unix.W_OK|unix.X_OK),
	}
}

// CheckDirectoryAccess verifies path is an existing directory the process can
// access with the given unix access mode bits.
func CheckDirectoryAccess(name, path string, mode uint32) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, describeMode(mode))}
}

// FirstFailure returns an error for the first failed result, or nil.
func FirstFailure(results []Result) error {
	for _, r := range results {
		if !r.Passed {
			return fmt.Errorf("preflight %s: %s", r.Name, r.Detail)
		}
	}
	return nil
}

func describeMode(mode uint32) string {
	var s string
	if mode&unix.R_OK != 0 {
		s += "r"
	}
	if mode&unix.W_OK != 0 {
		s += "w"
	}
	if mode&unix.X_OK != 0 {
		s += "x"
	}
	return s
}

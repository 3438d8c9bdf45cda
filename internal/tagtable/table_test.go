package tagtable

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dicomtags/internal/testsupport"
)

func TestTableQuotesReservedCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	table, err := Create(path, []string{"FileName", "Modality"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := table.Append([]string{"/scans/a,b/\"q\".dcm", "CT"}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := table.Append([]string{"/scans/line\nbreak.dcm", "MR"}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	want := "FileName,Modality\n" +
		"\"/scans/a,b/\"\"q\"\".dcm\",CT\n" +
		"\"/scans/line\nbreak.dcm\",MR\n"
	if got := string(testsupport.ReadFile(t, path)); got != want {
		t.Fatalf("unexpected table contents:\n%q\nwant\n%q", got, want)
	}
	if table.Rows() != 2 {
		t.Fatalf("Rows = %d, want 2", table.Rows())
	}
}

func TestTableTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	testsupport.WriteFile(t, path, []byte("stale,content\r\nmore,rows\r\n"))

	table, err := Create(path, []string{"FileName"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if got := string(testsupport.ReadFile(t, path)); got != "FileName\n" {
		t.Fatalf("expected truncated table, got %q", got)
	}
}

func TestTableCloseIsIdempotent(t *testing.T) {
	table, err := Create(filepath.Join(t.TempDir(), "table.csv"), []string{"FileName"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	if err := table.Append([]string{"x"}); err == nil {
		t.Fatal("expected error appending to closed table")
	}
}

func TestCreateFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "table.csv")
	if _, err := Create(path, []string{"FileName"}); err == nil {
		t.Fatal("expected error creating table in missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no table file, stat err=%v", err)
	}
}

func TestTablePathsSurviveReadBack(t *testing.T) {
	cases := []struct {
		name string
		path string
		// encoding/csv's reader folds a quoted \r\n into \n, so those
		// cases are checked on the raw bytes only.
		rawOnly bool
	}{
		{name: "carriage return", path: "/scans/a\rb.dcm"},
		{name: "line feed", path: "/scans/line\nbreak.dcm"},
		{name: "crlf", path: "/scans/dos\r\nbreak.dcm", rawOnly: true},
		{name: "quote", path: "/scans/\"quoted\".dcm"},
		{name: "comma", path: "/scans/a,b.dcm"},
		{name: "trailing carriage return", path: "/scans/tail.dcm\r"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "table.csv")
			table, err := Create(path, []string{"FileName", "Modality"})
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if err := table.Append([]string{tc.path, "CT"}); err != nil {
				t.Fatalf("Append returned error: %v", err)
			}
			if err := table.Close(); err != nil {
				t.Fatalf("Close returned error: %v", err)
			}

			content := testsupport.ReadFile(t, path)
			want := "FileName,Modality\n\"" + strings.ReplaceAll(tc.path, `"`, `""`) + "\",CT\n"
			if string(content) != want {
				t.Fatalf("unexpected table contents:\n%q\nwant\n%q", content, want)
			}
			if tc.rawOnly {
				return
			}

			records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
			if err != nil {
				t.Fatalf("read back table: %v", err)
			}
			if len(records) != 2 || len(records[1]) != 2 {
				t.Fatalf("expected header and one two-field row, got %q", records)
			}
			if records[1][0] != tc.path {
				t.Fatalf("FileName = %q, want %q", records[1][0], tc.path)
			}
		})
	}
}

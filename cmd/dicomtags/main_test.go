package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dicomtags/internal/catalog"
	"dicomtags/internal/tagtable"
	"dicomtags/internal/testsupport"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestScanWritesTableForDICOMFiles(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	ct := filepath.Join(root, "series", "ct.dcm")
	testsupport.WriteDICOM(t, ct,
		testsupport.Modality("CT"),
		testsupport.StudyDescription("Head, Neck"),
		testsupport.PatientID(""),
	)
	testsupport.WriteFile(t, filepath.Join(root, "notes.txt"), []byte("not dicom"))

	if err := execute(t, root); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(testsupport.ReadFile(t, tagtable.OutputPath(root)))).ReadAll()
	if err != nil {
		t.Fatalf("parse table: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected one data row, got %d", len(records)-1)
	}
	header, row := records[0], records[1]
	if strings.Join(header, ",") != strings.Join(catalog.Header(), ",") {
		t.Fatalf("unexpected header: %v", header)
	}
	values := map[string]string{}
	for i, name := range header {
		values[name] = row[i]
	}
	if values[catalog.FileNameColumn] != ct {
		t.Fatalf("FileName = %q, want %q", values[catalog.FileNameColumn], ct)
	}
	if values["Modality"] != "CT" {
		t.Fatalf("Modality = %q, want CT", values["Modality"])
	}
	if values["SliceThickness"] != "Na" {
		t.Fatalf("SliceThickness = %q, want Na", values["SliceThickness"])
	}
	if values["StudyDescription"] != "Head. Neck" {
		t.Fatalf("StudyDescription = %q, want %q", values["StudyDescription"], "Head. Neck")
	}
	if values["PatientID"] != "None" {
		t.Fatalf("PatientID = %q, want None", values["PatientID"])
	}
}

func TestScanRejectsMissingDirectory(t *testing.T) {
	isolateConfig(t)
	err := execute(t, filepath.Join(t.TempDir(), "absent"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing directory error, got %v", err)
	}
}

func TestScanRejectsExtraArguments(t *testing.T) {
	isolateConfig(t)
	if err := execute(t, t.TempDir(), t.TempDir()); err == nil {
		t.Fatal("expected error for two positional arguments")
	}
}

func TestScanDefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	t.Chdir(root)

	if err := execute(t); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	want := strings.Join(catalog.Header(), ",") + "\n"
	if got := string(testsupport.ReadFile(t, filepath.Join(root, tagtable.OutputFileName))); got != want {
		t.Fatalf("expected header-only table, got %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(tagtable.Summary{
		Root:        "/scans",
		Output:      "/scans/original_DICOM_tags.csv",
		Directories: 3,
		Visited:     10,
		Rows:        8,
		Skipped:     2,
		Elapsed:     1500 * time.Millisecond,
	})
	for _, want := range []string{"Rows written", "8", "Skipped", "/scans/original_DICOM_tags.csv", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestScanLogsImplicitConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	t.Chdir(root)
	logFile := filepath.Join(t.TempDir(), "dicomtags.log")
	configPath := filepath.Join(root, "dicomtags.toml")
	testsupport.WriteFile(t, configPath, []byte("[scan]\nprogress_interval = 7\n\n[logging]\nfile = \""+logFile+"\"\n"))

	if err := execute(t); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	logs := string(testsupport.ReadFile(t, logFile))
	var line string
	for _, l := range strings.Split(logs, "\n") {
		if strings.Contains(l, "loaded config file") {
			line = l
			break
		}
	}
	if line == "" {
		t.Fatalf("expected config notice in logs:\n%s", logs)
	}
	for _, want := range []string{"INFO", "path=" + configPath, "progress_interval=7"} {
		if !strings.Contains(line, want) {
			t.Fatalf("config notice %q missing %q", line, want)
		}
	}
}

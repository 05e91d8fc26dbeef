package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employees.csv")
	content := "Id,firstName,lastName,salary,managerId\n" +
		"1,Alice,CEO,10000,\n" +
		"2,Bob,Manager,2000,1\n" +
		"3,Carol,Dev,3000,2\n" +
		"4,Dan,Dev,2000,3\n" +
		"5,Erin,Dev,2000,4\n" +
		"6,Frank,Dev,2000,5\n" +
		"x,Broken,Row,1,1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}
	return path
}

func TestRootCmd_TextOutput(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--file", writeCSV(t)})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("command returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Employees analyzed: 6 (skipped records: 1)",
		"Manager having ID: 2 and name: Bob Manager earns 2000.00; 1600.00 LESS than allowed (min: 3600.00)",
		"Employee having ID: 6 and name: Frank Dev has 5 levels; 1 levels above 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if !strings.Contains(stderr.String(), "skipping record") {
		t.Errorf("expected skipped row to be logged, got %s", stderr.String())
	}
}

func TestRootCmd_JSONOutput(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", writeCSV(t), "--format", "json"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("command returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if decoded["employee_count"] != float64(6) {
		t.Fatalf("unexpected employee_count: %v", decoded["employee_count"])
	}
}

func TestRootCmd_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", filepath.Join(t.TempDir(), "missing.csv")})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Write は指定された形式で分析結果を書き出します。
func Write(w io.Writer, format string, r *employee.Report) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteJSON は分析結果をインデント付き JSON で書き出します。
func WriteJSON(w io.Writer, r *employee.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewView(r)); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteText は分析結果を 1 件 1 行のテキストで書き出します。
func WriteText(w io.Writer, r *employee.Report) error {
	v := NewView(r)
	ew := &errWriter{w: w}

	ew.printf("Employees analyzed: %d (skipped records: %d)\n", v.EmployeeCount, v.SkippedRecords)
	for _, root := range v.Roots {
		ew.printf("Employee having ID: %d name: %s is the top of the organization.\n", root.ID, root.Name)
	}
	for _, o := range v.Orphans {
		ew.printf("Manager %d not found for employee having ID: %d name: %s\n", o.ManagerID, o.ID, o.Name)
	}

	ew.printf("\nSalary violations: %d\n", len(v.SalaryFindings))
	for _, f := range v.SalaryFindings {
		switch f.Kind {
		case string(employee.FindingUnderpaid):
			ew.printf("Manager having ID: %d and name: %s earns %s; %s LESS than allowed (min: %s)\n",
				f.ManagerID, f.ManagerName, f.Salary, f.Difference, f.Min)
		default:
			ew.printf("Manager having ID: %d and name: %s earns %s; %s MORE than allowed (max: %s)\n",
				f.ManagerID, f.ManagerName, f.Salary, f.Difference, f.Max)
		}
	}

	ew.printf("\nReporting depth violations: %d\n", len(v.DepthFindings))
	for _, f := range v.DepthFindings {
		suffix := ""
		if f.CycleDetected {
			suffix = " (manager cycle detected)"
		}
		ew.printf("Employee having ID: %d and name: %s has %d levels; %d levels above %d%s\n",
			f.EmployeeID, f.EmployeeName, f.Depth, f.Excess, f.Limit, suffix)
	}

	if ew.err != nil {
		return fmt.Errorf("report: write text: %w", ew.err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

package report

import (
	"time"

	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
)

// View は分析結果を出力用に平坦化したものです。金額は固定小数の文字列で保持します。
type View struct {
	RunID          string       `json:"run_id"`
	GeneratedAt    time.Time    `json:"generated_at"`
	EmployeeCount  int          `json:"employee_count"`
	SkippedRecords int          `json:"skipped_records"`
	Roots          []PersonView `json:"roots"`
	Orphans        []OrphanView `json:"orphans"`
	SalaryFindings []SalaryView `json:"salary_findings"`
	DepthFindings  []DepthView  `json:"depth_findings"`
}

// PersonView は社員の識別情報です。
type PersonView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OrphanView は上長が見つからなかった社員です。
type OrphanView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ManagerID int    `json:"manager_id"`
}

// SalaryView は給与レンジ違反です。
type SalaryView struct {
	ManagerID   int    `json:"manager_id"`
	ManagerName string `json:"manager_name"`
	Kind        string `json:"kind"`
	Salary      string `json:"salary"`
	Average     string `json:"average"`
	Min         string `json:"min"`
	Max         string `json:"max"`
	Difference  string `json:"difference"`
}

// DepthView は報告ラインの超過です。
type DepthView struct {
	EmployeeID    int    `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Depth         int    `json:"depth"`
	Excess        int    `json:"excess"`
	Limit         int    `json:"limit"`
	CycleDetected bool   `json:"cycle_detected"`
}

// NewView は Report から View を組み立てます。
func NewView(r *employee.Report) View {
	v := View{
		RunID:          r.RunID,
		GeneratedAt:    r.GeneratedAt,
		EmployeeCount:  r.EmployeeCount,
		SkippedRecords: r.SkippedRecords,
		Roots:          make([]PersonView, 0, len(r.Roots)),
		Orphans:        make([]OrphanView, 0, len(r.Orphans)),
		SalaryFindings: make([]SalaryView, 0, len(r.SalaryFindings)),
		DepthFindings:  make([]DepthView, 0, len(r.DepthFindings)),
	}

	for _, e := range r.Roots {
		v.Roots = append(v.Roots, PersonView{ID: e.ID, Name: e.FullName()})
	}
	for _, e := range r.Orphans {
		o := OrphanView{ID: e.ID, Name: e.FullName()}
		if e.ManagerID != nil {
			o.ManagerID = *e.ManagerID
		}
		v.Orphans = append(v.Orphans, o)
	}
	for _, f := range r.SalaryFindings {
		v.SalaryFindings = append(v.SalaryFindings, SalaryView{
			ManagerID:   f.ManagerID,
			ManagerName: f.ManagerName,
			Kind:        string(f.Kind),
			Salary:      f.Salary.StringFixed(r.Scale),
			Average:     f.Average.StringFixed(r.Scale),
			Min:         f.Min.StringFixed(r.Scale),
			Max:         f.Max.StringFixed(r.Scale),
			Difference:  f.Difference.StringFixed(r.Scale),
		})
	}
	for _, f := range r.DepthFindings {
		v.DepthFindings = append(v.DepthFindings, DepthView{
			EmployeeID:    f.EmployeeID,
			EmployeeName:  f.EmployeeName,
			Depth:         f.Depth,
			Excess:        f.Excess,
			Limit:         f.Depth - f.Excess,
			CycleDetected: f.CycleDetected,
		})
	}

	return v
}

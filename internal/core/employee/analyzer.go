package employee

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Analysis は 2 種類の分析結果をまとめたものです。
type Analysis struct {
	SalaryFindings []SalaryFinding
	DepthFindings  []DepthFinding
}

// Analyzer は構築済みの組織ツリーに対する読み取り専用の分析を提供します。
type Analyzer struct {
	policy Policy
	logger logrus.FieldLogger
}

// NewAnalyzer は Analyzer を生成します。
func NewAnalyzer(policy Policy, logger logrus.FieldLogger) (*Analyzer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{policy: policy, logger: loggerOrDiscard(logger)}, nil
}

// Policy は適用中のポリシーを返します。
func (a *Analyzer) Policy() Policy {
	return a.policy
}

// Analyze は給与レンジ分析と報告ライン分析の両方を実行します。
func (a *Analyzer) Analyze(h *Hierarchy) *Analysis {
	return &Analysis{
		SalaryFindings: a.SalaryBandViolations(h),
		DepthFindings:  a.ReportingDepthViolations(h),
	}
}

// SalaryBandViolations は直属の部下を持つ社員ごとに給与レンジを検証します。
// 平均、下限、上限はそれぞれの段階で小数第 Scale 位に丸めます。
func (a *Analyzer) SalaryBandViolations(h *Hierarchy) []SalaryFinding {
	var findings []SalaryFinding
	for _, manager := range h.Directory().Employees() {
		if len(manager.Subordinates) == 0 {
			continue
		}
		if finding, ok := a.checkSalaryBand(manager); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}

func (a *Analyzer) checkSalaryBand(manager *Employee) (SalaryFinding, bool) {
	total := decimal.Zero
	for _, sub := range manager.Subordinates {
		total = total.Add(sub.Salary)
	}

	count := decimal.NewFromInt(int64(len(manager.Subordinates)))
	avg := total.DivRound(count, a.policy.Scale)
	minAllowed := avg.Mul(a.policy.MinMultiplier).Round(a.policy.Scale)
	maxAllowed := avg.Mul(a.policy.MaxMultiplier).Round(a.policy.Scale)

	finding := SalaryFinding{
		ManagerID:   manager.ID,
		ManagerName: manager.FullName(),
		Salary:      manager.Salary,
		Average:     avg,
		Min:         minAllowed,
		Max:         maxAllowed,
	}

	switch {
	case manager.Salary.LessThan(minAllowed):
		finding.Kind = FindingUnderpaid
		finding.Difference = minAllowed.Sub(manager.Salary)
	case manager.Salary.GreaterThan(maxAllowed):
		finding.Kind = FindingOverpaid
		finding.Difference = manager.Salary.Sub(maxAllowed)
	default:
		return SalaryFinding{}, false
	}
	return finding, true
}

// ReportingDepthViolations は全社員の報告ラインの深さを検証します。
func (a *Analyzer) ReportingDepthViolations(h *Hierarchy) []DepthFinding {
	dir := h.Directory()
	var findings []DepthFinding
	for _, e := range dir.Employees() {
		depth, cycle := a.ReportingDepth(dir, e)
		if cycle {
			a.logger.WithFields(employeeFields(e)).WithField("depth", depth).Warn("manager cycle detected")
		}
		if depth > a.policy.MaxReportingDepth {
			findings = append(findings, DepthFinding{
				EmployeeID:    e.ID,
				EmployeeName:  e.FullName(),
				Depth:         depth,
				Excess:        depth - a.policy.MaxReportingDepth,
				CycleDetected: cycle,
			})
		}
	}
	return findings
}

// ReportingDepth は e からトップまでの上長の段数を数えます。
// 解決できない上長 ID はその 1 段を数えたうえで打ち切ります。
// 同じ ID に再度到達した場合は循環とみなし、その時点で打ち切ります。
func (a *Analyzer) ReportingDepth(dir *Directory, e *Employee) (int, bool) {
	visited := map[int]struct{}{e.ID: {}}
	depth := 0
	managerID := e.ManagerID
	for managerID != nil {
		if _, seen := visited[*managerID]; seen {
			return depth, true
		}
		depth++
		manager, ok := dir.Get(*managerID)
		if !ok {
			break
		}
		visited[manager.ID] = struct{}{}
		managerID = manager.ManagerID
	}
	return depth, false
}

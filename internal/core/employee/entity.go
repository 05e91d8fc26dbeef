package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee は社員エンティティです。
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	Salary    decimal.Decimal
	// ManagerID が nil の社員は組織のトップです。
	ManagerID    *int
	Subordinates []*Employee
}

// FullName は表示用の氏名を返します。
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasManager は上長への参照を持つかどうかを返します。
func (e *Employee) HasManager() bool {
	return e.ManagerID != nil
}

// Record は取り込み元から渡される 1 行分の生データです。
type Record struct {
	Line      int
	ID        string
	FirstName string
	LastName  string
	Salary    string
	ManagerID string
}

// FindingKind は給与レンジ違反の種別です。
type FindingKind string

const (
	FindingUnderpaid FindingKind = "underpaid"
	FindingOverpaid  FindingKind = "overpaid"
)

// SalaryFinding はマネージャーの給与が許容レンジ外であることを表します。
type SalaryFinding struct {
	ManagerID   int
	ManagerName string
	Salary      decimal.Decimal
	Average     decimal.Decimal
	Min         decimal.Decimal
	Max         decimal.Decimal
	Kind        FindingKind
	// Difference は不足額 (underpaid) または超過額 (overpaid) です。
	Difference decimal.Decimal
}

// DepthFinding は報告ラインが上限を超えていることを表します。
type DepthFinding struct {
	EmployeeID    int
	EmployeeName  string
	Depth         int
	Excess        int
	CycleDetected bool
}

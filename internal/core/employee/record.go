package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRecord は生レコードを Employee に変換します。
// 変換に失敗した場合は ErrInvalidRecord をラップしたエラーを返します。
func ParseRecord(rec Record) (*Employee, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rec.ID))
	if err != nil || id <= 0 {
		return nil, recordError(rec, ErrInvalidID, rec.ID)
	}

	salary, err := decimal.NewFromString(strings.TrimSpace(rec.Salary))
	if err != nil {
		return nil, recordError(rec, ErrInvalidSalary, rec.Salary)
	}

	managerID, err := parseManagerID(rec.ManagerID)
	if err != nil {
		return nil, recordError(rec, ErrInvalidManagerID, rec.ManagerID)
	}

	return &Employee{
		ID:        id,
		FirstName: strings.TrimSpace(rec.FirstName),
		LastName:  strings.TrimSpace(rec.LastName),
		Salary:    salary,
		ManagerID: managerID,
	}, nil
}

func parseManagerID(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func recordError(rec Record, cause error, value string) error {
	return fmt.Errorf("line %d: %w: %w (%q)", rec.Line, ErrInvalidRecord, cause, value)
}

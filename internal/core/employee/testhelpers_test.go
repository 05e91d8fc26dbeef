package employee

import (
	"testing"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int {
	return &v
}

func newEmployee(t *testing.T, id int, first, salary string, managerID *int) *Employee {
	t.Helper()

	amount, err := decimal.NewFromString(salary)
	if err != nil {
		t.Fatalf("invalid salary %q: %v", salary, err)
	}
	return &Employee{
		ID:        id,
		FirstName: first,
		LastName:  "Test",
		Salary:    amount,
		ManagerID: managerID,
	}
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", raw, err)
	}
	return d
}

func subordinateIDs(e *Employee) []int {
	ids := make([]int, 0, len(e.Subordinates))
	for _, sub := range e.Subordinates {
		ids = append(ids, sub.ID)
	}
	return ids
}

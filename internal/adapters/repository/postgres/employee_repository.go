package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-org-analyzer/internal/platform/db/postgres"
)

const undefinedTableCode = "42P01"

const selectEmployeesQuery = `
        SELECT id::text,
               first_name,
               last_name,
               salary::text,
               COALESCE(manager_id::text, '')
          FROM employees
         ORDER BY id
    `

// EmployeeRepository は PostgreSQL の employees テーブルから社員レコードを読み込みます。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// LoadRecords は全社員を ID 昇順で取得します。
func (r *EmployeeRepository) LoadRecords(ctx context.Context) ([]employee.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, selectEmployeesQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	var records []employee.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		rec.Line = len(records) + 1
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (employee.Record, error) {
	var rec employee.Record
	if err := row.Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Salary,
		&rec.ManagerID,
	); err != nil {
		return employee.Record{}, err
	}
	return rec, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return fmt.Errorf("%w: employees table is missing, run migrations: %w", employee.ErrLoadSource, err)
	}

	return fmt.Errorf("%w: %w", employee.ErrLoadSource, err)
}

package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
)

const (
	columnID        = "Id"
	columnFirstName = "firstName"
	columnLastName  = "lastName"
	columnSalary    = "salary"
	columnManagerID = "managerId"
)

var requiredColumns = []string{columnID, columnFirstName, columnLastName, columnSalary, columnManagerID}

// RecordSource はヘッダー付き CSV ファイルから社員レコードを読み込みます。
type RecordSource struct {
	path  string
	comma rune
}

// NewRecordSource は RecordSource を生成します。comma が 0 の場合はカンマ区切りです。
func NewRecordSource(path string, comma rune) *RecordSource {
	if comma == 0 {
		comma = ','
	}
	return &RecordSource{path: path, comma: comma}
}

// LoadRecords はファイル全体を読み込みます。
// ファイルやヘッダーが読めない場合のみ employee.ErrLoadSource を返し、行単位の不備はそのまま返却します。
func (s *RecordSource) LoadRecords(ctx context.Context) ([]employee.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", employee.ErrLoadSource, s.path, err)
	}
	defer f.Close()

	return ReadRecords(ctx, f, s.comma)
}

// ReadRecords は r から CSV を読み込みます。
func ReadRecords(ctx context.Context, r io.Reader, comma rune) ([]employee.Record, error) {
	reader := csv.NewReader(stripUTF8BOM(bufio.NewReader(r)))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", employee.ErrLoadSource)
		}
		return nil, fmt.Errorf("%w: read header: %w", employee.ErrLoadSource, err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var records []employee.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// 壊れた行は ID を空にして渡し、解析側でスキップさせる。
				records = append(records, employee.Record{Line: parseErr.Line})
				continue
			}
			return nil, fmt.Errorf("%w: read: %w", employee.ErrLoadSource, err)
		}
		if isBlankRow(row) {
			continue
		}
		line, _ := reader.FieldPos(0)

		records = append(records, employee.Record{
			Line:      line,
			ID:        field(row, index, columnID),
			FirstName: field(row, index, columnFirstName),
			LastName:  field(row, index, columnLastName),
			Salary:    field(row, index, columnSalary),
			ManagerID: field(row, index, columnManagerID),
		})
	}

	return records, nil
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing required header column %s", employee.ErrLoadSource, required)
		}
	}
	return index, nil
}

func field(row []string, index map[string]int, column string) string {
	i := index[column]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

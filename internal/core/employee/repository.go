package employee

import "context"

// RecordSource は社員レコードの取り込み元の抽象です。
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]Record, error)
}

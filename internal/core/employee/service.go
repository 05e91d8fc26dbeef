package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase は組織分析ユースケースの公開インターフェースです。
type UseCase interface {
	Analyze(ctx context.Context) (*Report, error)
}

// Report は 1 回の分析実行の結果です。
type Report struct {
	RunID          string
	GeneratedAt    time.Time
	EmployeeCount  int
	SkippedRecords int
	// Scale は金額を表示する際の小数桁数です。
	Scale          int32
	Roots          []*Employee
	Orphans        []*Employee
	SalaryFindings []SalaryFinding
	DepthFindings  []DepthFinding
}

// Service は取り込み、階層構築、分析を順に実行します。
type Service struct {
	source   RecordSource
	builder  *Builder
	analyzer *Analyzer
	clock    Clock
	tx       TransactionManager
	logger   logrus.FieldLogger
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithClock は時刻の取得元を差し替えます。
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTransactionManager は読み取り時のトランザクション制御を設定します。
func WithTransactionManager(tx TransactionManager) Option {
	return func(s *Service) {
		if tx != nil {
			s.tx = tx
		}
	}
}

// NewService は Service を生成します。
func NewService(source RecordSource, analyzer *Analyzer, logger logrus.FieldLogger, opts ...Option) *Service {
	logger = loggerOrDiscard(logger)
	s := &Service{
		source:   source,
		builder:  NewBuilder(logger),
		analyzer: analyzer,
		clock:    realClock{},
		tx:       noopTransactionManager{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze はレコードを読み込み、組織ツリーを構築して分析結果を返します。
// 取り込み元の障害のみが ErrLoadSource としてエラーになります。
func (s *Service) Analyze(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	logger := s.logger.WithField("run_id", runID)

	var records []Record
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		loaded, err := s.source.LoadRecords(txCtx)
		if err != nil {
			return err
		}
		records = loaded
		return nil
	}); err != nil {
		if errors.Is(err, ErrLoadSource) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadSource, err)
	}

	logger.WithField("records", len(records)).Info("loading employees")
	dir, skipped := s.index(logger, records)

	hierarchy := s.builder.Build(dir)

	logger.Info("analyzing salary violations")
	salaryFindings := s.analyzer.SalaryBandViolations(hierarchy)

	logger.Info("analyzing reporting depth")
	depthFindings := s.analyzer.ReportingDepthViolations(hierarchy)

	return &Report{
		RunID:          runID,
		GeneratedAt:    s.clock.Now(),
		EmployeeCount:  dir.Len(),
		SkippedRecords: skipped,
		Scale:          s.analyzer.Policy().Scale,
		Roots:          hierarchy.Roots(),
		Orphans:        hierarchy.Orphans(),
		SalaryFindings: salaryFindings,
		DepthFindings:  depthFindings,
	}, nil
}

func (s *Service) index(logger logrus.FieldLogger, records []Record) (*Directory, int) {
	dir := NewDirectory()
	skipped := 0
	for _, rec := range records {
		emp, err := ParseRecord(rec)
		if err != nil {
			logger.WithError(err).WithField("line", rec.Line).Error("skipping record")
			skipped++
			continue
		}
		if dir.Put(emp) {
			logger.WithFields(employeeFields(emp)).Warn("duplicate employee id, keeping the last record")
		}
	}
	return dir, skipped
}

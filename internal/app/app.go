package app

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-org-analyzer/internal/adapters/repository/csvfile"
	"github.com/ogurasousui/employee-org-analyzer/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/config"
	pg "github.com/ogurasousui/employee-org-analyzer/internal/platform/db/postgres"
	"github.com/sirupsen/logrus"
)

// Policy は設定から分析ポリシーを組み立てます。
func Policy(cfg config.AnalysisConfig) employee.Policy {
	policy := employee.DefaultPolicy()
	if !cfg.MinMultiplier.IsZero() {
		policy.MinMultiplier = cfg.MinMultiplier
	}
	if !cfg.MaxMultiplier.IsZero() {
		policy.MaxMultiplier = cfg.MaxMultiplier
	}
	if cfg.MaxReportingDepth != nil {
		policy.MaxReportingDepth = *cfg.MaxReportingDepth
	}
	return policy
}

// NewAnalysisService は設定された取り込み元を使う分析ユースケースを構築します。
// 返却される cleanup は必ず呼び出してください。
func NewAnalysisService(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*employee.Service, func(), error) {
	analyzer, err := employee.NewAnalyzer(Policy(cfg.Analysis), logger)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", employee.ErrLoadSource, err)
		}
		svc := employee.NewService(
			postgres.NewEmployeeRepository(pool),
			analyzer,
			logger,
			employee.WithTransactionManager(pg.NewTransactionManager(pool)),
		)
		return svc, pool.Close, nil
	case config.SourceCSV:
		source := csvfile.NewRecordSource(cfg.Source.CSV.Path, cfg.Source.CSV.Delimiter)
		return employee.NewService(source, analyzer, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("app: unsupported source kind %q", cfg.Source.Kind)
	}
}

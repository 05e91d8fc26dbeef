package employee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	defaultMaxReportingDepth = 4
	defaultScale             = 2
)

var (
	defaultMinMultiplier = decimal.RequireFromString("1.2")
	defaultMaxMultiplier = decimal.RequireFromString("1.5")
)

// Policy は分析の閾値です。
type Policy struct {
	MinMultiplier     decimal.Decimal
	MaxMultiplier     decimal.Decimal
	MaxReportingDepth int
	Scale             int32
}

// DefaultPolicy は部下平均の 1.2 倍から 1.5 倍、報告ライン 4 段までを許容するポリシーを返します。
func DefaultPolicy() Policy {
	return Policy{
		MinMultiplier:     defaultMinMultiplier,
		MaxMultiplier:     defaultMaxMultiplier,
		MaxReportingDepth: defaultMaxReportingDepth,
		Scale:             defaultScale,
	}
}

// Validate はポリシーの整合性を検証します。
func (p Policy) Validate() error {
	if !p.MinMultiplier.IsPositive() {
		return fmt.Errorf("min multiplier must be positive: %w", ErrInvalidPolicy)
	}
	if p.MaxMultiplier.LessThan(p.MinMultiplier) {
		return fmt.Errorf("max multiplier %s is below min multiplier %s: %w", p.MaxMultiplier, p.MinMultiplier, ErrInvalidPolicy)
	}
	if p.MaxReportingDepth < 0 {
		return fmt.Errorf("max reporting depth must not be negative: %w", ErrInvalidPolicy)
	}
	if p.Scale < 0 {
		return fmt.Errorf("scale must not be negative: %w", ErrInvalidPolicy)
	}
	return nil
}

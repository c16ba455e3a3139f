package payslip

import "cableworks/internal/core/numerator"

const (
	// NumberPrefix for generated payslip numbers.
	NumberPrefix = "PAY"

	// NumeratorStrategy defines the numbering strategy for this document
	// type. Payslips feed statutory filings, so we use Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict
)

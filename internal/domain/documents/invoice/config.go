package invoice

import "cableworks/internal/core/numerator"

const (
	// NumberPrefix for generated invoice numbers.
	NumberPrefix = "INV"

	// NumeratorStrategy defines the numbering strategy for this document type.
	// Invoices are tax documents, gaps in numbering are unacceptable, so
	// we use Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict
)

package purchase_order

import "cableworks/internal/core/numerator"

const (
	// NumberPrefix for generated order numbers.
	NumberPrefix = "PO"

	// NumeratorStrategy defines the numbering strategy for this document
	// type. Orders are internal documents, gaps are acceptable, so we use
	// the faster Cached strategy.
	NumeratorStrategy = numerator.StrategyCached
)

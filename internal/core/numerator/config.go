// Package numerator provides domain contracts for document
// auto-numbering.
package numerator

// Strategy selects how numbers are drawn from the sequence.
type Strategy int

const (
	// StrategyStrict draws one number per call straight from the
	// database. No gaps, which tax-relevant series like invoices need.
	StrategyStrict Strategy = iota

	// StrategyCached reserves a range and hands numbers out from
	// memory. Faster, but a restart abandons the rest of the range.
	// For internal series where gaps are acceptable.
	StrategyCached
)

// Options tunes a single generation call.
type Options struct {
	Strategy Strategy

	// RangeSize is how many numbers StrategyCached reserves per
	// database round-trip. Zero means the service default.
	RangeSize int64
}

// DefaultOptions returns the strict strategy.
func DefaultOptions() *Options {
	return &Options{Strategy: StrategyStrict}
}

// Config describes the shape of one number series.
type Config struct {
	// Prefix starts every number, e.g. "INV" or "PO"
	Prefix string

	// IncludeYear puts the period year between prefix and counter
	IncludeYear bool

	// PadWidth left-pads the counter with zeros, default 5
	PadWidth int

	// ResetPeriod restarts the counter: "year", "month" or "never"
	ResetPeriod string
}

// DefaultConfig returns the yearly-reset series used by most
// documents.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

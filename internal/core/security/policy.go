package security

import (
	"context"
	"time"

	"cableworks/internal/core/apperror"
	"cableworks/pkg/logger"
)

// PostingPolicy decides whether a document may move in or out of the
// posted state on a given date. Deployments pick the policy through
// configuration.
type PostingPolicy interface {
	CanPost(ctx context.Context, docDate time.Time) error
	CanUnpost(ctx context.Context, docDate time.Time) error
}

// StrictPolicy refuses any posting change dated inside the closed
// period. For books that have been filed.
type StrictPolicy struct {
	closedUntil time.Time
}

// NewStrictPolicy closes every date before closedUntil.
func NewStrictPolicy(closedUntil time.Time) *StrictPolicy {
	return &StrictPolicy{closedUntil: closedUntil}
}

func (p *StrictPolicy) CanPost(ctx context.Context, docDate time.Time) error {
	if docDate.Before(p.closedUntil) {
		return apperror.NewPeriodClosed(p.closedUntil.Format("2006-01"))
	}
	return nil
}

func (p *StrictPolicy) CanUnpost(ctx context.Context, docDate time.Time) error {
	return p.CanPost(ctx, docDate)
}

// FlexiblePolicy still enforces the closed period but only warns about
// backdated documents older than the threshold. For businesses that
// record paperwork after the fact.
type FlexiblePolicy struct {
	warningThreshold time.Duration
	closedUntil      time.Time
}

// NewFlexiblePolicy creates a flexible policy. A zero warningThreshold
// disables the backdating warning.
func NewFlexiblePolicy(warningThreshold time.Duration, closedUntil time.Time) *FlexiblePolicy {
	return &FlexiblePolicy{
		warningThreshold: warningThreshold,
		closedUntil:      closedUntil,
	}
}

func (p *FlexiblePolicy) CanPost(ctx context.Context, docDate time.Time) error {
	if !p.closedUntil.IsZero() && docDate.Before(p.closedUntil) {
		return apperror.NewPeriodClosed(p.closedUntil.Format("2006-01"))
	}
	if p.warningThreshold > 0 && time.Since(docDate) > p.warningThreshold {
		logger.Warn(ctx, "posting backdated document",
			"doc_date", docDate.Format("2006-01-02"),
			"threshold_days", int(p.warningThreshold.Hours()/24),
		)
	}
	return nil
}

func (p *FlexiblePolicy) CanUnpost(ctx context.Context, docDate time.Time) error {
	return p.CanPost(ctx, docDate)
}

// OpenPolicy permits everything. Development and tests only.
type OpenPolicy struct{}

func (OpenPolicy) CanPost(ctx context.Context, docDate time.Time) error   { return nil }
func (OpenPolicy) CanUnpost(ctx context.Context, docDate time.Time) error { return nil }

package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/apperror"
)

func TestStrictPolicy_ClosedPeriod(t *testing.T) {
	closedUntil := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	policy := NewStrictPolicy(closedUntil)
	ctx := context.Background()

	err := policy.CanPost(ctx, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodePeriodClosed, appErr.Code)

	assert.NoError(t, policy.CanPost(ctx, closedUntil))
	assert.Error(t, policy.CanUnpost(ctx, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFlexiblePolicy_HardLimitOnly(t *testing.T) {
	closedUntil := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	policy := NewFlexiblePolicy(30*24*time.Hour, closedUntil)
	ctx := context.Background()

	assert.Error(t, policy.CanPost(ctx, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))

	// Backdated past the warning threshold but after the closed period
	assert.NoError(t, policy.CanPost(ctx, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFlexiblePolicy_ZeroClosedUntil(t *testing.T) {
	policy := NewFlexiblePolicy(0, time.Time{})
	assert.NoError(t, policy.CanPost(context.Background(), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
}

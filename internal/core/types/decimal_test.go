package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustMoney(t *testing.T) {
	assert.True(t, MustMoney("18000").Equal(MustMoney("18000.00")))
	assert.Panics(t, func() { MustMoney("not a number") })
}

func TestZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
}

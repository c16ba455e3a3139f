package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_ScanPreservesPrecision(t *testing.T) {
	var attrs Attributes
	err := attrs.Scan([]byte(`{"conductor_resistance": 12.345678901234567890, "color": "black"}`))
	require.NoError(t, err)

	want := decimal.RequireFromString("12.345678901234567890")
	assert.True(t, want.Equal(attrs.GetDecimal("conductor_resistance")),
		"got %s", attrs.GetDecimal("conductor_resistance"))
	assert.Equal(t, "black", attrs.GetString("color"))
}

func TestAttributes_ScanNil(t *testing.T) {
	var attrs Attributes
	require.NoError(t, attrs.Scan(nil))
	assert.Nil(t, attrs)

	assert.Equal(t, "", attrs.GetString("missing"))
	assert.True(t, decimal.Zero.Equal(attrs.GetDecimal("missing")))
}

func TestAttributes_SetAllocates(t *testing.T) {
	var attrs Attributes
	attrs.Set("insulation", "XLPE")
	assert.Equal(t, "XLPE", attrs.GetString("insulation"))

	val, err := attrs.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"insulation":"XLPE"}`, string(val.([]byte)))
}

package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cableworks/internal/core/types"
)

func strPtr(s string) *string { return &s }

func TestEmployee_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid minimal", func(t *testing.T) {
		e := NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("18000"))
		assert.NoError(t, e.Validate(ctx))
	})

	t.Run("valid with department", func(t *testing.T) {
		e := NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("18000"))
		e.Department = DeptProduction
		assert.NoError(t, e.Validate(ctx))
	})

	t.Run("unknown department", func(t *testing.T) {
		e := NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("18000"))
		e.Department = Department("logistics")
		assert.Error(t, e.Validate(ctx))
	})

	t.Run("negative basic salary", func(t *testing.T) {
		e := NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("-1"))
		assert.Error(t, e.Validate(ctx))
	})

	t.Run("missing name", func(t *testing.T) {
		e := NewEmployee("EMP-00001", "", types.MustMoney("18000"))
		assert.Error(t, e.Validate(ctx))
	})
}

func TestEmployee_Validate_PAN(t *testing.T) {
	ctx := context.Background()

	e := NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("18000"))
	e.PAN = strPtr("ABCPP1234D")
	assert.NoError(t, e.Validate(ctx))

	e.PAN = strPtr("1234PABCD")
	assert.Error(t, e.Validate(ctx))

	// Empty PAN is fine
	e.PAN = strPtr("")
	assert.NoError(t, e.Validate(ctx))
}

func TestDepartments(t *testing.T) {
	all := []Department{
		DeptProduction, DeptQuality, DeptMaintenance, DeptStores,
		DeptSales, DeptAccounts, DeptAdmin,
	}
	for _, dept := range all {
		assert.True(t, isValidDepartment(dept), "department %q", dept)
	}
	assert.False(t, isValidDepartment(Department("")))
}

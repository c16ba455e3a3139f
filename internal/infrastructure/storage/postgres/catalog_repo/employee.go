package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cableworks/internal/core/apperror"
	"cableworks/internal/domain/catalogs/employee"
	"cableworks/internal/infrastructure/storage/postgres"
)

const employeeTable = "cat_employees"

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txManager *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*employee.Employee](
			txManager,
			employeeTable,
			postgres.ExtractDBColumns[employee.Employee](),
			func() *employee.Employee { return &employee.Employee{} },
		),
	}
}

// FindByPAN retrieves employee by PAN.
func (r *EmployeeRepo) FindByPAN(ctx context.Context, pan string) (*employee.Employee, error) {
	q := r.baseSelect(ctx).
		Where(squirrel.Eq{"pan": pan}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	e, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("employee", pan)
		}
		return nil, err
	}
	return e, nil
}

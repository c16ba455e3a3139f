package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
	"cableworks/internal/domain/documents/payslip"
	"cableworks/internal/infrastructure/storage/postgres"
)

const payslipsTable = "doc_payslips"

// PayslipRepo implements payslip.Repository.
type PayslipRepo struct {
	*BaseDocumentRepo[*payslip.Payslip]
}

// NewPayslipRepo creates a new payslip repository.
func NewPayslipRepo(txManager *postgres.TxManager) *PayslipRepo {
	return &PayslipRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*payslip.Payslip](
			txManager,
			payslipsTable,
			postgres.ExtractDBColumns[payslip.Payslip](),
			func() *payslip.Payslip { return &payslip.Payslip{} },
		),
	}
}

// FindByEmployeePeriod retrieves the payslip for one employee and
// period. One payslip per employee per period is the uniqueness rule
// the service enforces through this lookup.
func (r *PayslipRepo) FindByEmployeePeriod(ctx context.Context, employeeID id.ID, payPeriod string) (*payslip.Payslip, error) {
	q := r.baseSelect(ctx).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"pay_period": payPeriod}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)
	return r.scanOne(ctx, q, payPeriod)
}

// List retrieves payslips with payroll-specific filtering. Search
// matches the number or the pay period.
func (r *PayslipRepo) List(ctx context.Context, f payslip.ListFilter) (domain.ListResult[*payslip.Payslip], error) {
	q := r.baseSelect(ctx)

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if f.EmployeeID != nil {
		q = q.Where(squirrel.Eq{"employee_id": *f.EmployeeID})
	}
	if f.PayPeriod != nil {
		q = q.Where(squirrel.Eq{"pay_period": *f.PayPeriod})
	}
	if f.Posted != nil {
		q = q.Where(squirrel.Eq{"posted": *f.Posted})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.DateFrom})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.DateTo})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"pay_period": pattern},
		})
	}

	orderBy := "date DESC"
	if f.OrderBy != "" {
		orderBy = f.OrderBy
	}

	return r.runList(ctx, q, orderBy, f.Limit, f.Offset)
}

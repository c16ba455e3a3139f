package payslip

import (
	"context"
	"time"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
)

// Repository defines operations for payslip documents.
type Repository interface {
	Create(ctx context.Context, doc *Payslip) error
	GetByID(ctx context.Context, docID id.ID) (*Payslip, error)
	GetByNumber(ctx context.Context, number string) (*Payslip, error)
	Update(ctx context.Context, doc *Payslip) error
	Delete(ctx context.Context, docID id.ID) error

	// FindByEmployeePeriod retrieves the payslip for one employee and
	// pay period. One payslip per employee per period.
	FindByEmployeePeriod(ctx context.Context, employeeID id.ID, payPeriod string) (*Payslip, error)

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payslip], error)

	// GetForUpdate retrieves payslip with row lock.
	GetForUpdate(ctx context.Context, docID id.ID) (*Payslip, error)
}

// ListFilter for filtering payslips.
type ListFilter struct {
	domain.ListFilter

	EmployeeID *id.ID
	PayPeriod  *string
	Posted     *bool
	DateFrom   *time.Time
	DateTo     *time.Time
}

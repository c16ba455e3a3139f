package payslip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/core/types"
	"cableworks/internal/domain"
	"cableworks/internal/domain/catalogs/employee"
)

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRepo struct {
	docs map[id.ID]*Payslip
}

func newMockRepo() *mockRepo {
	return &mockRepo{docs: make(map[id.ID]*Payslip)}
}

func (m *mockRepo) Create(ctx context.Context, doc *Payslip) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, docID id.ID) (*Payslip, error) {
	doc, ok := m.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("payslip", docID.String())
	}
	copied := *doc
	return &copied, nil
}

func (m *mockRepo) GetByNumber(ctx context.Context, number string) (*Payslip, error) {
	for _, doc := range m.docs {
		if doc.Number == number {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("payslip", number)
}

func (m *mockRepo) Update(ctx context.Context, doc *Payslip) error {
	if _, ok := m.docs[doc.ID]; !ok {
		return apperror.NewNotFound("payslip", doc.ID.String())
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(m.docs, docID)
	return nil
}

func (m *mockRepo) FindByEmployeePeriod(ctx context.Context, employeeID id.ID, payPeriod string) (*Payslip, error) {
	for _, doc := range m.docs {
		if doc.EmployeeID == employeeID && doc.PayPeriod == payPeriod {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("payslip", payPeriod)
}

func (m *mockRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payslip], error) {
	result := domain.ListResult[*Payslip]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range m.docs {
		result.Items = append(result.Items, doc)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (m *mockRepo) GetForUpdate(ctx context.Context, docID id.ID) (*Payslip, error) {
	return m.GetByID(ctx, docID)
}

// stubEmployees serves employee cards by ID. Only GetByID is used by the
// payslip service; the embedded interface covers the rest.
type stubEmployees struct {
	employee.Repository
	byID map[id.ID]*employee.Employee
}

func (s *stubEmployees) GetByID(ctx context.Context, empID id.ID) (*employee.Employee, error) {
	emp, ok := s.byID[empID]
	if !ok {
		return nil, apperror.NewNotFound("employee", empID.String())
	}
	return emp, nil
}

func newTestService(repo *mockRepo, employees *stubEmployees) *Service {
	if employees == nil {
		employees = &stubEmployees{byID: make(map[id.ID]*employee.Employee)}
	}
	return NewService(repo, employees, mockTxManager{}, &numerator.MockGenerator{}, security.OpenPolicy{})
}

func TestService_Create_ComputesComponents(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo, nil)

	doc := validPayslip()
	require.NoError(t, svc.Create(ctx, doc))

	stored := repo.docs[doc.ID]
	assert.True(t, stored.GrossSalary.Equal(d("1465")))
	assert.True(t, stored.NetSalary.Equal(d("1060.7625")))
}

func TestService_Create_DefaultsBasicFromEmployeeCard(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()

	emp := employee.NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("1000"))
	employees := &stubEmployees{byID: map[id.ID]*employee.Employee{emp.ID: emp}}
	svc := newTestService(repo, employees)

	doc := NewPayslip("org-1", emp.ID, "2025-08", d("0"))
	require.NoError(t, svc.Create(ctx, doc))

	stored := repo.docs[doc.ID]
	assert.True(t, stored.BasicSalary.Equal(d("1000")))
	assert.True(t, stored.NetSalary.Equal(d("1060.7625")))
}

func TestService_Create_ExplicitBasicWins(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()

	emp := employee.NewEmployee("EMP-00001", "Suresh Patil", types.MustMoney("50000"))
	employees := &stubEmployees{byID: map[id.ID]*employee.Employee{emp.ID: emp}}
	svc := newTestService(repo, employees)

	doc := NewPayslip("org-1", emp.ID, "2025-08", d("1000"))
	require.NoError(t, svc.Create(ctx, doc))

	assert.True(t, repo.docs[doc.ID].BasicSalary.Equal(d("1000")))
}

func TestService_Create_OnePayslipPerEmployeePeriod(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo, nil)

	empID := id.New()
	first := NewPayslip("org-1", empID, "2025-08", d("1000"))
	require.NoError(t, svc.Create(ctx, first))

	dup := NewPayslip("org-1", empID, "2025-08", d("2000"))
	err := svc.Create(ctx, dup)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)

	// Same employee, different period is fine
	next := NewPayslip("org-1", empID, "2025-09", d("1000"))
	assert.NoError(t, svc.Create(ctx, next))
}

func TestService_Create_InvalidPeriodRejected(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo, nil)

	doc := NewPayslip("org-1", id.New(), "2025-13", d("1000"))
	err := svc.Create(ctx, doc)
	require.Error(t, err)
	assert.Empty(t, repo.docs)
}

func TestService_Recalculate_RepairsStoredDerived(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo, nil)

	doc := validPayslip()
	require.NoError(t, svc.Create(ctx, doc))

	repo.docs[doc.ID].NetSalary = d("99999")

	fixed, err := svc.Recalculate(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, fixed.NetSalary.Equal(d("1060.7625")))
}

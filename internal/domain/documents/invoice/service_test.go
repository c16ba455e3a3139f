package invoice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/domain"
)

// mockTxManager runs the callback directly, no real transaction.
type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockRepo keeps invoices in a map.
type mockRepo struct {
	docs map[id.ID]*Invoice
}

func newMockRepo() *mockRepo {
	return &mockRepo{docs: make(map[id.ID]*Invoice)}
}

func (m *mockRepo) Create(ctx context.Context, doc *Invoice) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	doc, ok := m.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("invoice", docID.String())
	}
	copied := *doc
	return &copied, nil
}

func (m *mockRepo) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	for _, doc := range m.docs {
		if doc.Number == number {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("invoice", number)
}

func (m *mockRepo) Update(ctx context.Context, doc *Invoice) error {
	if _, ok := m.docs[doc.ID]; !ok {
		return apperror.NewNotFound("invoice", doc.ID.String())
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(m.docs, docID)
	return nil
}

func (m *mockRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	result := domain.ListResult[*Invoice]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range m.docs {
		result.Items = append(result.Items, doc)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (m *mockRepo) GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error) {
	return m.GetByID(ctx, docID)
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, mockTxManager{}, &numerator.MockGenerator{}, security.OpenPolicy{})
}

func TestService_Create_RecalculatesBeforeValidation(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	// Client-sent derived garbage must be replaced
	doc.TotalAmount = d("999999")

	require.NoError(t, svc.Create(ctx, doc))

	stored := repo.docs[doc.ID]
	assert.True(t, stored.TotalAmount.Equal(d("57")), "total: %s", stored.TotalAmount)
	assert.Equal(t, "MOCK-2026-00001", stored.Number)
}

func TestService_Create_KeepsExplicitNumber(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	doc.Number = "INV-2026-00042"

	require.NoError(t, svc.Create(ctx, doc))
	assert.Equal(t, "INV-2026-00042", repo.docs[doc.ID].Number)
}

func TestService_Create_ValidationFailureDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	doc.Quantity = decimal.Zero

	err := svc.Create(ctx, doc)
	require.Error(t, err)
	assert.Empty(t, repo.docs)
}

func TestService_Update_RejectsPosted(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))
	require.NoError(t, svc.Post(ctx, doc.ID))

	posted, err := svc.GetByID(ctx, doc.ID)
	require.NoError(t, err)

	posted.Quantity = d("20")
	err = svc.Update(ctx, posted)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDocumentPosted, appErr.Code)
}

func TestService_Recalculate_RepairsStoredDerived(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))

	// Corrupt the stored derived fields behind the service's back
	repo.docs[doc.ID].TotalAmount = d("12345")
	repo.docs[doc.ID].BalanceDue = d("12345")

	fixed, err := svc.Recalculate(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, fixed.TotalAmount.Equal(d("57")))
	assert.True(t, fixed.BalanceDue.Equal(d("17")))

	// Second run changes nothing
	again, err := svc.Recalculate(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, again.TotalAmount.Equal(fixed.TotalAmount))
}

func TestService_Post_Twice(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))
	require.NoError(t, svc.Post(ctx, doc.ID))

	err := svc.Post(ctx, doc.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDocumentPosted, appErr.Code)
}

func TestService_Unpost_NotPostedIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))
	assert.NoError(t, svc.Unpost(ctx, doc.ID))
}

func TestService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))

	updated, err := svc.RecordPayment(ctx, doc.ID, d("17"))
	require.NoError(t, err)

	assert.True(t, updated.AmountPaid.Equal(d("57")))
	assert.True(t, updated.BalanceDue.Equal(decimal.Zero), "balance: %s", updated.BalanceDue)
	assert.True(t, updated.IsSettled())
}

func TestService_RecordPayment_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))

	_, err := svc.RecordPayment(ctx, doc.ID, d("-5"))
	assert.Error(t, err)
}

func TestService_Create_RejectsForeignOrg(t *testing.T) {
	ctx := security.WithScope(context.Background(), &security.AccessScope{
		UserID:        "u1",
		AllowedOrgIDs: []string{"org-2"},
	})
	repo := newMockRepo()
	svc := newTestService(repo)

	err := svc.Create(ctx, validInvoice())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Empty(t, repo.docs)
}

func TestService_Create_AllowsScopedOrg(t *testing.T) {
	ctx := security.WithScope(context.Background(), &security.AccessScope{
		UserID:        "u1",
		AllowedOrgIDs: []string{"org-1", "org-2"},
	})
	repo := newMockRepo()
	svc := newTestService(repo)

	assert.NoError(t, svc.Create(ctx, validInvoice()))
}

func TestService_Create_AdminBypassesOrgScope(t *testing.T) {
	ctx := security.WithScope(context.Background(), &security.AccessScope{
		UserID:        "u1",
		IsAdmin:       true,
		AllowedOrgIDs: []string{"org-2"},
	})
	repo := newMockRepo()
	svc := newTestService(repo)

	assert.NoError(t, svc.Create(ctx, validInvoice()))
}

func TestService_Update_RejectsForeignOrg(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(context.Background(), doc))

	ctx := security.WithScope(context.Background(), &security.AccessScope{
		UserID:        "u1",
		AllowedOrgIDs: []string{"org-2"},
	})
	doc.Quantity = d("20")
	err := svc.Update(ctx, doc)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestService_Delete_RejectsPosted(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validInvoice()
	require.NoError(t, svc.Create(ctx, doc))
	require.NoError(t, svc.Post(ctx, doc.ID))

	assert.Error(t, svc.Delete(ctx, doc.ID))
}

package purchase_order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/core/numerator"
	"cableworks/internal/core/security"
	"cableworks/internal/domain"
)

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRepo struct {
	docs map[id.ID]*PurchaseOrder
}

func newMockRepo() *mockRepo {
	return &mockRepo{docs: make(map[id.ID]*PurchaseOrder)}
}

func (m *mockRepo) Create(ctx context.Context, doc *PurchaseOrder) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	doc, ok := m.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("purchase order", docID.String())
	}
	copied := *doc
	return &copied, nil
}

func (m *mockRepo) GetByNumber(ctx context.Context, number string) (*PurchaseOrder, error) {
	for _, doc := range m.docs {
		if doc.Number == number {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("purchase order", number)
}

func (m *mockRepo) Update(ctx context.Context, doc *PurchaseOrder) error {
	if _, ok := m.docs[doc.ID]; !ok {
		return apperror.NewNotFound("purchase order", doc.ID.String())
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(m.docs, docID)
	return nil
}

func (m *mockRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	result := domain.ListResult[*PurchaseOrder]{Limit: filter.Limit, Offset: filter.Offset}
	for _, doc := range m.docs {
		result.Items = append(result.Items, doc)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (m *mockRepo) GetForUpdate(ctx context.Context, docID id.ID) (*PurchaseOrder, error) {
	return m.GetByID(ctx, docID)
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, mockTxManager{}, &numerator.MockGenerator{}, security.OpenPolicy{})
}

func TestService_Create_RecalculatesAmounts(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validOrder()
	require.NoError(t, svc.Create(ctx, doc))

	stored := repo.docs[doc.ID]
	assert.True(t, stored.TotalAmount.Equal(d("200")))
	assert.True(t, stored.FinalAmount.IsZero(), "final: %s", stored.FinalAmount)
	assert.Equal(t, StatusDraft, stored.Status)
}

func TestService_SetStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validOrder()
	require.NoError(t, svc.Create(ctx, doc))

	updated, err := svc.SetStatus(ctx, doc.ID, StatusSent)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, updated.Status)

	updated, err = svc.SetStatus(ctx, doc.ID, StatusReceived)
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, updated.Status)
}

func TestService_SetStatus_CancelledCannotReopen(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validOrder()
	require.NoError(t, svc.Create(ctx, doc))

	_, err := svc.SetStatus(ctx, doc.ID, StatusCancelled)
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, doc.ID, StatusSent)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)

	// Setting cancelled again is allowed
	_, err = svc.SetStatus(ctx, doc.ID, StatusCancelled)
	assert.NoError(t, err)
}

func TestService_SetStatus_RejectsUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validOrder()
	require.NoError(t, svc.Create(ctx, doc))

	_, err := svc.SetStatus(ctx, doc.ID, OrderStatus("shipped"))
	assert.Error(t, err)
}

func TestService_Recalculate_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := newTestService(repo)

	doc := validOrder()
	require.NoError(t, svc.Create(ctx, doc))

	first, err := svc.Recalculate(ctx, doc.ID)
	require.NoError(t, err)

	second, err := svc.Recalculate(ctx, doc.ID)
	require.NoError(t, err)

	assert.True(t, first.FinalAmount.Equal(second.FinalAmount))
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

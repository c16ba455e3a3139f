// Package domain carries the generic catalog service, its repository
// contract and the lifecycle hook registry the concrete catalogs and
// documents build on.
package domain

import (
	"context"

	"cableworks/internal/core/entity"
	"cableworks/internal/core/id"
	"cableworks/internal/domain/filter"
)

// ListFilter is the common filtering for list operations.
type ListFilter struct {
	// Search matches name and code
	Search string

	IDs []id.ID

	// IncludeDeleted includes soft-deleted records
	IncludeDeleted bool

	// ParentID and IsFolder navigate the catalog hierarchy
	ParentID *string
	IsFolder *bool

	// AdvancedFilters holds user-defined conditions from the filter
	// query parameter
	AdvancedFilters []filter.Item

	// OrderBy is "field" or "-field" for descending
	OrderBy string

	Limit  int
	Offset int
}

// DefaultListFilter returns the defaults handlers start from.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit:   50,
		OrderBy: "name",
	}
}

// ListResult is one page of results plus the total match count.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// CatalogRepository is the persistence contract catalog services
// depend on. Delete soft-deletes; physical removal is a repository
// implementation concern and not part of the service surface.
type CatalogRepository[T entity.Validatable] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id id.ID) (T, error)
	GetByCode(ctx context.Context, code string) (T, error)

	// Update applies optimistic locking on the entity version
	Update(ctx context.Context, entity T) error

	Delete(ctx context.Context, id id.ID) error
	SetDeletionMark(ctx context.Context, id id.ID, marked bool) error

	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
	Exists(ctx context.Context, id id.ID) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// GetTree and GetPath navigate hierarchical catalogs
	GetTree(ctx context.Context, rootID *id.ID) ([]T, error)
	GetPath(ctx context.Context, id id.ID) ([]T, error)
}

// HookEvent names a lifecycle point.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook runs at a lifecycle point. Before-hooks can veto the operation
// by returning an error; after-hooks run once the write is committed.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores the lifecycle hooks for one entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes the event's hooks in registration order, stopping at
// the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// Registration shorthands for the events services wire up.

func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) { r.On(BeforeCreate, hook) }
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T])  { r.On(AfterCreate, hook) }
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) { r.On(BeforeUpdate, hook) }
func (r *HookRegistry[T]) OnAfterUpdate(hook Hook[T])  { r.On(AfterUpdate, hook) }

// Execution shorthands used by the generic services.

func (r *HookRegistry[T]) RunBeforeCreate(ctx context.Context, entity T) error {
	return r.Run(ctx, BeforeCreate, entity)
}

func (r *HookRegistry[T]) RunAfterCreate(ctx context.Context, entity T) error {
	return r.Run(ctx, AfterCreate, entity)
}

func (r *HookRegistry[T]) RunBeforeUpdate(ctx context.Context, entity T) error {
	return r.Run(ctx, BeforeUpdate, entity)
}

func (r *HookRegistry[T]) RunAfterUpdate(ctx context.Context, entity T) error {
	return r.Run(ctx, AfterUpdate, entity)
}

func (r *HookRegistry[T]) RunBeforeDelete(ctx context.Context, entity T) error {
	return r.Run(ctx, BeforeDelete, entity)
}

func (r *HookRegistry[T]) RunAfterDelete(ctx context.Context, entity T) error {
	return r.Run(ctx, AfterDelete, entity)
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appErr "github.com/accordflow/engine/pkg/errors"
)

// Condition is one resolved list filter. Column names come from resource
// definitions, never from client input, so they are safe to interpolate.
type Condition struct {
	Column    string
	Value     string
	Substring bool
}

// ListOptions carries resolved filters and pagination for a List call.
type ListOptions struct {
	Conditions []Condition
	Limit      int
	Offset     int
}

// CrudRepository defines the uniform data-access contract every resource
// family shares: filtered list, create, read, allow-listed partial update,
// and hard delete returning the removed row.
type CrudRepository[T any] interface {
	List(ctx context.Context, opts ListOptions) ([]T, int64, error)
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id uuid.UUID, dest *T) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any, dest *T) error
	Delete(ctx context.Context, id uuid.UUID, dest *T) error
}

type crudRepository[T any] struct {
	db   *gorm.DB
	name string
}

// NewCrudRepository returns a gorm-backed CrudRepository. name is the
// singular resource name used in error messages.
func NewCrudRepository[T any](db *gorm.DB, name string) CrudRepository[T] {
	return &crudRepository[T]{db: db, name: name}
}

func (r *crudRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	base := r.db.WithContext(ctx).Model(new(T))
	for _, c := range opts.Conditions {
		if c.Substring {
			base = base.Where(c.Column+" ILIKE ?", "%"+c.Value+"%")
		} else {
			base = base.Where(c.Column+" = ?", c.Value)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, fmt.Sprintf("list %ss failed", r.name))
	}

	q := base.Session(&gorm.Session{}).Order("created_at DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, fmt.Sprintf("list %ss failed", r.name))
	}
	return out, total, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, fmt.Sprintf("create %s failed", r.name))
	}
	return nil
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id uuid.UUID, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", r.name))
		}
		return appErr.Wrap(err, appErr.CodeInternal, fmt.Sprintf("get %s failed", r.name))
	}
	return nil
}

// UpdateFields applies an allow-listed column map to a single row. A key
// present with a nil value sets the column to NULL; absent keys stay
// untouched. Gorm stamps updated_at on map updates.
func (r *crudRepository[T]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any, dest *T) error {
	if len(fields) == 0 {
		return appErr.New(appErr.CodeInvalid, "No fields to update")
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, fmt.Sprintf("update %s failed", r.name))
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", r.name))
	}
	return r.GetByID(ctx, id, dest)
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID, dest *T) error {
	if err := r.GetByID(ctx, id, dest); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, fmt.Sprintf("delete %s failed", r.name))
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s not found", r.name))
	}
	return nil
}

// Package repository is the generic record store every entity persists through.
package repository

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db/option"
	"gorm.io/gorm"
)

// Repository is a parameterized store over one table, keyed by that table's
// id column. Table names come from gorm TableName methods and id columns are
// fixed per entity, so neither is ever taken from free-form input.
type Repository[T any] interface {
	WithTrx(tx *gorm.DB) Repository[T]

	Find(ctx context.Context, query *T, opts ...option.QueryOption) ([]*T, error)
	FindOne(ctx context.Context, query *T, opts ...option.QueryOption) (*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, resource *T) error
	// UpdateColumns overwrites the named columns on the row with the given id
	// and reports how many rows matched.
	UpdateColumns(ctx context.Context, columns []string, values []any, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	// DeleteBy removes every row whose column equals value. Used by the
	// cascading deletes that follow an area or customer removal.
	DeleteBy(ctx context.Context, column string, value any) error
	Count(ctx context.Context, query *T) (int64, error)
}

package repository

import (
	"context"
	"errors"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db/option"
	"gorm.io/gorm"
)

type store[T any] struct {
	db       *gorm.DB
	idColumn string
}

// ProvideStore builds a Repository for T keyed by the given id column.
func ProvideStore[T any](db *gorm.DB, idColumn string) Repository[T] {
	return &store[T]{db: db, idColumn: idColumn}
}

func (r *store[T]) WithTrx(tx *gorm.DB) Repository[T] {
	return &store[T]{db: tx, idColumn: r.idColumn}
}

func (r *store[T]) Find(ctx context.Context, query *T, opts ...option.QueryOption) ([]*T, error) {
	var result []*T
	stmt := r.buildQuery(ctx, query, opts...)
	err := stmt.Find(&result).Error
	return result, err
}

func (r *store[T]) FindOne(ctx context.Context, query *T, opts ...option.QueryOption) (*T, error) {
	var result T
	stmt := r.buildQuery(ctx, query, opts...)
	err := stmt.First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *store[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var result T
	err := r.db.WithContext(ctx).Where(r.idColumn+" = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *store[T]) Create(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *store[T]) UpdateColumns(ctx context.Context, columns []string, values []any, id int64) (int64, error) {
	if len(columns) != len(values) {
		return 0, apperr.Validationf("columns/values length mismatch: %d vs %d", len(columns), len(values))
	}
	updates := make(map[string]any, len(columns))
	for i, column := range columns {
		updates[column] = values[i]
	}
	result := r.db.WithContext(ctx).Model(new(T)).Where(r.idColumn+" = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *store[T]) Delete(ctx context.Context, id int64) error {
	var dummy T
	return r.db.WithContext(ctx).Where(r.idColumn+" = ?", id).Delete(&dummy).Error
}

func (r *store[T]) DeleteBy(ctx context.Context, column string, value any) error {
	var dummy T
	return r.db.WithContext(ctx).Where(column+" = ?", value).Delete(&dummy).Error
}

func (r *store[T]) Count(ctx context.Context, query *T) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(query).Where(query).Count(&count).Error
	return count, err
}

func (s *store[T]) buildQuery(ctx context.Context, filter *T, opts ...option.QueryOption) *gorm.DB {
	db := s.db.WithContext(ctx).Where(filter)

	for _, opt := range opts {
		db = opt.Apply(db)
	}

	return db
}

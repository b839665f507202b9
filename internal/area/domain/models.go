// Package domain contains persistence models for delivery areas.
package domain

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

type Area struct {
	AreaID int64  `gorm:"column:area_id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;not null"`
}

// TableName sets the database table name.
func (Area) TableName() string { return "areas" }

func New(name string) (Area, error) {
	if len(name) < 2 || len(name) > 50 {
		return Area{}, apperr.Constraintf("area name must be 2-50 characters")
	}
	return Area{Name: name}, nil
}

type CreateAreaRequest struct {
	AreaID int64
	Name   string
}

type Service interface {
	Create(ctx context.Context, req CreateAreaRequest) (Area, error)
	List(ctx context.Context) ([]Area, error)
	GetByID(ctx context.Context, id int64) (Area, error)
	Update(ctx context.Context, area Area) error
	// Delete removes the area and cascades to its customers, orders and dockets.
	Delete(ctx context.Context, id int64) error
}

// Package domain contains persistence models for publications.
package domain

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

// Type represents a publication's delivery cadence.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	}
	return false
}

// Publication is a read-only input to invoice aggregation, joined by
// newspaper_id and never mutated by it.
type Publication struct {
	NewspaperID int64   `gorm:"column:newspaper_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Type        Type    `gorm:"column:type;type:text;not null"`
	Price       float64 `gorm:"column:price;not null"`
}

// TableName sets the database table name.
func (Publication) TableName() string { return "publications" }

// New validates and builds a Publication.
func New(name string, pubType Type, price float64) (Publication, error) {
	if len(name) < 2 || len(name) > 50 {
		return Publication{}, apperr.Constraintf("publication name must be 2-50 characters")
	}
	if !pubType.Valid() {
		return Publication{}, apperr.Validationf("publication type must be daily, weekly, or monthly")
	}
	if price < 0 || price > 1000 {
		return Publication{}, apperr.Constraintf("publication price must be between 0 and 1000")
	}
	return Publication{Name: name, Type: pubType, Price: price}, nil
}

type CreatePublicationRequest struct {
	NewspaperID int64
	Name        string
	Type        Type
	Price       float64
}

type Service interface {
	Create(ctx context.Context, req CreatePublicationRequest) (Publication, error)
	List(ctx context.Context) ([]Publication, error)
	GetByID(ctx context.Context, id int64) (Publication, error)
	Update(ctx context.Context, publication Publication) error
	Delete(ctx context.Context, id int64) error
}

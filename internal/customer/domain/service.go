package domain

import (
	"context"
	"time"
)

type CreateCustomerRequest struct {
	CustomerID      int64
	Name            string
	Address         string
	Phone           string
	AreaID          int64
	Email           string
	LastPaymentDate *time.Time
	Status          Status
}

type ListCustomerFilter struct {
	AreaID int64
	Status Status
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	List(ctx context.Context, filter ListCustomerFilter) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (Customer, error)
	Update(ctx context.Context, customer Customer) error
	// Delete removes the customer and cascades to their invoices, orders and
	// warning letters.
	Delete(ctx context.Context, id int64) error
}

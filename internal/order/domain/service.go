package domain

import "context"

type CreateOrderRequest struct {
	OrderID      int64
	CustomerID   int64
	AreaID       int64
	NewspaperID  int64
	DeliveryDate string
	Status       Status
}

type ListOrderFilter struct {
	CustomerID int64
	AreaID     int64
	Status     Status
}

type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (Order, error)
	List(ctx context.Context, filter ListOrderFilter) ([]Order, error)
	GetByID(ctx context.Context, id int64) (Order, error)
	Update(ctx context.Context, order Order) error
	Delete(ctx context.Context, id int64) error
}

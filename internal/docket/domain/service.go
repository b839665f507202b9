package domain

import (
	"context"

	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
)

type CreateDocketRequest struct {
	DocketID       int64
	AreaID         int64
	DeliveryPerson string
	OrderIDs       []int64
}

type Service interface {
	Create(ctx context.Context, req CreateDocketRequest) (Docket, error)
	List(ctx context.Context) ([]Docket, error)
	GetByID(ctx context.Context, id int64) (Docket, error)
	Delete(ctx context.Context, id int64) error

	// MarkOrderDelivered updates the authoritative order row first, then
	// propagates the status into the docket's embedded snapshot. The two
	// writes are independent commits; a docket-side failure leaves the order
	// row already updated and the error says so.
	MarkOrderDelivered(ctx context.Context, docketID, orderID int64, status orderdomain.Status) error
}

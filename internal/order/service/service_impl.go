package service

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the order service.
var Module = fx.Module("order",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	log    *zap.Logger
	orders repository.Repository[orderdomain.Order]
}

func NewService(p ServiceParam) orderdomain.Service {
	return &Service{
		log:    p.Log.Named("order.service"),
		orders: repository.ProvideStore[orderdomain.Order](p.DB, "order_id"),
	}
}

func (s *Service) Create(ctx context.Context, req orderdomain.CreateOrderRequest) (orderdomain.Order, error) {
	order, err := orderdomain.New(req.CustomerID, req.AreaID, req.NewspaperID, req.DeliveryDate, req.Status)
	if err != nil {
		return orderdomain.Order{}, err
	}
	order.OrderID = req.OrderID
	if err := s.orders.Create(ctx, &order); err != nil {
		return orderdomain.Order{}, err
	}
	s.log.Info("order created",
		zap.Int64("order_id", order.OrderID),
		zap.Int64("customer_id", order.CustomerID),
	)
	return order, nil
}

func (s *Service) List(ctx context.Context, filter orderdomain.ListOrderFilter) ([]orderdomain.Order, error) {
	query := &orderdomain.Order{
		CustomerID: filter.CustomerID,
		AreaID:     filter.AreaID,
		Status:     filter.Status,
	}
	items, err := s.orders.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	orders := make([]orderdomain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}
	return orders, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (orderdomain.Order, error) {
	item, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return orderdomain.Order{}, err
	}
	if item == nil {
		return orderdomain.Order{}, apperr.NotFound("order", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, order orderdomain.Order) error {
	if !order.Status.Valid() {
		return apperr.Validationf("invalid order status %q", order.Status)
	}
	affected, err := s.orders.UpdateColumns(ctx,
		[]string{"customer_id", "area_id", "newspaper_id", "delivery_date", "status"},
		[]any{order.CustomerID, order.AreaID, order.NewspaperID, order.DeliveryDate, order.Status},
		order.OrderID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("order", order.OrderID)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/clock"
	docketdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/docket/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the docket service.
var Module = fx.Module("docket",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	clock   clock.Clock
	dockets repository.Repository[docketdomain.Docket]
	orders  repository.Repository[orderdomain.Order]
}

func NewService(p ServiceParam) docketdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("docket.service"),
		clock: p.Clock,

		dockets: repository.ProvideStore[docketdomain.Docket](p.DB, "docket_id"),
		orders:  repository.ProvideStore[orderdomain.Order](p.DB, "order_id"),
	}
}

func (s *Service) Create(ctx context.Context, req docketdomain.CreateDocketRequest) (docketdomain.Docket, error) {
	docket, err := docketdomain.New(req.AreaID, req.DeliveryPerson)
	if err != nil {
		return docketdomain.Docket{}, err
	}
	if len(req.OrderIDs) == 0 {
		return docketdomain.Docket{}, apperr.Validationf("docket needs at least one order")
	}

	orders, err := s.readOrdersByIDs(ctx, req.OrderIDs)
	if err != nil {
		return docketdomain.Docket{}, err
	}
	byID := make(map[int64]orderdomain.Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}

	// Every snapshot must correspond to an existing order row.
	snapshots := make([]docketdomain.OrderSnapshot, 0, len(req.OrderIDs))
	for _, id := range req.OrderIDs {
		o, ok := byID[id]
		if !ok {
			return docketdomain.Docket{}, apperr.NotFound("order", id)
		}
		snapshots = append(snapshots, docketdomain.SnapshotOf(o))
	}

	encoded, err := docketdomain.EncodeSnapshots(snapshots)
	if err != nil {
		return docketdomain.Docket{}, err
	}
	docket.DocketID = req.DocketID
	docket.Orders = encoded
	docket.Date = s.clock.Now()

	if err := s.dockets.Create(ctx, &docket); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return docketdomain.Docket{}, apperr.Constraintf("docket %d already exists", docket.DocketID)
		}
		return docketdomain.Docket{}, err
	}

	s.log.Info("docket created",
		zap.Int64("docket_id", docket.DocketID),
		zap.Int64("area_id", docket.AreaID),
		zap.Int("orders", len(snapshots)),
	)
	return docket, nil
}

func (s *Service) List(ctx context.Context) ([]docketdomain.Docket, error) {
	items, err := s.dockets.Find(ctx, &docketdomain.Docket{})
	if err != nil {
		return nil, err
	}
	dockets := make([]docketdomain.Docket, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		dockets = append(dockets, *item)
	}
	return dockets, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (docketdomain.Docket, error) {
	item, err := s.dockets.FindByID(ctx, id)
	if err != nil {
		return docketdomain.Docket{}, err
	}
	if item == nil {
		return docketdomain.Docket{}, apperr.NotFound("docket", id)
	}
	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.dockets.Delete(ctx, id)
}

// MarkOrderDelivered reconciles an order's new status into both of its
// persisted representations. The orders table is written first; if anything
// after that fails the error states the order row was already updated, since
// the two writes are separate commits.
func (s *Service) MarkOrderDelivered(ctx context.Context, docketID, orderID int64, status orderdomain.Status) error {
	if !status.Valid() {
		return apperr.Validationf("invalid order status %q", status)
	}

	affected, err := s.orders.UpdateColumns(ctx, []string{"status"}, []any{status}, orderID)
	if err != nil {
		return fmt.Errorf("update order %d: %w", orderID, err)
	}
	if affected == 0 {
		return apperr.NotFound("order", orderID)
	}

	docket, err := s.dockets.FindByID(ctx, docketID)
	if err != nil {
		return fmt.Errorf("order %d already marked %s, docket read failed: %w", orderID, status, err)
	}
	if docket == nil {
		return fmt.Errorf("order %d already marked %s: %w", orderID, status, apperr.NotFound("docket", docketID))
	}

	snapshots, err := docketdomain.DecodeSnapshots(docket.Orders)
	if err != nil {
		return fmt.Errorf("order %d already marked %s: %w", orderID, status, err)
	}

	// Rebuild the list rather than patching in place: the target snapshot
	// gets the new status, everything else passes through untouched. A docket
	// without a matching snapshot still gets rewritten unchanged.
	updated := make([]docketdomain.OrderSnapshot, len(snapshots))
	matched := false
	for i, snapshot := range snapshots {
		if snapshot.OrderID == orderID {
			snapshot.Status = status
			matched = true
		}
		updated[i] = snapshot
	}

	encoded, err := docketdomain.EncodeSnapshots(updated)
	if err != nil {
		return fmt.Errorf("order %d already marked %s: %w", orderID, status, err)
	}
	if _, err := s.dockets.UpdateColumns(ctx, []string{"orders"}, []any{encoded}, docketID); err != nil {
		return fmt.Errorf("order %d already marked %s, docket %d write failed: %w", orderID, status, docketID, err)
	}

	if !matched {
		s.log.Warn("order is not on the docket manifest",
			zap.Int64("docket_id", docketID),
			zap.Int64("order_id", orderID),
		)
	}
	s.log.Info("order status reconciled",
		zap.Int64("docket_id", docketID),
		zap.Int64("order_id", orderID),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *Service) readOrdersByIDs(ctx context.Context, ids []int64) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	err := s.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

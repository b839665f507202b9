package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&orderdomain.Order{}))

	svc := NewService(ServiceParam{DB: db, Log: zap.NewNop()})
	return svc.(*Service), db
}

func TestOrderCRUDRoundtrip(t *testing.T) {
	svc, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, orderdomain.CreateOrderRequest{
		CustomerID:   7,
		AreaID:       1,
		NewspaperID:  3,
		DeliveryDate: "2024-06-01",
		Status:       orderdomain.StatusPending,
	})
	require.NoError(t, err)
	require.NotZero(t, order.OrderID)

	found, err := svc.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPending, found.Status)

	found.Status = orderdomain.StatusDelivered
	require.NoError(t, svc.Update(ctx, found))

	updated, err := svc.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusDelivered, updated.Status)

	require.NoError(t, svc.Delete(ctx, order.OrderID))
	_, err = svc.GetByID(ctx, order.OrderID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOrderCreateRejectsInvalidInput(t *testing.T) {
	svc, db := setupOrderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, orderdomain.CreateOrderRequest{
		CustomerID:   7,
		AreaID:       1,
		NewspaperID:  3,
		DeliveryDate: "01/06/2024",
		Status:       orderdomain.StatusPending,
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&orderdomain.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderListFiltersByCustomer(t *testing.T) {
	svc, _ := setupOrderService(t)
	ctx := context.Background()

	for _, customerID := range []int64{7, 7, 8} {
		_, err := svc.Create(ctx, orderdomain.CreateOrderRequest{
			CustomerID:   customerID,
			AreaID:       1,
			NewspaperID:  3,
			DeliveryDate: "2024-06-01",
			Status:       orderdomain.StatusPending,
		})
		require.NoError(t, err)
	}

	orders, err := svc.List(ctx, orderdomain.ListOrderFilter{CustomerID: 7})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderUpdateUnknownRow(t *testing.T) {
	svc, _ := setupOrderService(t)

	order, err := orderdomain.New(7, 1, 3, "2024-06-01", orderdomain.StatusDelivered)
	require.NoError(t, err)
	order.OrderID = 404

	err = svc.Update(context.Background(), order)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

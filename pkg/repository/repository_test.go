package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db/option"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&orderdomain.Order{}, &areadomain.Area{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrder(customerID, areaID int64, status orderdomain.Status) orderdomain.Order {
	return orderdomain.Order{
		CustomerID:   customerID,
		AreaID:       areaID,
		NewspaperID:  3,
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       status,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	orders := ProvideStore[orderdomain.Order](db, "order_id")

	order := newOrder(7, 1, orderdomain.StatusPending)
	if err := orders.Create(ctx, &order); err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.OrderID == 0 {
		t.Fatal("expected auto-assigned order id")
	}

	found, err := orders.FindByID(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.CustomerID != 7 {
		t.Fatalf("unexpected row: %+v", found)
	}

	missing, err := orders.FindByID(ctx, 9999)
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing row, got %+v", missing)
	}
}

func TestStoreUpdateColumns(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	orders := ProvideStore[orderdomain.Order](db, "order_id")

	order := newOrder(7, 1, orderdomain.StatusPending)
	if err := orders.Create(ctx, &order); err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := orders.UpdateColumns(ctx, []string{"status"}, []any{orderdomain.StatusDelivered}, order.OrderID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	found, err := orders.FindByID(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Status != orderdomain.StatusDelivered {
		t.Fatalf("status not updated: %s", found.Status)
	}

	affected, err = orders.UpdateColumns(ctx, []string{"status"}, []any{orderdomain.StatusDelivered}, 9999)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected for missing id, got %d", affected)
	}
}

func TestStoreUpdateColumnsLengthMismatch(t *testing.T) {
	db := setupDB(t)
	orders := ProvideStore[orderdomain.Order](db, "order_id")

	_, err := orders.UpdateColumns(context.Background(), []string{"status", "area_id"}, []any{orderdomain.StatusDelivered}, 1)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStoreDeleteBy(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	orders := ProvideStore[orderdomain.Order](db, "order_id")

	for _, areaID := range []int64{1, 1, 2} {
		order := newOrder(7, areaID, orderdomain.StatusPending)
		if err := orders.Create(ctx, &order); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := orders.DeleteBy(ctx, "area_id", int64(1)); err != nil {
		t.Fatalf("delete by: %v", err)
	}

	count, err := orders.Count(ctx, &orderdomain.Order{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 surviving row, got %d", count)
	}
}

func TestStoreFindWithOptions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	orders := ProvideStore[orderdomain.Order](db, "order_id")

	for _, customerID := range []int64{7, 8, 7} {
		order := newOrder(customerID, 1, orderdomain.StatusPending)
		if err := orders.Create(ctx, &order); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	found, err := orders.Find(ctx, &orderdomain.Order{},
		option.ApplyOperator(option.Condition{Field: "customer_id", Operator: option.EQ, Value: int64(7)}),
		option.OrderBy("order_id DESC"),
		option.Limit(1),
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 row, got %d", len(found))
	}
	if found[0].OrderID != 3 {
		t.Fatalf("expected latest order, got %d", found[0].OrderID)
	}
}

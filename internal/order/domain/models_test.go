package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

func TestNewOrder(t *testing.T) {
	order, err := New(7, 1, 3, "2024-06-01", StatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderID != 0 {
		t.Fatalf("id must be store-assigned, got %d", order.OrderID)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !order.DeliveryDate.Equal(want) {
		t.Fatalf("delivery date = %v, want %v", order.DeliveryDate, want)
	}
}

func TestNewOrderRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name         string
		customerID   int64
		areaID       int64
		newspaperID  int64
		deliveryDate string
		status       Status
		want         error
	}{
		{"zero customer", 0, 1, 3, "2024-06-01", StatusPending, apperr.ErrConstraint},
		{"negative area", 7, -1, 3, "2024-06-01", StatusPending, apperr.ErrConstraint},
		{"zero newspaper", 7, 1, 0, "2024-06-01", StatusPending, apperr.ErrConstraint},
		{"slash date format", 7, 1, 3, "01/06/2024", StatusPending, apperr.ErrValidation},
		{"impossible date", 7, 1, 3, "2024-13-45", StatusPending, apperr.ErrValidation},
		{"unknown status", 7, 1, 3, "2024-06-01", Status("lost"), apperr.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.customerID, tc.areaID, tc.newspaperID, tc.deliveryDate, tc.status)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusDelivered, StatusMissed, StatusCanceled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("delivred").Valid() {
		t.Error("typo status should be invalid")
	}
}

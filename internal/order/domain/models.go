// Package domain contains persistence models for subscription orders.
package domain

import (
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
)

// DateLayout is the wire format for delivery dates.
const DateLayout = "2006-01-02"

// Status represents order delivery lifecycle states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusMissed    Status = "missed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusMissed, StatusCanceled:
		return true
	}
	return false
}

// Order is the authoritative record of one delivery. Its status is the single
// source of truth; docket snapshots are derived copies.
type Order struct {
	OrderID      int64     `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID   int64     `gorm:"column:customer_id;not null;index"`
	AreaID       int64     `gorm:"column:area_id;not null;index"`
	NewspaperID  int64     `gorm:"column:newspaper_id;not null;index"`
	DeliveryDate time.Time `gorm:"column:delivery_date;type:date;not null"`
	Status       Status    `gorm:"column:status;type:text;not null"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// New validates and builds an Order. The id is assigned by the store.
func New(customerID, areaID, newspaperID int64, deliveryDate string, status Status) (Order, error) {
	if customerID <= 0 {
		return Order{}, apperr.Constraintf("customer_id must be a positive integer")
	}
	if areaID <= 0 {
		return Order{}, apperr.Constraintf("area_id must be a positive integer")
	}
	if newspaperID <= 0 {
		return Order{}, apperr.Constraintf("newspaper_id must be a positive integer")
	}
	date, err := time.Parse(DateLayout, deliveryDate)
	if err != nil {
		return Order{}, apperr.Validationf("invalid delivery date %q", deliveryDate)
	}
	if !status.Valid() {
		return Order{}, apperr.Validationf("invalid order status %q", status)
	}
	return Order{
		CustomerID:   customerID,
		AreaID:       areaID,
		NewspaperID:  newspaperID,
		DeliveryDate: date,
		Status:       status,
	}, nil
}

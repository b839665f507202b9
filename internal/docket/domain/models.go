// Package domain contains persistence models for delivery dockets.
//
// A docket is a route manifest: one delivery person, one area, and a
// denormalized list of order snapshots serialized into the `orders` column.
// Snapshots are point-in-time copies; the orders table stays authoritative
// and the two are only brought back in agreement by explicit reconciliation.
package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"gorm.io/datatypes"
)

type Docket struct {
	DocketID       int64          `gorm:"column:docket_id;primaryKey;autoIncrement"`
	AreaID         int64          `gorm:"column:area_id;not null;index"`
	DeliveryPerson string         `gorm:"column:delivery_person;not null"`
	Orders         datatypes.JSON `gorm:"column:orders;not null"`
	Date           time.Time      `gorm:"column:date;type:date;not null"`
}

// TableName sets the database table name.
func (Docket) TableName() string { return "dockets" }

// OrderSnapshot is the denormalized copy of an order embedded in a docket.
// It is deliberately a distinct type from orderdomain.Order: a snapshot's
// status may drift from the authoritative row until reconciled.
type OrderSnapshot struct {
	OrderID      int64              `json:"order_id"`
	CustomerID   int64              `json:"customer_id"`
	NewspaperID  int64              `json:"newspaper_id"`
	DeliveryDate string             `json:"delivery_date"`
	Status       orderdomain.Status `json:"status"`
}

// SnapshotOf materializes a snapshot from an authoritative order row.
func SnapshotOf(o orderdomain.Order) OrderSnapshot {
	return OrderSnapshot{
		OrderID:      o.OrderID,
		CustomerID:   o.CustomerID,
		NewspaperID:  o.NewspaperID,
		DeliveryDate: o.DeliveryDate.Format(orderdomain.DateLayout),
		Status:       o.Status,
	}
}

// DecodeSnapshots parses the serialized orders column. A blob that fails to
// parse is data corruption; a blob that parses but is empty or not a list is
// a validation error.
func DecodeSnapshots(raw datatypes.JSON) ([]OrderSnapshot, error) {
	if len(raw) == 0 {
		return nil, apperr.Validationf("docket orders column is empty")
	}
	var snapshots []OrderSnapshot
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, apperr.Validationf("docket orders column is not a list")
		}
		return nil, apperr.Corruptionf("docket orders column is not valid JSON: %v", err)
	}
	if len(snapshots) == 0 {
		return nil, apperr.Validationf("docket holds no orders")
	}
	return snapshots, nil
}

// EncodeSnapshots serializes a snapshot list for the orders column.
func EncodeSnapshots(snapshots []OrderSnapshot) (datatypes.JSON, error) {
	raw, err := json.Marshal(snapshots)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// New validates the docket header fields. Snapshots are attached by the
// service once the referenced orders are confirmed to exist.
func New(areaID int64, deliveryPerson string) (Docket, error) {
	if areaID <= 0 {
		return Docket{}, apperr.Constraintf("area_id must be a positive integer")
	}
	deliveryPerson = strings.TrimSpace(deliveryPerson)
	if deliveryPerson == "" {
		return Docket{}, apperr.Validationf("delivery_person must be a non-empty string")
	}
	return Docket{AreaID: areaID, DeliveryPerson: deliveryPerson}, nil
}

// Package domain contains persistence models for invoicing.
package domain

import (
	"encoding/json"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"gorm.io/datatypes"
)

// PaymentStatus represents invoice payment states.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusLate   PaymentStatus = "late"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusLate:
		return true
	}
	return false
}

// Invoice is an append-only billing artifact. Details holds the serialized
// line items that contributed to the total.
type Invoice struct {
	InvoiceID     int64          `gorm:"column:invoice_id;primaryKey;autoIncrement"`
	CustomerID    int64          `gorm:"column:customer_id;not null;index"`
	InvoiceDate   time.Time      `gorm:"column:invoice_date;type:date;not null"`
	DueDate       time.Time      `gorm:"column:due_date;type:date;not null"`
	TotalAmount   float64        `gorm:"column:total_amount;not null"`
	PaymentStatus PaymentStatus  `gorm:"column:payment_status;type:text;not null"`
	Details       datatypes.JSON `gorm:"column:details;not null"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItem is one delivered order's contribution to an invoice.
type LineItem struct {
	OrderID         int64   `json:"order_id"`
	DeliveryDate    string  `json:"delivery_date"`
	Status          string  `json:"status"`
	PublicationName string  `json:"publication_name"`
	Price           float64 `json:"price"`
}

// DecodeLineItems parses the serialized details column.
func DecodeLineItems(raw datatypes.JSON) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Corruptionf("invoice details column is not valid JSON: %v", err)
	}
	return items, nil
}

// New validates and builds an Invoice through the constraining constructor.
// The aggregator inserts rows directly and does not pass through here.
func New(customerID int64, invoiceDate, dueDate time.Time, totalAmount float64, paymentStatus PaymentStatus, details []LineItem) (Invoice, error) {
	if customerID <= 0 {
		return Invoice{}, apperr.Constraintf("customer_id must be a positive integer")
	}
	if invoiceDate.IsZero() || dueDate.IsZero() {
		return Invoice{}, apperr.Validationf("invoice_date and due_date must be valid dates")
	}
	if totalAmount <= 0 {
		return Invoice{}, apperr.Constraintf("total amount must be a positive number")
	}
	if !paymentStatus.Valid() {
		return Invoice{}, apperr.Validationf("payment status must be paid, unpaid, or late")
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return Invoice{}, err
	}
	return Invoice{
		CustomerID:    customerID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		TotalAmount:   totalAmount,
		PaymentStatus: paymentStatus,
		Details:       datatypes.JSON(raw),
	}, nil
}

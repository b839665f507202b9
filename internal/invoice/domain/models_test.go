package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"gorm.io/datatypes"
)

var (
	invoiceDate = time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	dueDate     = time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)
)

func TestNewInvoice(t *testing.T) {
	items := []LineItem{
		{OrderID: 101, DeliveryDate: "2023-01-10", Status: "delivered", PublicationName: "The Morning Herald", Price: 2.50},
	}
	invoice, err := New(7, invoiceDate, dueDate, 2.50, PaymentStatusUnpaid, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeLineItems(invoice.Details)
	if err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if len(decoded) != 1 || decoded[0].OrderID != 101 {
		t.Fatalf("unexpected details: %+v", decoded)
	}
}

func TestNewInvoiceRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		run    func() error
		want   error
	}{
		{"zero customer", func() error {
			_, err := New(0, invoiceDate, dueDate, 2.50, PaymentStatusUnpaid, nil)
			return err
		}, apperr.ErrConstraint},
		{"zero invoice date", func() error {
			_, err := New(7, time.Time{}, dueDate, 2.50, PaymentStatusUnpaid, nil)
			return err
		}, apperr.ErrValidation},
		{"zero total", func() error {
			_, err := New(7, invoiceDate, dueDate, 0, PaymentStatusUnpaid, nil)
			return err
		}, apperr.ErrConstraint},
		{"negative total", func() error {
			_, err := New(7, invoiceDate, dueDate, -2.50, PaymentStatusUnpaid, nil)
			return err
		}, apperr.ErrConstraint},
		{"bad payment status", func() error {
			_, err := New(7, invoiceDate, dueDate, 2.50, PaymentStatus("pending"), nil)
			return err
		}, apperr.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecodeLineItemsCorruptBlob(t *testing.T) {
	_, err := DecodeLineItems(datatypes.JSON([]byte(`{"oops`)))
	if !errors.Is(err, apperr.ErrDataCorruption) {
		t.Fatalf("got %v, want data corruption", err)
	}
}

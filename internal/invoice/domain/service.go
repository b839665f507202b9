package domain

import (
	"context"
	"io"
)

type ListInvoiceFilter struct {
	CustomerID    int64
	PaymentStatus PaymentStatus
	// IssuedFrom and IssuedTo bound invoice_date inclusively, as "YYYY-MM-DD".
	// Either side may be empty.
	IssuedFrom string
	IssuedTo   string
}

type Service interface {
	// Generate scans delivered orders for the customer in the inclusive
	// [start, end] window (dates as "YYYY-MM-DD"), joins each to its
	// publication price, and inserts one invoice. A window with nothing to
	// invoice returns (nil, nil) and writes no row.
	Generate(ctx context.Context, customerID int64, startDate, endDate string) (*Invoice, error)

	List(ctx context.Context, filter ListInvoiceFilter) ([]Invoice, error)
	GetByID(ctx context.Context, id int64) (Invoice, error)
	Update(ctx context.Context, invoice Invoice) error
	Delete(ctx context.Context, id int64) error

	// RenderPDF renders the invoice's line items into a PDF document.
	RenderPDF(ctx context.Context, id int64) (io.Reader, error)
}

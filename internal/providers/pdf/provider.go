// Package pdf renders billing documents.
package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// Module provides the PDF renderer.
var Module = fx.Provide(New)

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

type InvoiceData struct {
	InvoiceNumber string
	CustomerName  string
	IssueDate     string
	DueDate       string
	PaymentStatus string

	Items []InvoiceItem

	Total string
}

type InvoiceItem struct {
	OrderID     string
	Publication string
	Delivered   string
	Price       string
}

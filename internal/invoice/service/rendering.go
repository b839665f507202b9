package service

import (
	"context"
	"fmt"
	"io"

	invoicedomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/providers/pdf"
)

// RenderPDF renders a stored invoice's line items into a PDF document.
func (s *Service) RenderPDF(ctx context.Context, id int64) (io.Reader, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := invoicedomain.DecodeLineItems(invoice.Details)
	if err != nil {
		return nil, fmt.Errorf("invoice %d: %w", id, err)
	}

	customerName, err := s.lookupCustomerName(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	data := pdf.InvoiceData{
		InvoiceNumber: fmt.Sprintf("%d", invoice.InvoiceID),
		CustomerName:  customerName,
		IssueDate:     invoice.InvoiceDate.Format(orderdomain.DateLayout),
		DueDate:       invoice.DueDate.Format(orderdomain.DateLayout),
		PaymentStatus: string(invoice.PaymentStatus),
		Total:         fmt.Sprintf("%.2f", invoice.TotalAmount),
	}
	for _, item := range items {
		data.Items = append(data.Items, pdf.InvoiceItem{
			OrderID:     fmt.Sprintf("%d", item.OrderID),
			Publication: item.PublicationName,
			Delivered:   item.DeliveryDate,
			Price:       fmt.Sprintf("%.2f", item.Price),
		})
	}

	return s.pdf.GenerateInvoice(ctx, data)
}

func (s *Service) lookupCustomerName(ctx context.Context, customerID int64) (string, error) {
	var name string
	err := s.db.WithContext(ctx).Raw(
		`SELECT name FROM customers WHERE customer_id = ?`,
		customerID,
	).Scan(&name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		name = fmt.Sprintf("Customer %d", customerID)
	}
	return name, nil
}

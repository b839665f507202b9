package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/clock"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/config"
	invoicedomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/providers/pdf"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db/option"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module provides the invoice service.
var Module = fx.Module("invoice",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Billing *config.BillingConfigHolder
	PDF     pdf.Provider
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	clock    clock.Clock
	billing  *config.BillingConfigHolder
	pdf      pdf.Provider
	invoices repository.Repository[invoicedomain.Invoice]
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		clock:   p.Clock,
		billing: p.Billing,
		pdf:     p.PDF,

		invoices: repository.ProvideStore[invoicedomain.Invoice](p.DB, "invoice_id"),
	}
}

// deliveredOrderRow is one delivered order joined to its publication.
type deliveredOrderRow struct {
	OrderID         int64
	DeliveryDate    time.Time
	Status          string
	PublicationName string
	Price           float64
}

// Generate sums the delivered orders for a customer over an inclusive date
// window into a single new invoice. Source orders are not marked as invoiced,
// so overlapping windows bill them again.
func (s *Service) Generate(ctx context.Context, customerID int64, startDate, endDate string) (*invoicedomain.Invoice, error) {
	if customerID <= 0 {
		return nil, apperr.Constraintf("customer_id must be a positive integer")
	}
	start, err := time.Parse(orderdomain.DateLayout, startDate)
	if err != nil {
		return nil, apperr.Validationf("invalid start date %q", startDate)
	}
	end, err := time.Parse(orderdomain.DateLayout, endDate)
	if err != nil {
		return nil, apperr.Validationf("invalid end date %q", endDate)
	}

	rows, err := s.listDeliveredOrders(ctx, customerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("scan delivered orders for customer %d: %w", customerID, err)
	}
	if len(rows) == 0 {
		s.log.Info("nothing to invoice",
			zap.Int64("customer_id", customerID),
			zap.String("start_date", startDate),
			zap.String("end_date", endDate),
		)
		return nil, nil
	}

	var total float64
	details := make([]invoicedomain.LineItem, 0, len(rows))
	for _, row := range rows {
		total += row.Price
		details = append(details, invoicedomain.LineItem{
			OrderID:         row.OrderID,
			DeliveryDate:    row.DeliveryDate.Format(orderdomain.DateLayout),
			Status:          row.Status,
			PublicationName: row.PublicationName,
			Price:           row.Price,
		})
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	invoice := invoicedomain.Invoice{
		CustomerID:    customerID,
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, s.billing.Get().InvoiceDueDays),
		TotalAmount:   total,
		PaymentStatus: invoicedomain.PaymentStatusUnpaid,
		Details:       datatypes.JSON(raw),
	}
	if err := s.invoices.Create(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("insert invoice for customer %d: %w", customerID, err)
	}

	s.log.Info("invoice generated",
		zap.Int64("invoice_id", invoice.InvoiceID),
		zap.Int64("customer_id", customerID),
		zap.Float64("total_amount", total),
		zap.Int("line_items", len(details)),
	)
	return &invoice, nil
}

func (s *Service) List(ctx context.Context, filter invoicedomain.ListInvoiceFilter) ([]invoicedomain.Invoice, error) {
	query := &invoicedomain.Invoice{
		CustomerID:    filter.CustomerID,
		PaymentStatus: filter.PaymentStatus,
	}
	var opts []option.QueryOption
	if filter.IssuedFrom != "" {
		from, err := time.Parse(orderdomain.DateLayout, filter.IssuedFrom)
		if err != nil {
			return nil, apperr.Validationf("invalid issued-from date %q", filter.IssuedFrom)
		}
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "invoice_date", Operator: option.GTE, Value: from}))
	}
	if filter.IssuedTo != "" {
		to, err := time.Parse(orderdomain.DateLayout, filter.IssuedTo)
		if err != nil {
			return nil, apperr.Validationf("invalid issued-to date %q", filter.IssuedTo)
		}
		opts = append(opts, option.ApplyOperator(option.Condition{Field: "invoice_date", Operator: option.LTE, Value: to}))
	}
	items, err := s.invoices.Find(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	invoices := make([]invoicedomain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (invoicedomain.Invoice, error) {
	item, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if item == nil {
		return invoicedomain.Invoice{}, apperr.NotFound("invoice", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, invoice invoicedomain.Invoice) error {
	affected, err := s.invoices.UpdateColumns(ctx,
		[]string{"customer_id", "invoice_date", "due_date", "total_amount", "payment_status", "details"},
		[]any{invoice.CustomerID, invoice.InvoiceDate, invoice.DueDate, invoice.TotalAmount, invoice.PaymentStatus, invoice.Details},
		invoice.InvoiceID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("invoice", invoice.InvoiceID)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.invoices.Delete(ctx, id)
}

func (s *Service) listDeliveredOrders(ctx context.Context, customerID int64, start, end time.Time) ([]deliveredOrderRow, error) {
	var rows []deliveredOrderRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT o.order_id, o.delivery_date, o.status, p.name AS publication_name, p.price
		 FROM orders o
		 INNER JOIN publications p ON o.newspaper_id = p.newspaper_id
		 WHERE o.customer_id = ?
		   AND o.delivery_date BETWEEN ? AND ?
		   AND o.status = 'delivered'
		 ORDER BY o.order_id`,
		customerID,
		start,
		end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

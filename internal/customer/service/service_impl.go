package service

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	invoicedomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	warningdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the customer service.
var Module = fx.Module("customer",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	log *zap.Logger

	customers repository.Repository[customerdomain.Customer]
	invoices  repository.Repository[invoicedomain.Invoice]
	orders    repository.Repository[orderdomain.Order]
	letters   repository.Repository[warningdomain.WarningLetter]
}

func NewService(p ServiceParam) customerdomain.Service {
	return &Service{
		log: p.Log.Named("customer.service"),

		customers: repository.ProvideStore[customerdomain.Customer](p.DB, "customer_id"),
		invoices:  repository.ProvideStore[invoicedomain.Invoice](p.DB, "invoice_id"),
		orders:    repository.ProvideStore[orderdomain.Order](p.DB, "order_id"),
		letters:   repository.ProvideStore[warningdomain.WarningLetter](p.DB, "letter_id"),
	}
}

func (s *Service) Create(ctx context.Context, req customerdomain.CreateCustomerRequest) (customerdomain.Customer, error) {
	customer, err := customerdomain.New(req.Name, req.Address, req.Phone, req.AreaID, req.Email, req.LastPaymentDate, req.Status)
	if err != nil {
		return customerdomain.Customer{}, err
	}
	customer.CustomerID = req.CustomerID
	if err := s.customers.Create(ctx, &customer); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return customerdomain.Customer{}, apperr.Constraintf("customer %d already exists", customer.CustomerID)
		}
		return customerdomain.Customer{}, err
	}
	s.log.Info("customer created",
		zap.Int64("customer_id", customer.CustomerID),
		zap.String("name", customer.Name),
	)
	return customer, nil
}

func (s *Service) List(ctx context.Context, filter customerdomain.ListCustomerFilter) ([]customerdomain.Customer, error) {
	query := &customerdomain.Customer{
		AreaID: filter.AreaID,
		Status: filter.Status,
	}
	items, err := s.customers.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	customers := make([]customerdomain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}
	return customers, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (customerdomain.Customer, error) {
	item, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return customerdomain.Customer{}, err
	}
	if item == nil {
		return customerdomain.Customer{}, apperr.NotFound("customer", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, customer customerdomain.Customer) error {
	if _, err := customerdomain.New(customer.Name, customer.Address, customer.Phone, customer.AreaID, customer.Email, customer.LastPaymentDate, customer.Status); err != nil {
		return err
	}
	affected, err := s.customers.UpdateColumns(ctx,
		[]string{"name", "address", "phone", "area_id", "email", "last_payment_date", "status"},
		[]any{customer.Name, customer.Address, customer.Phone, customer.AreaID, customer.Email, customer.LastPaymentDate, customer.Status},
		customer.CustomerID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("customer", customer.CustomerID)
	}
	return nil
}

// Delete removes the customer together with their invoices, orders and
// warning letters, which all reference customers by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.invoices.DeleteBy(ctx, "customer_id", id); err != nil {
		return err
	}
	if err := s.orders.DeleteBy(ctx, "customer_id", id); err != nil {
		return err
	}
	if err := s.letters.DeleteBy(ctx, "customer_id", id); err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("customer deleted with dependents", zap.Int64("customer_id", id))
	return nil
}

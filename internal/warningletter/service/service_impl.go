package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/clock"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/config"
	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	warningdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the warning letter service.
var Module = fx.Module("warningletter",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Billing *config.BillingConfigHolder
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	billing *config.BillingConfigHolder

	letters   repository.Repository[warningdomain.WarningLetter]
	customers repository.Repository[customerdomain.Customer]
}

func NewService(p ServiceParam) warningdomain.Service {
	return &Service{
		log:     p.Log.Named("warningletter.service"),
		clock:   p.Clock,
		billing: p.Billing,

		letters:   repository.ProvideStore[warningdomain.WarningLetter](p.DB, "letter_id"),
		customers: repository.ProvideStore[customerdomain.Customer](p.DB, "customer_id"),
	}
}

func (s *Service) List(ctx context.Context, customerID int64) ([]warningdomain.WarningLetter, error) {
	query := &warningdomain.WarningLetter{CustomerID: customerID}
	items, err := s.letters.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	letters := make([]warningdomain.WarningLetter, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		letters = append(letters, *item)
	}
	return letters, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (warningdomain.WarningLetter, error) {
	item, err := s.letters.FindByID(ctx, id)
	if err != nil {
		return warningdomain.WarningLetter{}, err
	}
	if item == nil {
		return warningdomain.WarningLetter{}, apperr.NotFound("warning letter", id)
	}
	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.letters.Delete(ctx, id)
}

// IssueOverdue writes one letter per customer whose last payment predates the
// configured thresholds, at the most severe matching rule. A customer already
// holding a letter at that severity is skipped.
func (s *Service) IssueOverdue(ctx context.Context) ([]warningdomain.WarningLetter, error) {
	rules := append([]config.WarningRule(nil), s.billing.Get().WarningRules...)
	sort.Slice(rules, func(i, j int) bool { return rules[i].MinDays > rules[j].MinDays })

	customers, err := s.customers.Find(ctx, &customerdomain.Customer{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var issued []warningdomain.WarningLetter
	for _, customer := range customers {
		if customer == nil || customer.LastPaymentDate == nil {
			continue
		}
		overdueDays := int(now.Sub(*customer.LastPaymentDate).Hours() / 24)

		for _, rule := range rules {
			if overdueDays < rule.MinDays {
				continue
			}
			status := warningdomain.Status(rule.Status)
			existing, err := s.letters.FindOne(ctx, &warningdomain.WarningLetter{
				CustomerID: customer.CustomerID,
				Status:     status,
			})
			if err != nil {
				return nil, err
			}
			if existing != nil {
				break
			}

			message := fmt.Sprintf("Account %d days overdue since last payment on %s", overdueDays, customer.LastPaymentDate.Format("2006-01-02"))
			letter, err := warningdomain.New(customer.CustomerID, now, status, message)
			if err != nil {
				return nil, err
			}
			if err := s.letters.Create(ctx, &letter); err != nil {
				return nil, err
			}
			s.log.Info("warning letter issued",
				zap.Int64("customer_id", customer.CustomerID),
				zap.String("status", string(status)),
				zap.Int("overdue_days", overdueDays),
			)
			issued = append(issued, letter)
			break
		}
	}
	return issued, nil
}

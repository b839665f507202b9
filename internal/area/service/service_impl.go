package service

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	docketdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/docket/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the area service.
var Module = fx.Module("area",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	log *zap.Logger

	areas     repository.Repository[areadomain.Area]
	customers repository.Repository[customerdomain.Customer]
	orders    repository.Repository[orderdomain.Order]
	dockets   repository.Repository[docketdomain.Docket]
}

func NewService(p ServiceParam) areadomain.Service {
	return &Service{
		log: p.Log.Named("area.service"),

		areas:     repository.ProvideStore[areadomain.Area](p.DB, "area_id"),
		customers: repository.ProvideStore[customerdomain.Customer](p.DB, "customer_id"),
		orders:    repository.ProvideStore[orderdomain.Order](p.DB, "order_id"),
		dockets:   repository.ProvideStore[docketdomain.Docket](p.DB, "docket_id"),
	}
}

func (s *Service) Create(ctx context.Context, req areadomain.CreateAreaRequest) (areadomain.Area, error) {
	area, err := areadomain.New(req.Name)
	if err != nil {
		return areadomain.Area{}, err
	}
	area.AreaID = req.AreaID
	if err := s.areas.Create(ctx, &area); err != nil {
		return areadomain.Area{}, err
	}
	s.log.Info("area created", zap.Int64("area_id", area.AreaID), zap.String("name", area.Name))
	return area, nil
}

func (s *Service) List(ctx context.Context) ([]areadomain.Area, error) {
	items, err := s.areas.Find(ctx, &areadomain.Area{})
	if err != nil {
		return nil, err
	}
	areas := make([]areadomain.Area, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		areas = append(areas, *item)
	}
	return areas, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (areadomain.Area, error) {
	item, err := s.areas.FindByID(ctx, id)
	if err != nil {
		return areadomain.Area{}, err
	}
	if item == nil {
		return areadomain.Area{}, apperr.NotFound("area", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, area areadomain.Area) error {
	if _, err := areadomain.New(area.Name); err != nil {
		return err
	}
	affected, err := s.areas.UpdateColumns(ctx, []string{"name"}, []any{area.Name}, area.AreaID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("area", area.AreaID)
	}
	return nil
}

// Delete removes the area and everything routed through it: customers,
// orders and dockets reference areas by id and would dangle otherwise.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.customers.DeleteBy(ctx, "area_id", id); err != nil {
		return err
	}
	if err := s.orders.DeleteBy(ctx, "area_id", id); err != nil {
		return err
	}
	if err := s.dockets.DeleteBy(ctx, "area_id", id); err != nil {
		return err
	}
	if err := s.areas.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("area deleted with dependents", zap.Int64("area_id", id))
	return nil
}

package service

import (
	"context"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/apperr"
	publicationdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db/option"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the publication service.
var Module = fx.Module("publication",
	fx.Provide(NewService),
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	log          *zap.Logger
	publications repository.Repository[publicationdomain.Publication]
}

func NewService(p ServiceParam) publicationdomain.Service {
	return &Service{
		log:          p.Log.Named("publication.service"),
		publications: repository.ProvideStore[publicationdomain.Publication](p.DB, "newspaper_id"),
	}
}

func (s *Service) Create(ctx context.Context, req publicationdomain.CreatePublicationRequest) (publicationdomain.Publication, error) {
	publication, err := publicationdomain.New(req.Name, req.Type, req.Price)
	if err != nil {
		return publicationdomain.Publication{}, err
	}
	publication.NewspaperID = req.NewspaperID
	if err := s.publications.Create(ctx, &publication); err != nil {
		return publicationdomain.Publication{}, err
	}
	s.log.Info("publication created",
		zap.Int64("newspaper_id", publication.NewspaperID),
		zap.String("name", publication.Name),
	)
	return publication, nil
}

func (s *Service) List(ctx context.Context) ([]publicationdomain.Publication, error) {
	items, err := s.publications.Find(ctx, &publicationdomain.Publication{}, option.OrderBy("newspaper_id"))
	if err != nil {
		return nil, err
	}
	publications := make([]publicationdomain.Publication, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		publications = append(publications, *item)
	}
	return publications, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (publicationdomain.Publication, error) {
	item, err := s.publications.FindByID(ctx, id)
	if err != nil {
		return publicationdomain.Publication{}, err
	}
	if item == nil {
		return publicationdomain.Publication{}, apperr.NotFound("publication", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, publication publicationdomain.Publication) error {
	if _, err := publicationdomain.New(publication.Name, publication.Type, publication.Price); err != nil {
		return err
	}
	affected, err := s.publications.UpdateColumns(ctx,
		[]string{"name", "type", "price"},
		[]any{publication.Name, publication.Type, publication.Price},
		publication.NewspaperID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("publication", publication.NewspaperID)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.publications.Delete(ctx, id)
}

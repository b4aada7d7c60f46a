package service

import (
	"context"

	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/repository"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/sqlerr"
)

type AdvertService struct {
	server *server.Server
	repo   *repository.AdvertRepository
}

func NewAdvertService(s *server.Server, repo *repository.AdvertRepository) *AdvertService {
	return &AdvertService{
		server: s,
		repo:   repo,
	}
}

func (s *AdvertService) GetAdvert(ctx context.Context, sess *database.Session, id int64) (*model.Advert, error) {
	return s.repo.GetByID(ctx, sess, id)
}

// CreateAdvert stores the advert and reads it back with its owner's name.
//
//   - unique violation: 409 "Advert already exists"
//   - unknown owner_id: 400 on field owner_id
func (s *AdvertService) CreateAdvert(ctx context.Context, sess *database.Session, title, note string, ownerID int64) (*model.Advert, error) {
	advert := &model.Advert{
		Title:   title,
		Note:    &note,
		OwnerID: ownerID,
	}

	if err := s.repo.Create(ctx, sess, advert); err != nil {
		switch {
		case sqlerr.IsUniqueViolation(err):
			return nil, errs.NewConflictError("Advert already exists", nil)
		case sqlerr.IsForeignKeyViolation(err):
			return nil, errs.NewValidationError("owner_id", "User not found")
		}
		return nil, err
	}

	s.server.Logger.Info().
		Int64("advert_id", advert.ID).
		Int64("owner_id", advert.OwnerID).
		Msg("advert created")

	return s.repo.GetByID(ctx, sess, advert.ID)
}

// DeleteAdvert checks the advert exists, then deletes it.
func (s *AdvertService) DeleteAdvert(ctx context.Context, sess *database.Session, id int64) error {
	if _, err := s.repo.GetByID(ctx, sess, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sess, id); err != nil {
		return err
	}

	s.server.Logger.Info().
		Int64("advert_id", id).
		Msg("advert deleted")

	return nil
}
